package repository

import (
	"context"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/pkg/pagination"
	"github.com/google/uuid"
)

// AttendanceRepository defines the interface for attendance tracking
type AttendanceRepository interface {
	Create(ctx context.Context, att *entity.Attendance) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Attendance, error)
	// GetOpenForUser returns the user's record for the given date that has
	// no check-out yet, or nil when there is none.
	GetOpenForUser(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.Attendance, error)
	Update(ctx context.Context, att *entity.Attendance) error
	List(ctx context.Context, params *AttendanceFilterParams) ([]entity.Attendance, int64, error)
	// ListAll returns all attendance records, for backup
	ListAll(ctx context.Context) ([]entity.Attendance, error)
}

// AttendanceFilterParams contains filtering parameters for attendance queries
type AttendanceFilterParams struct {
	Pagination *pagination.PaginationParams
	UserID     *uuid.UUID
	Date       *time.Time
}
