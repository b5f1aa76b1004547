package service

import (
	"context"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/ahmadfaris/kasirku-api/pkg/pagination"
	"github.com/google/uuid"
)

// AttendanceService handles staff check-in and check-out
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	userRepo       repository.UserRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	userRepo repository.UserRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CheckIn opens a work record for the user. A user with an open record for
// today must check out first.
func (s *AttendanceService) CheckIn(ctx context.Context, userID uuid.UUID, note string) (*entity.Attendance, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	now := time.Now()
	open, err := s.attendanceRepo.GetOpenForUser(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, apperror.NewConflictError("Already checked in today")
	}

	att := &entity.Attendance{
		UserID:   userID,
		UserName: user.FullName,
		Date:     dayOf(now),
		CheckIn:  now,
		Note:     note,
	}

	if err := s.attendanceRepo.Create(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

// CheckOut closes the user's open record for today
func (s *AttendanceService) CheckOut(ctx context.Context, userID uuid.UUID, note string) (*entity.Attendance, error) {
	now := time.Now()
	open, err := s.attendanceRepo.GetOpenForUser(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, apperror.NewBadRequestError("No open check-in found for today")
	}

	open.CheckOut = &now
	if note != "" {
		open.Note = note
	}

	if err := s.attendanceRepo.Update(ctx, open); err != nil {
		return nil, err
	}
	return open, nil
}

// ListAttendance lists attendance records with filtering and pagination
func (s *AttendanceService) ListAttendance(ctx context.Context, params *repository.AttendanceFilterParams) (*pagination.PaginatedResult[entity.Attendance], error) {
	records, total, err := s.attendanceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}
