package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	domainRepo "github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) domainRepo.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, att *entity.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Attendance, error) {
	var att entity.Attendance
	err := r.db.WithContext(ctx).First(&att, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &att, err
}

func (r *attendanceRepository) GetOpenForUser(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.Attendance, error) {
	var att entity.Attendance
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND check_out IS NULL", userID, day).
		First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &att, err
}

func (r *attendanceRepository) Update(ctx context.Context, att *entity.Attendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}

func (r *attendanceRepository) List(ctx context.Context, params *domainRepo.AttendanceFilterParams) ([]entity.Attendance, int64, error) {
	var records []entity.Attendance
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Attendance{})

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}

	if params.Date != nil {
		d := *params.Date
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		query = query.Where("date = ?", day)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("check_in DESC").
		Find(&records).Error

	return records, total, err
}

func (r *attendanceRepository) ListAll(ctx context.Context) ([]entity.Attendance, error) {
	var records []entity.Attendance
	err := r.db.WithContext(ctx).Order("check_in DESC").Find(&records).Error
	return records, err
}
