package repository

import (
	"context"
	"errors"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	domainRepo "github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type cashEntryRepository struct {
	db *gorm.DB
}

// NewCashEntryRepository creates a new cash ledger repository
func NewCashEntryRepository(db *gorm.DB) domainRepo.CashEntryRepository {
	return &cashEntryRepository{db: db}
}

func (r *cashEntryRepository) Create(ctx context.Context, entry *entity.CashEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *cashEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashEntry, error) {
	var entry entity.CashEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

func (r *cashEntryRepository) List(ctx context.Context, params *domainRepo.CashEntryFilterParams) ([]entity.CashEntry, int64, error) {
	var entries []entity.CashEntry
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CashEntry{})

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&entries).Error

	return entries, total, err
}

func (r *cashEntryRepository) ListAll(ctx context.Context) ([]entity.CashEntry, error) {
	var entries []entity.CashEntry
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *cashEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CashEntry{}, "id = ?", id).Error
}
