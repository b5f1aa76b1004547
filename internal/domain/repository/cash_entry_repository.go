package repository

import (
	"context"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/ahmadfaris/kasirku-api/pkg/pagination"
	"github.com/google/uuid"
)

// CashEntryRepository defines the interface for cash ledger operations.
// Entries are append-and-delete only; there is no update.
type CashEntryRepository interface {
	Create(ctx context.Context, entry *entity.CashEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CashEntry, error)
	List(ctx context.Context, params *CashEntryFilterParams) ([]entity.CashEntry, int64, error)
	// ListAll returns the full ledger most-recent-first, for reporting and backup
	ListAll(ctx context.Context) ([]entity.CashEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CashEntryFilterParams contains filtering parameters for cash ledger queries
type CashEntryFilterParams struct {
	Pagination *pagination.PaginationParams
	Type       *enum.CashEntryType
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
}
