package repository

import (
	"context"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/ahmadfaris/kasirku-api/pkg/pagination"
	"github.com/google/uuid"
)

// PointAccrual describes loyalty points owed to a customer by a checkout
type PointAccrual struct {
	CustomerID uuid.UUID
	Points     int
}

// CheckoutCommit bundles the three effects of a completed checkout. The
// repository applies them as one database transaction: either the
// transaction row, every stock decrement and the point accrual all become
// visible, or none of them do.
type CheckoutCommit struct {
	Transaction *entity.Transaction
	// StockDecrements maps product ID to the quantity sold
	StockDecrements map[uuid.UUID]int
	Accrual         *PointAccrual
}

// TransactionRepository defines the interface for transaction history operations
type TransactionRepository interface {
	// CommitCheckout applies a checkout atomically. When any product has
	// insufficient stock the whole commit is rolled back and the failed
	// product IDs are returned with a nil error.
	CommitCheckout(ctx context.Context, commit *CheckoutCommit) (failedIDs []uuid.UUID, err error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Transaction, error)
	// List returns transactions most-recent-first
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	// ListAll returns the full history with items, most-recent-first, for reporting and backup
	ListAll(ctx context.Context) ([]entity.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionFilterParams contains filtering parameters for transaction queries
type TransactionFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	PaymentMethod *enum.PaymentMethod
	CustomerID    *uuid.UUID
	CashierID     *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
}
