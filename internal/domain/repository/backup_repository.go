package repository

import (
	"context"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
)

// BackupRepository defines the interface for whole-store restore operations.
// Both operations run as a single database transaction so a failed restore
// never leaves partially replaced collections behind.
type BackupRepository interface {
	// Restore replaces every collection present in the document. Collections
	// that are nil are left untouched.
	Restore(ctx context.Context, doc *entity.BackupDocument) error
	// ResetOperational clears products, transactions, cash entries, customers
	// and attendance records while preserving users and store settings.
	ResetOperational(ctx context.Context) error
}
