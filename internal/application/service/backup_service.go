package service

import (
	"context"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
)

// BackupService exports and restores the whole store as one JSON document
type BackupService struct {
	backupRepo      repository.BackupRepository
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	cashEntryRepo   repository.CashEntryRepository
	customerRepo    repository.CustomerRepository
	attendanceRepo  repository.AttendanceRepository
	settingsRepo    repository.SettingsRepository
}

// NewBackupService creates a new backup service
func NewBackupService(
	backupRepo repository.BackupRepository,
	productRepo repository.ProductRepository,
	transactionRepo repository.TransactionRepository,
	cashEntryRepo repository.CashEntryRepository,
	customerRepo repository.CustomerRepository,
	attendanceRepo repository.AttendanceRepository,
	settingsRepo repository.SettingsRepository,
) *BackupService {
	return &BackupService{
		backupRepo:      backupRepo,
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		cashEntryRepo:   cashEntryRepo,
		customerRepo:    customerRepo,
		attendanceRepo:  attendanceRepo,
		settingsRepo:    settingsRepo,
	}
}

// Export collects every collection into a single document. Users are
// included so a full restore brings the staff list back too.
func (s *BackupService) Export(ctx context.Context) (*entity.BackupDocument, error) {
	doc := &entity.BackupDocument{
		Version:    entity.BackupVersion,
		ExportedAt: time.Now(),
	}

	var err error
	if doc.Products, err = s.productRepo.ListAll(ctx); err != nil {
		return nil, err
	}
	if doc.Transactions, err = s.transactionRepo.ListAll(ctx); err != nil {
		return nil, err
	}
	if doc.CashEntries, err = s.cashEntryRepo.ListAll(ctx); err != nil {
		return nil, err
	}
	if doc.Customers, err = s.customerRepo.ListAll(ctx); err != nil {
		return nil, err
	}
	if doc.Attendances, err = s.attendanceRepo.ListAll(ctx); err != nil {
		return nil, err
	}
	if doc.Settings, err = s.settingsRepo.Get(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}

// Import replaces the collections present in the document. Absent
// collections stay as they are; the whole replacement is atomic.
func (s *BackupService) Import(ctx context.Context, doc *entity.BackupDocument) error {
	if doc == nil {
		return apperror.NewBadRequestError("Backup document is required")
	}
	if doc.Version == "" {
		return apperror.NewBadRequestError("Backup document has no version")
	}
	if doc.Version != entity.BackupVersion {
		return apperror.NewBadRequestError("Unsupported backup version: " + doc.Version)
	}

	return s.backupRepo.Restore(ctx, doc)
}

// Reset clears the operational data (products, transactions, cash entries,
// customers, attendance) while keeping staff accounts and store settings.
func (s *BackupService) Reset(ctx context.Context) error {
	return s.backupRepo.ResetOperational(ctx)
}
