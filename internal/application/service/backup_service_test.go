package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	infraRepo "github.com/ahmadfaris/kasirku-api/internal/infrastructure/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBackupService(db *gorm.DB) *BackupService {
	return NewBackupService(
		infraRepo.NewBackupRepository(db),
		infraRepo.NewProductRepository(db),
		infraRepo.NewTransactionRepository(db),
		infraRepo.NewCashEntryRepository(db),
		infraRepo.NewCustomerRepository(db),
		infraRepo.NewAttendanceRepository(db),
		infraRepo.NewSettingsRepository(db),
	)
}

func seedBackupData(t *testing.T, db *gorm.DB) {
	require.NoError(t, db.Create(&entity.Product{
		SKU: "SKU-001", Name: "Kopi Susu", CostPrice: d("3000"), Price: d("8000"),
		Stock: 10, ArrivalDate: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&entity.Customer{
		Name: "Budi", CardNumber: "CARD-001",
	}).Error)
	require.NoError(t, db.Create(&entity.CashEntry{
		Type: enum.CashEntryTypeIn, Amount: d("500000"), UserID: uuid.New(),
	}).Error)
	require.NoError(t, db.Create(&entity.User{
		Username: "admin", PasswordHash: "x", FullName: "Admin", Role: entity.RoleAdmin,
		CardID: "STF-001", Active: true,
	}).Error)
	settings := entity.DefaultStoreSettings()
	require.NoError(t, db.Create(settings).Error)
}

func TestBackupExport(t *testing.T) {
	db := newTestDB(t)
	seedBackupData(t, db)
	svc := newBackupService(db)

	doc, err := svc.Export(context.Background())
	require.NoError(t, err)
	require.Equal(t, entity.BackupVersion, doc.Version)
	require.False(t, doc.ExportedAt.IsZero())
	require.Len(t, doc.Products, 1)
	require.Len(t, doc.Customers, 1)
	require.Len(t, doc.CashEntries, 1)
	require.NotNil(t, doc.Settings)
}

func TestBackupImportReplacesCollections(t *testing.T) {
	db := newTestDB(t)
	seedBackupData(t, db)
	svc := newBackupService(db)
	ctx := context.Background()

	doc := &entity.BackupDocument{
		Version: entity.BackupVersion,
		Products: []entity.Product{
			{ID: uuid.New(), SKU: "SKU-NEW", Name: "Teh Botol", CostPrice: d("2500"),
				Price: d("4000"), Stock: 24, ArrivalDate: time.Now()},
			{ID: uuid.New(), SKU: "SKU-NEW2", Name: "Teh Kotak", CostPrice: d("3000"),
				Price: d("5000"), Stock: 12, ArrivalDate: time.Now()},
		},
	}
	require.NoError(t, svc.Import(ctx, doc))

	products, err := infraRepo.NewProductRepository(db).ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2, "present collection fully replaced")

	// Absent collections stay untouched
	customers, err := infraRepo.NewCustomerRepository(db).ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	entries, err := infraRepo.NewCashEntryRepository(db).ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestBackupImportRejectsUnknownVersion(t *testing.T) {
	db := newTestDB(t)
	svc := newBackupService(db)
	ctx := context.Background()

	err := svc.Import(ctx, &entity.BackupDocument{Version: "2.0"})
	require.Error(t, err)
	require.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	err = svc.Import(ctx, &entity.BackupDocument{})
	require.Error(t, err)

	err = svc.Import(ctx, nil)
	require.Error(t, err)
}

func TestBackupExportImportRoundTrip(t *testing.T) {
	db := newTestDB(t)
	seedBackupData(t, db)
	svc := newBackupService(db)
	ctx := context.Background()

	doc, err := svc.Export(ctx)
	require.NoError(t, err)

	// Wipe, then restore from the export
	require.NoError(t, svc.Reset(ctx))
	require.NoError(t, svc.Import(ctx, doc))

	restored, err := svc.Export(ctx)
	require.NoError(t, err)
	require.Len(t, restored.Products, 1)
	require.Equal(t, "Kopi Susu", restored.Products[0].Name)
	require.Len(t, restored.Customers, 1)
	require.Len(t, restored.CashEntries, 1)
}

func TestResetKeepsUsersAndSettings(t *testing.T) {
	db := newTestDB(t)
	seedBackupData(t, db)
	svc := newBackupService(db)
	ctx := context.Background()

	require.NoError(t, svc.Reset(ctx))

	products, err := infraRepo.NewProductRepository(db).ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, products)
	customers, err := infraRepo.NewCustomerRepository(db).ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, customers)
	entries, err := infraRepo.NewCashEntryRepository(db).ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)

	count, err := infraRepo.NewUserRepository(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	settings, err := infraRepo.NewSettingsRepository(db).Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings)
}
