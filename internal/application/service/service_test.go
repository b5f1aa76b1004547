package service

import (
	"fmt"
	"testing"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database so tests never interfere
// with each other
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Customer{},
		&entity.Transaction{},
		&entity.TransactionItem{},
		&entity.CashEntry{},
		&entity.Attendance{},
		&entity.StoreSettings{},
		&entity.IdempotencyKey{},
	)
	require.NoError(t, err)

	return db
}
