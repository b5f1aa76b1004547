package repository

import (
	"context"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	domainRepo "github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"gorm.io/gorm"
)

type backupRepository struct {
	db *gorm.DB
}

// NewBackupRepository creates a new backup repository
func NewBackupRepository(db *gorm.DB) domainRepo.BackupRepository {
	return &backupRepository{db: db}
}

// Restore replaces every collection present in the document inside one
// database transaction. A nil collection means "not in the backup file"
// and is left untouched.
func (r *backupRepository) Restore(ctx context.Context, doc *entity.BackupDocument) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if doc.Products != nil {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&entity.Product{}).Error; err != nil {
				return err
			}
			if len(doc.Products) > 0 {
				if err := tx.Create(&doc.Products).Error; err != nil {
					return err
				}
			}
		}

		if doc.Transactions != nil {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.TransactionItem{}).Error; err != nil {
				return err
			}
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Transaction{}).Error; err != nil {
				return err
			}
			if len(doc.Transactions) > 0 {
				if err := tx.Create(&doc.Transactions).Error; err != nil {
					return err
				}
			}
		}

		if doc.CashEntries != nil {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.CashEntry{}).Error; err != nil {
				return err
			}
			if len(doc.CashEntries) > 0 {
				if err := tx.Create(&doc.CashEntries).Error; err != nil {
					return err
				}
			}
		}

		if doc.Customers != nil {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&entity.Customer{}).Error; err != nil {
				return err
			}
			if len(doc.Customers) > 0 {
				if err := tx.Create(&doc.Customers).Error; err != nil {
					return err
				}
			}
		}

		if doc.Users != nil {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&entity.User{}).Error; err != nil {
				return err
			}
			if len(doc.Users) > 0 {
				if err := tx.Create(&doc.Users).Error; err != nil {
					return err
				}
			}
		}

		if doc.Attendances != nil {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Attendance{}).Error; err != nil {
				return err
			}
			if len(doc.Attendances) > 0 {
				if err := tx.Create(&doc.Attendances).Error; err != nil {
					return err
				}
			}
		}

		if doc.Settings != nil {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.StoreSettings{}).Error; err != nil {
				return err
			}
			if err := tx.Create(doc.Settings).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// ResetOperational clears the operational collections while preserving
// users and store settings.
func (r *backupRepository) ResetOperational(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := session.Delete(&entity.TransactionItem{}).Error; err != nil {
			return err
		}
		if err := session.Delete(&entity.Transaction{}).Error; err != nil {
			return err
		}
		if err := session.Delete(&entity.CashEntry{}).Error; err != nil {
			return err
		}
		if err := session.Unscoped().Delete(&entity.Product{}).Error; err != nil {
			return err
		}
		if err := session.Unscoped().Delete(&entity.Customer{}).Error; err != nil {
			return err
		}
		return session.Delete(&entity.Attendance{}).Error
	})
}
