package entity

import (
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashEntry is a manual cash movement independent of sales: capital
// injections, operational expenses and similar. Entries are created and
// deleted individually, never updated.
type CashEntry struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Type      enum.CashEntryType `gorm:"not null;index" json:"type"`
	Category  string             `gorm:"size:100" json:"category"`
	Amount    decimal.Decimal    `gorm:"type:numeric(16,2);not null" json:"amount"`
	Note      string             `gorm:"type:text" json:"note"`
	UserID    uuid.UUID          `gorm:"type:uuid;index" json:"user_id"`
	UserName  string             `gorm:"size:255" json:"user_name"`
	CreatedAt time.Time          `gorm:"index" json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new cash entry
func (e *CashEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashEntry model
func (CashEntry) TableName() string {
	return "cash_entries"
}
