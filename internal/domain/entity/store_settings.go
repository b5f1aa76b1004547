package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StoreSettings is the single-row store configuration
type StoreSettings struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	StoreName        string          `gorm:"size:255;default:'KasirKu'" json:"store_name"`
	Address          string          `gorm:"type:text" json:"address"`
	Phone            string          `gorm:"size:50" json:"phone"`
	TaxPercentage    decimal.Decimal `gorm:"type:numeric(5,2);default:0" json:"tax_percentage"`
	PointsDivisor    int64           `gorm:"default:10000" json:"points_divisor"`
	LowStockLevel    int             `gorm:"default:5" json:"low_stock_level"`
	ExpiryWarnDays   int             `gorm:"default:30" json:"expiry_warn_days"`
	CurrencyCode     string          `gorm:"size:10;default:'IDR'" json:"currency_code"`
	ReceiptFooter    string          `gorm:"type:text" json:"receipt_footer"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *StoreSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}

// DefaultStoreSettings returns the settings used until the store configures its own
func DefaultStoreSettings() *StoreSettings {
	return &StoreSettings{
		StoreName:      "KasirKu",
		TaxPercentage:  decimal.Zero,
		PointsDivisor:  10000,
		LowStockLevel:  5,
		ExpiryWarnDays: 30,
		CurrencyCode:   "IDR",
		ReceiptFooter:  "Terima kasih atas kunjungan Anda",
	}
}
