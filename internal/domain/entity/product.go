package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a catalog item with live stock
type Product struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SKU                    string          `gorm:"size:100;unique;not null" json:"sku"`
	Name                   string          `gorm:"size:255;not null" json:"name"`
	Category               string          `gorm:"size:100;index" json:"category"`
	CostPrice              decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"cost_price"`
	Price                  decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"price"`
	Stock                  int             `gorm:"not null;default:0" json:"stock"`
	DefaultDiscountPercent int             `gorm:"default:0" json:"default_discount_percent"`
	ArrivalDate            time.Time       `gorm:"type:date" json:"arrival_date"`
	ExpiryDate             *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
	DeletedAt              gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// DefaultDiscountAmount returns the per-unit discount amount derived from
// the product's default discount percent.
func (p *Product) DefaultDiscountAmount() decimal.Decimal {
	if p.DefaultDiscountPercent <= 0 {
		return decimal.Zero
	}
	return p.Price.Mul(decimal.NewFromInt(int64(p.DefaultDiscountPercent))).Div(decimal.NewFromInt(100))
}
