package entity

import (
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a completed checkout. It is immutable once created;
// history corrections are deletions by authorized roles, never updates.
type Transaction struct {
	ID                uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo         string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	SubTotal          decimal.Decimal    `gorm:"type:numeric(16,2);not null" json:"sub_total"`
	ItemDiscountTotal decimal.Decimal    `gorm:"type:numeric(16,2);not null" json:"item_discount_total"`
	GlobalDiscount    decimal.Decimal    `gorm:"type:numeric(16,2);not null" json:"global_discount"`
	TaxAmount         decimal.Decimal    `gorm:"type:numeric(16,2);not null" json:"tax_amount"`
	TotalAmount       decimal.Decimal    `gorm:"type:numeric(16,2);not null" json:"total_amount"`
	PaymentMethod     enum.PaymentMethod `gorm:"not null" json:"payment_method"`

	// Cash payments only
	CashReceived decimal.Decimal `gorm:"type:numeric(16,2)" json:"cash_received"`
	ChangeAmount decimal.Decimal `gorm:"type:numeric(16,2)" json:"change_amount"`

	// Card payments only
	BankName   string `gorm:"size:100" json:"bank_name,omitempty"`
	CardNumber string `gorm:"size:100" json:"card_number,omitempty"`

	// QRIS / e-wallet payments only
	ProviderName    string `gorm:"size:100" json:"provider_name,omitempty"`
	ReferenceNumber string `gorm:"size:100" json:"reference_number,omitempty"`

	CustomerID    *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CustomerName  string     `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerPhone string     `gorm:"size:50" json:"customer_phone,omitempty"`
	PointsEarned  int        `gorm:"default:0" json:"points_earned"`

	CashierID   uuid.UUID `gorm:"type:uuid;not null;index" json:"cashier_id"`
	CashierName string    `gorm:"size:255" json:"cashier_name"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// Items are owned snapshots, never references into the live catalog
	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// NetAmount returns the transaction total net of tax
func (t *Transaction) NetAmount() decimal.Decimal {
	return t.TotalAmount.Sub(t.TaxAmount)
}

// TransactionItem is a frozen copy of a cart line at checkout time.
// Later catalog price edits must not alter historical transaction totals,
// so prices and cost prices are copied, not joined.
type TransactionItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ProductID     uuid.UUID       `gorm:"type:uuid;index" json:"product_id"`
	SKU           string          `gorm:"size:100" json:"sku"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	CostPrice     decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"cost_price"`
	Price         decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"price"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Discount      decimal.Decimal `gorm:"type:numeric(16,2);not null" json:"discount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new transaction item
func (i *TransactionItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransactionItem model
func (TransactionItem) TableName() string {
	return "transaction_items"
}

// LineTotal returns price x quantity for the line, before discounts
func (i *TransactionItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LineCost returns costPrice x quantity, the line's contribution to COGS
func (i *TransactionItem) LineCost() decimal.Decimal {
	return i.CostPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
