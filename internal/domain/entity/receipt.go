package entity

import "github.com/shopspring/decimal"

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}

// Receipt is a value object representing a printable receipt.
// It is not a database entity; it is composed from transaction data at print time.
type Receipt struct {
	Header         ReceiptHeader   `json:"header"`
	InvoiceNo      string          `json:"invoice_no"`
	Date           string          `json:"date"`
	Cashier        string          `json:"cashier,omitempty"`
	Customer       string          `json:"customer,omitempty"`
	PaymentMethod  string          `json:"payment_method"`
	Items          []ReceiptItem   `json:"items"`
	SubTotal       decimal.Decimal `json:"sub_total"`
	GlobalDiscount decimal.Decimal `json:"global_discount"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	CashReceived   decimal.Decimal `json:"cash_received"`
	Change         decimal.Decimal `json:"change"`
	PointsEarned   int             `json:"points_earned"`
	Footer         string          `json:"footer,omitempty"`
}
