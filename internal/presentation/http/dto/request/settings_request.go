package request

// UpdateSettingsRequest represents the update store settings payload.
// Absent fields are left unchanged.
type UpdateSettingsRequest struct {
	StoreName      *string         `json:"store_name"`
	Address        *string         `json:"address"`
	Phone          *string         `json:"phone"`
	TaxPercentage  *LenientDecimal `json:"tax_percentage"`
	PointsDivisor  *int64          `json:"points_divisor"`
	LowStockLevel  *int            `json:"low_stock_level"`
	ExpiryWarnDays *int            `json:"expiry_warn_days"`
	CurrencyCode   *string         `json:"currency_code"`
	ReceiptFooter  *string         `json:"receipt_footer"`
}
