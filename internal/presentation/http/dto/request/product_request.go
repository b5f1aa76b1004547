package request

// CreateProductRequest represents the create product request payload.
// Dates use the YYYY-MM-DD form.
type CreateProductRequest struct {
	SKU                    string         `json:"sku"`
	Name                   string         `json:"name" binding:"required"`
	Category               string         `json:"category"`
	CostPrice              LenientDecimal `json:"cost_price"`
	Price                  LenientDecimal `json:"price"`
	Stock                  LenientInt     `json:"stock"`
	DefaultDiscountPercent LenientInt     `json:"default_discount_percent"`
	ArrivalDate            string         `json:"arrival_date"`
	ExpiryDate             string         `json:"expiry_date"`
}

// UpdateProductRequest represents the update product request payload.
// Absent fields are left unchanged.
type UpdateProductRequest struct {
	SKU                    *string         `json:"sku"`
	Name                   *string         `json:"name"`
	Category               *string         `json:"category"`
	CostPrice              *LenientDecimal `json:"cost_price"`
	Price                  *LenientDecimal `json:"price"`
	Stock                  *LenientInt     `json:"stock"`
	DefaultDiscountPercent *LenientInt     `json:"default_discount_percent"`
	ArrivalDate            *string         `json:"arrival_date"`
	ExpiryDate             *string         `json:"expiry_date"`
	ClearExpiryDate        bool            `json:"clear_expiry_date"`
}

// AdjustStockRequest represents a manual stock adjustment payload
type AdjustStockRequest struct {
	Delta LenientInt `json:"delta" binding:"required"`
}
