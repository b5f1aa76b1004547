package request

// CreateCashEntryRequest represents the create cash entry request payload.
// Type is "IN" or "OUT".
type CreateCashEntryRequest struct {
	Type     string         `json:"type" binding:"required"`
	Category string         `json:"category"`
	Amount   LenientDecimal `json:"amount"`
	Note     string         `json:"note"`
}
