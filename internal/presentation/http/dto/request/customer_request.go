package request

// CreateCustomerRequest represents the create customer request payload
type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	CardNumber string `json:"card_number"`
}

// UpdateCustomerRequest represents the update customer request payload.
// Absent fields are left unchanged; points are never writable here.
type UpdateCustomerRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	CardNumber *string `json:"card_number"`
}
