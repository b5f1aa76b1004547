package request

import (
	"github.com/ahmadfaris/kasirku-api/internal/application/service"
	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/google/uuid"
)

// CheckoutItemRequest is one cart line in a checkout payload. Discount is
// the absolute amount taken off the whole line; when absent it defaults
// from the product's default discount percent times the quantity.
type CheckoutItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  LenientInt      `json:"quantity"`
	Discount  *LenientDecimal `json:"discount"`
}

// PaymentRequest carries the payment method plus its method-specific
// details. Only the fields matching the method are read.
type PaymentRequest struct {
	Method          string         `json:"method" binding:"required"`
	CashReceived    LenientDecimal `json:"cash_received"`
	BankName        string         `json:"bank_name"`
	CardNumber      string         `json:"card_number"`
	ProviderName    string         `json:"provider_name"`
	ReferenceNumber string         `json:"reference_number"`
}

// CheckoutRequest represents the checkout confirmation payload
type CheckoutRequest struct {
	Items          []CheckoutItemRequest `json:"items" binding:"required"`
	GlobalDiscount LenientDecimal        `json:"global_discount"`
	Payment        PaymentRequest        `json:"payment" binding:"required"`
	CustomerID     *string               `json:"customer_id"`
}

// PreviewRequest represents a totals preview payload: the cart without
// payment or commitment
type PreviewRequest struct {
	Items          []CheckoutItemRequest `json:"items" binding:"required"`
	GlobalDiscount LenientDecimal        `json:"global_discount"`
}

// ParseItems converts the wire cart lines into service inputs
func ParseItems(items []CheckoutItemRequest) ([]service.CartItemInput, error) {
	parsed := make([]service.CartItemInput, 0, len(items))
	for _, item := range items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid product ID: " + item.ProductID)
		}
		in := service.CartItemInput{
			ProductID: productID,
			Quantity:  int(item.Quantity),
		}
		if item.Discount != nil {
			d := item.Discount.Decimal
			in.Discount = &d
		}
		parsed = append(parsed, in)
	}
	return parsed, nil
}

// ToInput converts the request into a service checkout input. The cashier
// identity comes from the authenticated session, not the payload.
func (r *CheckoutRequest) ToInput(cashierID uuid.UUID, cashierName string) (*service.CheckoutInput, error) {
	items, err := ParseItems(r.Items)
	if err != nil {
		return nil, err
	}

	method, err := enum.ParsePaymentMethod(r.Payment.Method)
	if err != nil {
		return nil, apperror.NewBadRequestError("Unknown payment method: " + r.Payment.Method)
	}

	payment := service.PaymentInput{Method: method}
	switch {
	case method == enum.PaymentMethodCash:
		payment.Cash = &service.CashPayment{CashReceived: r.Payment.CashReceived.Decimal}
	case method.IsCard():
		payment.Card = &service.CardPayment{
			BankName:   r.Payment.BankName,
			CardNumber: r.Payment.CardNumber,
		}
	case method.IsEWallet():
		payment.EWallet = &service.EWalletPayment{
			ProviderName:    r.Payment.ProviderName,
			ReferenceNumber: r.Payment.ReferenceNumber,
		}
	}

	input := &service.CheckoutInput{
		Items:          items,
		GlobalDiscount: r.GlobalDiscount.Decimal,
		Payment:        payment,
		CashierID:      cashierID,
		CashierName:    cashierName,
	}

	if r.CustomerID != nil && *r.CustomerID != "" {
		customerID, err := uuid.Parse(*r.CustomerID)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid customer ID: " + *r.CustomerID)
		}
		input.CustomerID = &customerID
	}

	return input, nil
}
