package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/ahmadfaris/kasirku-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CartLine is one priced cart position, independent of the live catalog.
// Discount is the absolute amount taken off the whole line.
type CartLine struct {
	Price    decimal.Decimal
	Quantity int
	Discount decimal.Decimal
}

// Totals is the result of the checkout computation pipeline
type Totals struct {
	SubTotal           decimal.Decimal `json:"sub_total"`
	ItemDiscountTotal  decimal.Decimal `json:"item_discount_total"`
	TotalAfterDiscount decimal.Decimal `json:"total_after_discount"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	GrandTotal         decimal.Decimal `json:"grand_total"`
}

// ComputeTotals runs the pricing pipeline over the cart. It is a pure
// function: discounts can never push the taxable base below zero, so the
// grand total is never negative.
func ComputeTotals(lines []CartLine, globalDiscount, taxPercentage decimal.Decimal) Totals {
	subTotal := decimal.Zero
	itemDiscounts := decimal.Zero
	for _, line := range lines {
		subTotal = subTotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		itemDiscounts = itemDiscounts.Add(line.Discount)
	}

	if globalDiscount.IsNegative() {
		globalDiscount = decimal.Zero
	}

	totalAfterDiscount := subTotal.Sub(itemDiscounts).Sub(globalDiscount)
	if totalAfterDiscount.IsNegative() {
		totalAfterDiscount = decimal.Zero
	}

	taxAmount := totalAfterDiscount.Mul(taxPercentage).Div(oneHundred)

	return Totals{
		SubTotal:           subTotal,
		ItemDiscountTotal:  itemDiscounts,
		TotalAfterDiscount: totalAfterDiscount,
		TaxAmount:          taxAmount,
		GrandTotal:         totalAfterDiscount.Add(taxAmount),
	}
}

// CashPayment carries the cash tendered by the customer
type CashPayment struct {
	CashReceived decimal.Decimal
}

// CardPayment carries debit/credit card details
type CardPayment struct {
	BankName   string
	CardNumber string
}

// EWalletPayment carries QRIS/e-wallet details
type EWalletPayment struct {
	ProviderName    string
	ReferenceNumber string
}

// PaymentInput is a tagged variant: exactly the detail struct matching
// Method must be set; the others stay nil.
type PaymentInput struct {
	Method  enum.PaymentMethod
	Cash    *CashPayment
	Card    *CardPayment
	EWallet *EWalletPayment
}

// IsPaymentValid reports whether the payment can settle the computed
// totals. Cash is compared against the floored grand total: paying the
// exact floored amount is accepted. An invalid payment is the sole
// rejection signal for checkout; no error is raised here.
func IsPaymentValid(totals Totals, payment PaymentInput) bool {
	if !totals.GrandTotal.IsPositive() {
		return false
	}

	switch payment.Method {
	case enum.PaymentMethodCash:
		return payment.Cash != nil &&
			payment.Cash.CashReceived.GreaterThanOrEqual(totals.GrandTotal.Floor())
	case enum.PaymentMethodDebitCard, enum.PaymentMethodCreditCard:
		return payment.Card != nil &&
			strings.TrimSpace(payment.Card.BankName) != "" &&
			strings.TrimSpace(payment.Card.CardNumber) != ""
	case enum.PaymentMethodQRIS, enum.PaymentMethodEWallet:
		return payment.EWallet != nil &&
			strings.TrimSpace(payment.EWallet.ProviderName) != "" &&
			strings.TrimSpace(payment.EWallet.ReferenceNumber) != ""
	}
	return false
}

// ChangeFor returns the change owed on a cash payment. The comparison
// base is the floored grand total, matching IsPaymentValid.
func ChangeFor(totals Totals, cashReceived decimal.Decimal) decimal.Decimal {
	change := cashReceived.Sub(totals.GrandTotal.Floor())
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}

// LoyaltyPoints returns the points accrued for a checkout: one point per
// pointsDivisor currency units of discounted pre-tax spend, floored.
func LoyaltyPoints(totalAfterDiscount decimal.Decimal, pointsDivisor int64) int {
	if pointsDivisor <= 0 {
		return 0
	}
	return int(totalAfterDiscount.Div(decimal.NewFromInt(pointsDivisor)).Floor().IntPart())
}

// CartItemInput is one cart position as submitted by the terminal.
// Discount is the absolute line discount; when nil it defaults from the
// product's default discount percent.
type CartItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Discount  *decimal.Decimal
}

// CheckoutInput represents a checkout confirmation
type CheckoutInput struct {
	Items          []CartItemInput
	GlobalDiscount decimal.Decimal
	Payment        PaymentInput
	CustomerID     *uuid.UUID
	CashierID      uuid.UUID
	CashierName    string
}

// CheckoutService validates carts, computes totals and commits
// transactions atomically
type CheckoutService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	customerRepo    repository.CustomerRepository
	settingsRepo    repository.SettingsRepository
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	transactionRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
) *CheckoutService {
	return &CheckoutService{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		customerRepo:    customerRepo,
		settingsRepo:    settingsRepo,
	}
}

func (s *CheckoutService) storeSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultStoreSettings()
	}
	return settings, nil
}

// resolveCart loads the products behind the cart and freezes them into
// priced lines plus item snapshots.
func (s *CheckoutService) resolveCart(ctx context.Context, items []CartItemInput) ([]CartLine, []entity.TransactionItem, map[uuid.UUID]*entity.Product, error) {
	if len(items) == 0 {
		return nil, nil, nil, apperror.NewBadRequestError("Cart is empty")
	}

	productIDs := make([]uuid.UUID, len(items))
	for i, item := range items {
		if item.Quantity < 1 {
			return nil, nil, nil, apperror.NewBadRequestError("Item quantity must be at least 1")
		}
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, nil, nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	lines := make([]CartLine, 0, len(items))
	snapshots := make([]entity.TransactionItem, 0, len(items))

	for _, item := range items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, nil, nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}

		discount := product.DefaultDiscountAmount().Mul(decimal.NewFromInt(int64(item.Quantity)))
		if item.Discount != nil {
			discount = *item.Discount
		}
		if discount.IsNegative() {
			discount = decimal.Zero
		}

		lines = append(lines, CartLine{
			Price:    product.Price,
			Quantity: item.Quantity,
			Discount: discount,
		})

		snapshots = append(snapshots, entity.TransactionItem{
			ProductID: product.ID,
			SKU:       product.SKU,
			Name:      product.Name,
			CostPrice: product.CostPrice,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Discount:  discount,
		})
	}

	return lines, snapshots, productMap, nil
}

// Preview computes totals for the current cart without committing anything
func (s *CheckoutService) Preview(ctx context.Context, items []CartItemInput, globalDiscount decimal.Decimal) (*Totals, error) {
	settings, err := s.storeSettings(ctx)
	if err != nil {
		return nil, err
	}

	lines, _, _, err := s.resolveCart(ctx, items)
	if err != nil {
		return nil, err
	}

	totals := ComputeTotals(lines, globalDiscount, settings.TaxPercentage)
	return &totals, nil
}

// Checkout validates the payment and commits the sale as one atomic unit:
// the transaction record, every stock decrement and the loyalty point
// accrual all land together or not at all.
func (s *CheckoutService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Transaction, error) {
	settings, err := s.storeSettings(ctx)
	if err != nil {
		return nil, err
	}

	lines, snapshots, productMap, err := s.resolveCart(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	globalDiscount := input.GlobalDiscount
	if globalDiscount.IsNegative() {
		globalDiscount = decimal.Zero
	}

	totals := ComputeTotals(lines, globalDiscount, settings.TaxPercentage)

	if !IsPaymentValid(totals, input.Payment) {
		return nil, apperror.NewAppError(422, "Payment is not valid for this cart")
	}

	now := time.Now()
	trx := &entity.Transaction{
		InvoiceNo:         utils.GenerateInvoiceNo(now),
		SubTotal:          totals.SubTotal,
		ItemDiscountTotal: totals.ItemDiscountTotal,
		GlobalDiscount:    globalDiscount,
		TaxAmount:         totals.TaxAmount,
		TotalAmount:       totals.GrandTotal,
		PaymentMethod:     input.Payment.Method,
		CashierID:         input.CashierID,
		CashierName:       input.CashierName,
		CreatedAt:         now,
		Items:             snapshots,
	}

	switch input.Payment.Method {
	case enum.PaymentMethodCash:
		trx.CashReceived = input.Payment.Cash.CashReceived
		trx.ChangeAmount = ChangeFor(totals, input.Payment.Cash.CashReceived)
	case enum.PaymentMethodDebitCard, enum.PaymentMethodCreditCard:
		trx.BankName = strings.TrimSpace(input.Payment.Card.BankName)
		trx.CardNumber = strings.TrimSpace(input.Payment.Card.CardNumber)
	case enum.PaymentMethodQRIS, enum.PaymentMethodEWallet:
		trx.ProviderName = strings.TrimSpace(input.Payment.EWallet.ProviderName)
		trx.ReferenceNumber = strings.TrimSpace(input.Payment.EWallet.ReferenceNumber)
	}

	var accrual *repository.PointAccrual
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}

		trx.CustomerID = &customer.ID
		trx.CustomerName = customer.Name
		trx.CustomerPhone = customer.Phone
		trx.PointsEarned = LoyaltyPoints(totals.TotalAfterDiscount, settings.PointsDivisor)

		if trx.PointsEarned > 0 {
			accrual = &repository.PointAccrual{
				CustomerID: customer.ID,
				Points:     trx.PointsEarned,
			}
		}
	}

	decrements := make(map[uuid.UUID]int, len(input.Items))
	for _, item := range input.Items {
		decrements[item.ProductID] += item.Quantity
	}

	failedIDs, err := s.transactionRepo.CommitCheckout(ctx, &repository.CheckoutCommit{
		Transaction:     trx,
		StockDecrements: decrements,
		Accrual:         accrual,
	})
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if product, exists := productMap[id]; exists {
				failedNames = append(failedNames, product.Name)
			}
		}
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for: %s", strings.Join(failedNames, ", ")))
	}

	return s.transactionRepo.GetByID(ctx, trx.ID)
}

// GetTransaction retrieves a transaction with its item snapshots
func (s *CheckoutService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	trx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return trx, nil
}

// ListTransactions lists the history most-recent-first
func (s *CheckoutService) ListTransactions(ctx context.Context, params *repository.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	return s.transactionRepo.List(ctx, params)
}

// DeleteTransaction removes a transaction from the history. This is a
// history correction for authorized roles; stock and points are not
// compensated.
func (s *CheckoutService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	trx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if trx == nil {
		return apperror.NewNotFoundError("Transaction")
	}
	return s.transactionRepo.Delete(ctx, id)
}
