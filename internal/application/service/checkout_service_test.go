package service

import (
	"context"
	"testing"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	infraRepo "github.com/ahmadfaris/kasirku-api/internal/infrastructure/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func d(s string) decimal.Decimal {
	dec, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return dec
}

func TestComputeTotals(t *testing.T) {
	// Two units at 50000, 10% tax, no discounts
	totals := ComputeTotals([]CartLine{
		{Price: d("50000"), Quantity: 2, Discount: decimal.Zero},
	}, decimal.Zero, d("10"))

	require.True(t, totals.SubTotal.Equal(d("100000")), "sub total: %s", totals.SubTotal)
	require.True(t, totals.TotalAfterDiscount.Equal(d("100000")))
	require.True(t, totals.TaxAmount.Equal(d("10000")), "tax: %s", totals.TaxAmount)
	require.True(t, totals.GrandTotal.Equal(d("110000")), "grand total: %s", totals.GrandTotal)
}

func TestComputeTotalsDiscountsClampToZero(t *testing.T) {
	// Discounts exceeding the sub total must not drive the base negative
	totals := ComputeTotals([]CartLine{
		{Price: d("10000"), Quantity: 1, Discount: d("4000")},
	}, d("20000"), d("11"))

	require.True(t, totals.TotalAfterDiscount.IsZero())
	require.True(t, totals.TaxAmount.IsZero())
	require.True(t, totals.GrandTotal.IsZero())
}

func TestComputeTotalsNegativeGlobalDiscountIgnored(t *testing.T) {
	totals := ComputeTotals([]CartLine{
		{Price: d("10000"), Quantity: 1, Discount: decimal.Zero},
	}, d("-5000"), decimal.Zero)

	require.True(t, totals.GrandTotal.Equal(d("10000")))
}

func TestComputeTotalsTaxOnDiscountedBase(t *testing.T) {
	// Tax applies after all discounts, not on the raw sub total
	totals := ComputeTotals([]CartLine{
		{Price: d("60000"), Quantity: 1, Discount: d("10000")},
	}, d("10000"), d("10"))

	require.True(t, totals.TotalAfterDiscount.Equal(d("40000")))
	require.True(t, totals.TaxAmount.Equal(d("4000")))
	require.True(t, totals.GrandTotal.Equal(d("44000")))
}

func TestIsPaymentValidCash(t *testing.T) {
	totals := Totals{GrandTotal: d("110000.75")}

	exact := PaymentInput{Method: enum.PaymentMethodCash, Cash: &CashPayment{CashReceived: d("110000")}}
	require.True(t, IsPaymentValid(totals, exact), "exact floored amount settles")

	short := PaymentInput{Method: enum.PaymentMethodCash, Cash: &CashPayment{CashReceived: d("109999")}}
	require.False(t, IsPaymentValid(totals, short))

	missing := PaymentInput{Method: enum.PaymentMethodCash}
	require.False(t, IsPaymentValid(totals, missing))
}

func TestIsPaymentValidCard(t *testing.T) {
	totals := Totals{GrandTotal: d("50000")}

	valid := PaymentInput{Method: enum.PaymentMethodDebitCard, Card: &CardPayment{BankName: "BCA", CardNumber: "1234"}}
	require.True(t, IsPaymentValid(totals, valid))

	blankBank := PaymentInput{Method: enum.PaymentMethodCreditCard, Card: &CardPayment{BankName: "   ", CardNumber: "1234"}}
	require.False(t, IsPaymentValid(totals, blankBank))
}

func TestIsPaymentValidEWallet(t *testing.T) {
	totals := Totals{GrandTotal: d("50000")}

	valid := PaymentInput{Method: enum.PaymentMethodQRIS, EWallet: &EWalletPayment{ProviderName: "GoPay", ReferenceNumber: "REF-1"}}
	require.True(t, IsPaymentValid(totals, valid))

	blankRef := PaymentInput{Method: enum.PaymentMethodQRIS, EWallet: &EWalletPayment{ProviderName: "GoPay", ReferenceNumber: ""}}
	require.False(t, IsPaymentValid(totals, blankRef))
}

func TestIsPaymentValidRejectsEmptyCart(t *testing.T) {
	totals := Totals{GrandTotal: decimal.Zero}
	payment := PaymentInput{Method: enum.PaymentMethodCash, Cash: &CashPayment{CashReceived: d("100000")}}
	require.False(t, IsPaymentValid(totals, payment))
}

func TestChangeFor(t *testing.T) {
	totals := Totals{GrandTotal: d("110000")}
	require.True(t, ChangeFor(totals, d("150000")).Equal(d("40000")))
	require.True(t, ChangeFor(totals, d("110000")).IsZero())
	require.True(t, ChangeFor(totals, d("100000")).IsZero(), "underpayment owes no negative change")
}

func TestLoyaltyPoints(t *testing.T) {
	require.Equal(t, 10, LoyaltyPoints(d("100000"), 10000))
	require.Equal(t, 9, LoyaltyPoints(d("99999"), 10000))
	require.Equal(t, 0, LoyaltyPoints(d("9999"), 10000))
	require.Equal(t, 0, LoyaltyPoints(d("100000"), 0))
}

func seedCheckout(t *testing.T, db *gorm.DB) (*CheckoutService, *entity.Product, *entity.Customer, *entity.User) {
	t.Helper()

	product := &entity.Product{
		SKU:         "SKU-001",
		Name:        "Kopi Susu",
		Category:    "Minuman",
		CostPrice:   d("30000"),
		Price:       d("50000"),
		Stock:       10,
		ArrivalDate: time.Now(),
	}
	require.NoError(t, db.Create(product).Error)

	customer := &entity.Customer{
		Name:       "Budi",
		CardNumber: "CARD-001",
		JoinDate:   time.Now(),
	}
	require.NoError(t, db.Create(customer).Error)

	cashier := &entity.User{
		Username:     "kasir1",
		PasswordHash: "x",
		FullName:     "Kasir Satu",
		Role:         entity.RoleCashier,
		CardID:       "STF-001",
	}
	require.NoError(t, db.Create(cashier).Error)

	settings := entity.DefaultStoreSettings()
	settings.TaxPercentage = d("10")
	require.NoError(t, db.Create(settings).Error)

	svc := NewCheckoutService(
		infraRepo.NewTransactionRepository(db),
		infraRepo.NewProductRepository(db),
		infraRepo.NewCustomerRepository(db),
		infraRepo.NewSettingsRepository(db),
	)
	return svc, product, customer, cashier
}

func TestCheckoutCashWithLoyalty(t *testing.T) {
	db := newTestDB(t)
	svc, product, customer, cashier := seedCheckout(t, db)
	ctx := context.Background()

	trx, err := svc.Checkout(ctx, &CheckoutInput{
		Items: []CartItemInput{
			{ProductID: product.ID, Quantity: 2},
		},
		Payment: PaymentInput{
			Method: enum.PaymentMethodCash,
			Cash:   &CashPayment{CashReceived: d("150000")},
		},
		CustomerID:  &customer.ID,
		CashierID:   cashier.ID,
		CashierName: cashier.FullName,
	})
	require.NoError(t, err)
	require.NotNil(t, trx)

	require.True(t, trx.SubTotal.Equal(d("100000")))
	require.True(t, trx.TaxAmount.Equal(d("10000")))
	require.True(t, trx.TotalAmount.Equal(d("110000")))
	require.True(t, trx.ChangeAmount.Equal(d("40000")))
	require.Equal(t, 10, trx.PointsEarned)
	require.NotEmpty(t, trx.InvoiceNo)
	require.Len(t, trx.Items, 1)
	require.Equal(t, "Kopi Susu", trx.Items[0].Name)
	require.True(t, trx.Items[0].CostPrice.Equal(d("30000")), "cost price frozen on the item")

	// Stock decremented
	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	require.Equal(t, 8, stored.Stock)

	// Points accrued
	var member entity.Customer
	require.NoError(t, db.First(&member, "id = ?", customer.ID).Error)
	require.Equal(t, 10, member.Points)
}

func TestCheckoutWithoutCustomerEarnsNoPoints(t *testing.T) {
	db := newTestDB(t)
	svc, product, _, cashier := seedCheckout(t, db)

	trx, err := svc.Checkout(context.Background(), &CheckoutInput{
		Items: []CartItemInput{{ProductID: product.ID, Quantity: 1}},
		Payment: PaymentInput{
			Method: enum.PaymentMethodCash,
			Cash:   &CashPayment{CashReceived: d("55000")},
		},
		CashierID:   cashier.ID,
		CashierName: cashier.FullName,
	})
	require.NoError(t, err)
	require.Equal(t, 0, trx.PointsEarned)
	require.Nil(t, trx.CustomerID)
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc, product, customer, cashier := seedCheckout(t, db)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		Items: []CartItemInput{{ProductID: product.ID, Quantity: 11}},
		Payment: PaymentInput{
			Method: enum.PaymentMethodCash,
			Cash:   &CashPayment{CashReceived: d("1000000")},
		},
		CustomerID:  &customer.ID,
		CashierID:   cashier.ID,
		CashierName: cashier.FullName,
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Kopi Susu")

	// Nothing committed: stock, history and points untouched
	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	require.Equal(t, 10, stored.Stock)

	var count int64
	require.NoError(t, db.Model(&entity.Transaction{}).Count(&count).Error)
	require.Zero(t, count)

	var member entity.Customer
	require.NoError(t, db.First(&member, "id = ?", customer.ID).Error)
	require.Zero(t, member.Points)
}

func TestCheckoutRejectsInvalidPayment(t *testing.T) {
	db := newTestDB(t)
	svc, product, _, cashier := seedCheckout(t, db)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		Items: []CartItemInput{{ProductID: product.ID, Quantity: 1}},
		Payment: PaymentInput{
			Method:  enum.PaymentMethodQRIS,
			EWallet: &EWalletPayment{ProviderName: "GoPay", ReferenceNumber: "   "},
		},
		CashierID: cashier.ID,
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.Transaction{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc, _, _, cashier := seedCheckout(t, db)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		Items: nil,
		Payment: PaymentInput{
			Method: enum.PaymentMethodCash,
			Cash:   &CashPayment{CashReceived: d("10000")},
		},
		CashierID: cashier.ID,
	})
	require.Error(t, err)
}

func TestCheckoutUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc, _, _, cashier := seedCheckout(t, db)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		Items: []CartItemInput{{ProductID: uuid.New(), Quantity: 1}},
		Payment: PaymentInput{
			Method: enum.PaymentMethodCash,
			Cash:   &CashPayment{CashReceived: d("10000")},
		},
		CashierID: cashier.ID,
	})
	require.Error(t, err)
}

func TestCheckoutCashFloorOnFractionalTotal(t *testing.T) {
	db := newTestDB(t)
	svc, product, _, cashier := seedCheckout(t, db)
	ctx := context.Background()

	// 50000 - 16666.67 = 33333.33; +10% tax = 36666.663, floored to 36666
	items := []CartItemInput{{ProductID: product.ID, Quantity: 1}}
	globalDiscount := d("16666.67")

	_, err := svc.Checkout(ctx, &CheckoutInput{
		Items:          items,
		GlobalDiscount: globalDiscount,
		Payment: PaymentInput{
			Method: enum.PaymentMethodCash,
			Cash:   &CashPayment{CashReceived: d("36665")},
		},
		CashierID: cashier.ID,
	})
	require.Error(t, err, "one unit under the floored total is rejected")

	trx, err := svc.Checkout(ctx, &CheckoutInput{
		Items:          items,
		GlobalDiscount: globalDiscount,
		Payment: PaymentInput{
			Method: enum.PaymentMethodCash,
			Cash:   &CashPayment{CashReceived: d("36666")},
		},
		CashierID: cashier.ID,
	})
	require.NoError(t, err, "the exact floored amount settles the sale")
	require.True(t, trx.TotalAmount.Equal(d("36666.663")), "total: %s", trx.TotalAmount)
	require.True(t, trx.ChangeAmount.IsZero())

	// Only the accepted checkout touched stock
	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	require.Equal(t, 9, stored.Stock)
}

func TestCheckoutSnapshotSurvivesPriceEdit(t *testing.T) {
	db := newTestDB(t)
	svc, product, _, cashier := seedCheckout(t, db)
	ctx := context.Background()

	trx, err := svc.Checkout(ctx, &CheckoutInput{
		Items: []CartItemInput{{ProductID: product.ID, Quantity: 1}},
		Payment: PaymentInput{
			Method: enum.PaymentMethodCash,
			Cash:   &CashPayment{CashReceived: d("55000")},
		},
		CashierID: cashier.ID,
	})
	require.NoError(t, err)

	// Catalog price doubles later; the stored item keeps the old figures
	require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", product.ID).Update("price", d("100000")).Error)

	stored, err := svc.GetTransaction(ctx, trx.ID)
	require.NoError(t, err)
	require.True(t, stored.Items[0].Price.Equal(d("50000")))
	require.True(t, stored.TotalAmount.Equal(d("55000")))
}

func TestCheckoutItemDiscountDefaultsFromProduct(t *testing.T) {
	db := newTestDB(t)
	svc, product, _, cashier := seedCheckout(t, db)

	// 10% default discount on a 50000 product = 5000 per unit
	require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", product.ID).Update("default_discount_percent", 10).Error)

	trx, err := svc.Checkout(context.Background(), &CheckoutInput{
		Items: []CartItemInput{{ProductID: product.ID, Quantity: 2}},
		Payment: PaymentInput{
			Method: enum.PaymentMethodCash,
			Cash:   &CashPayment{CashReceived: d("99000")},
		},
		CashierID: cashier.ID,
	})
	require.NoError(t, err)
	require.True(t, trx.ItemDiscountTotal.Equal(d("10000")), "item discounts: %s", trx.ItemDiscountTotal)
	// (100000 - 10000) * 1.10 = 99000
	require.True(t, trx.TotalAmount.Equal(d("99000")))
}

func TestDeleteTransactionLeavesStockAlone(t *testing.T) {
	db := newTestDB(t)
	svc, product, _, cashier := seedCheckout(t, db)
	ctx := context.Background()

	trx, err := svc.Checkout(ctx, &CheckoutInput{
		Items: []CartItemInput{{ProductID: product.ID, Quantity: 3}},
		Payment: PaymentInput{
			Method: enum.PaymentMethodCash,
			Cash:   &CashPayment{CashReceived: d("200000")},
		},
		CashierID: cashier.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTransaction(ctx, trx.ID))

	_, err = svc.GetTransaction(ctx, trx.ID)
	require.Error(t, err)

	// Deletion is a history correction, not a refund
	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	require.Equal(t, 7, stored.Stock)
}

func TestPreviewDoesNotTouchStock(t *testing.T) {
	db := newTestDB(t)
	svc, product, _, _ := seedCheckout(t, db)

	totals, err := svc.Preview(context.Background(), []CartItemInput{
		{ProductID: product.ID, Quantity: 2},
	}, decimal.Zero)
	require.NoError(t, err)
	require.True(t, totals.GrandTotal.Equal(d("110000")))

	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	require.Equal(t, 10, stored.Stock)
}
