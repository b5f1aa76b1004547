package service

import (
	"context"
	"fmt"
	"log"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/ahmadfaris/kasirku-api/pkg/printer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PrinterService handles receipt formatting and thermal printing
type PrinterService struct {
	printer         printer.Printer
	transactionRepo repository.TransactionRepository
	settingsRepo    repository.SettingsRepository
	printerType     string
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	p printer.Printer,
	transactionRepo repository.TransactionRepository,
	settingsRepo repository.SettingsRepository,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:         p,
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
		printerType:     printerType,
	}
}

// PrinterStatus returns the current printer status information
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer. The receipt data is returned
// so the handler can respond with JSON when the printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "PRINTER TEST",
			Address:   "Test Address",
			Phone:     "0800-000-000",
		},
		InvoiceNo:     "TEST-001",
		Date:          "Test Date",
		Cashier:       "System",
		PaymentMethod: enum.PaymentMethodCash.String(),
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: decimal.NewFromInt(10000), Discount: decimal.Zero, Total: decimal.NewFromInt(10000)},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: decimal.NewFromInt(5000), Discount: decimal.Zero, Total: decimal.NewFromInt(10000)},
		},
		SubTotal:       decimal.NewFromInt(20000),
		GlobalDiscount: decimal.Zero,
		Tax:            decimal.Zero,
		Total:          decimal.NewFromInt(20000),
		CashReceived:   decimal.NewFromInt(20000),
		Change:         decimal.Zero,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// BuildReceipt composes the printable receipt for a stored transaction
func (s *PrinterService) BuildReceipt(ctx context.Context, transactionID uuid.UUID) (*entity.Receipt, error) {
	trx, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if trx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultStoreSettings()
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: settings.StoreName,
			Address:   settings.Address,
			Phone:     settings.Phone,
		},
		InvoiceNo:      trx.InvoiceNo,
		Date:           trx.CreatedAt.Format("2006-01-02 15:04"),
		Cashier:        trx.CashierName,
		Customer:       trx.CustomerName,
		PaymentMethod:  trx.PaymentMethod.String(),
		SubTotal:       trx.SubTotal,
		GlobalDiscount: trx.GlobalDiscount,
		Tax:            trx.TaxAmount,
		Total:          trx.TotalAmount,
		CashReceived:   trx.CashReceived,
		Change:         trx.ChangeAmount,
		PointsEarned:   trx.PointsEarned,
		Footer:         settings.ReceiptFooter,
	}

	for _, item := range trx.Items {
		lineDiscount := item.Discount.Mul(decimal.NewFromInt(int64(item.Quantity)))
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Discount:  lineDiscount,
			Total:     item.LineTotal().Sub(lineDiscount),
		})
	}

	return receipt, nil
}

// PrintTransactionReceipt builds and prints the receipt for a transaction.
// The receipt is returned even when printing fails, so the caller can still
// show it on screen.
func (s *PrinterService) PrintTransactionReceipt(ctx context.Context, transactionID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.BuildReceipt(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (transaction %s): %v", transactionID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

func money(d decimal.Decimal) string {
	return d.String()
}

// FormatReceipt converts a Receipt into ESC/POS bytes
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Invoice:", r.InvoiceNo).
		KeyValue("Date:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	doc.KeyValue("Payment:", r.PaymentMethod)

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, money(item.Total))
		if item.Quantity > 1 {
			doc.IndentedLine(fmt.Sprintf("@ %s each", money(item.UnitPrice)))
		}
		if item.Discount.IsPositive() {
			doc.IndentedLine(fmt.Sprintf("disc -%s", money(item.Discount)))
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", money(r.SubTotal))
	if r.GlobalDiscount.IsPositive() {
		doc.KeyValue("Discount:", "-"+money(r.GlobalDiscount))
	}
	if r.Tax.IsPositive() {
		doc.KeyValue("Tax:", money(r.Tax))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", money(r.Total)).
		SetBold(false)

	if r.CashReceived.IsPositive() {
		doc.KeyValue("Cash:", money(r.CashReceived)).
			KeyValue("Change:", money(r.Change))
	}
	if r.PointsEarned > 0 {
		doc.KeyValue("Points:", fmt.Sprintf("+%d", r.PointsEarned))
	}

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed()
	if r.Footer != "" {
		doc.Text(r.Footer)
	}
	doc.LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
