package service

import (
	"context"
	"sort"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PLReport is a profit & loss statement over a reporting window
type PLReport struct {
	Period              string          `json:"period"`
	TotalSales          decimal.Decimal `json:"total_sales"`
	TotalCOGS           decimal.Decimal `json:"total_cogs"`
	GrossProfit         decimal.Decimal `json:"gross_profit"`
	OtherIncome         decimal.Decimal `json:"other_income"`
	OperationalExpenses decimal.Decimal `json:"operational_expenses"`
	NetProfit           decimal.Decimal `json:"net_profit"`
	TransactionCount    int             `json:"transaction_count"`
}

// BuildPLReport derives a P&L statement by scanning the full transaction
// history and cash ledger. Sales are counted net of tax; the window rule
// is ceil(|now - t| / 1 day) <= N.
func BuildPLReport(now time.Time, transactions []entity.Transaction, entries []entity.CashEntry, period enum.ReportPeriod) PLReport {
	report := PLReport{
		Period:              period.String(),
		TotalSales:          decimal.Zero,
		TotalCOGS:           decimal.Zero,
		GrossProfit:         decimal.Zero,
		OtherIncome:         decimal.Zero,
		OperationalExpenses: decimal.Zero,
		NetProfit:           decimal.Zero,
	}

	for _, trx := range transactions {
		if !period.Contains(now, trx.CreatedAt) {
			continue
		}
		report.TotalSales = report.TotalSales.Add(trx.NetAmount())
		for _, item := range trx.Items {
			report.TotalCOGS = report.TotalCOGS.Add(item.LineCost())
		}
		report.TransactionCount++
	}

	for _, entry := range entries {
		if !period.Contains(now, entry.CreatedAt) {
			continue
		}
		if entry.Type == enum.CashEntryTypeIn {
			report.OtherIncome = report.OtherIncome.Add(entry.Amount)
		} else {
			report.OperationalExpenses = report.OperationalExpenses.Add(entry.Amount)
		}
	}

	report.GrossProfit = report.TotalSales.Sub(report.TotalCOGS)
	report.NetProfit = report.GrossProfit.Add(report.OtherIncome).Sub(report.OperationalExpenses)
	return report
}

// NetBalance is the all-time running cash position:
// (all sales + all cash in) - (all COGS + all cash out).
func NetBalance(transactions []entity.Transaction, entries []entity.CashEntry) decimal.Decimal {
	balance := decimal.Zero
	for _, trx := range transactions {
		balance = balance.Add(trx.TotalAmount)
		for _, item := range trx.Items {
			balance = balance.Sub(item.LineCost())
		}
	}
	for _, entry := range entries {
		if entry.Type == enum.CashEntryTypeIn {
			balance = balance.Add(entry.Amount)
		} else {
			balance = balance.Sub(entry.Amount)
		}
	}
	return balance
}

// DailyCashPoint is one calendar-day bucket on the dashboard chart
type DailyCashPoint struct {
	Date    string          `json:"date"`
	CashIn  decimal.Decimal `json:"cash_in"`
	CashOut decimal.Decimal `json:"cash_out"`
}

// BuildDailyCashSeries buckets sales and cash entries by calendar day.
// Sales contribute their total as cash in and their COGS as cash out.
// The most recent maxPoints buckets are kept, in chronological order.
func BuildDailyCashSeries(transactions []entity.Transaction, entries []entity.CashEntry, maxPoints int) []DailyCashPoint {
	type bucket struct {
		in  decimal.Decimal
		out decimal.Decimal
	}
	buckets := make(map[string]*bucket)

	get := func(t time.Time) *bucket {
		day := t.Format("2006-01-02")
		b, ok := buckets[day]
		if !ok {
			b = &bucket{in: decimal.Zero, out: decimal.Zero}
			buckets[day] = b
		}
		return b
	}

	for _, trx := range transactions {
		b := get(trx.CreatedAt)
		b.in = b.in.Add(trx.TotalAmount)
		for _, item := range trx.Items {
			b.out = b.out.Add(item.LineCost())
		}
	}

	for _, entry := range entries {
		b := get(entry.CreatedAt)
		if entry.Type == enum.CashEntryTypeIn {
			b.in = b.in.Add(entry.Amount)
		} else {
			b.out = b.out.Add(entry.Amount)
		}
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	if maxPoints > 0 && len(days) > maxPoints {
		days = days[len(days)-maxPoints:]
	}

	series := make([]DailyCashPoint, 0, len(days))
	for _, day := range days {
		series = append(series, DailyCashPoint{
			Date:    day,
			CashIn:  buckets[day].in,
			CashOut: buckets[day].out,
		})
	}
	return series
}

// ClassifyStock returns the single health label for a product.
// Priority: Expired > ExpiringSoon > LowStock > Safe.
func ClassifyStock(p *entity.Product, today time.Time, warnDays, lowStockLevel int) enum.StockStatus {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if p.ExpiryDate != nil {
		expiry := *p.ExpiryDate
		if !expiry.After(day) {
			return enum.StockStatusExpired
		}
		if !expiry.After(day.AddDate(0, 0, warnDays)) {
			return enum.StockStatusExpiringSoon
		}
	}
	if p.Stock <= lowStockLevel {
		return enum.StockStatusLowStock
	}
	return enum.StockStatusSafe
}

// StockHealth holds the alerting sets. A product can appear in more than
// one set even though its summary label shows only the highest priority.
type StockHealth struct {
	Expired      []entity.Product `json:"expired"`
	ExpiringSoon []entity.Product `json:"expiring_soon"`
	LowStock     []entity.Product `json:"low_stock"`
}

// BuildStockHealth computes the independent critical-stock and expiry sets
func BuildStockHealth(products []entity.Product, today time.Time, warnDays, lowStockLevel int) StockHealth {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	health := StockHealth{}
	for _, p := range products {
		if p.ExpiryDate != nil {
			expiry := *p.ExpiryDate
			if !expiry.After(day) {
				health.Expired = append(health.Expired, p)
			} else if !expiry.After(day.AddDate(0, 0, warnDays)) {
				health.ExpiringSoon = append(health.ExpiringSoon, p)
			}
		}
		if p.Stock <= lowStockLevel {
			health.LowStock = append(health.LowStock, p)
		}
	}
	return health
}

// ReportService derives financial reports on demand. Nothing is cached:
// every report is a fresh scan over the stored history.
type ReportService struct {
	transactionRepo repository.TransactionRepository
	cashEntryRepo   repository.CashEntryRepository
	productRepo     repository.ProductRepository
	settingsRepo    repository.SettingsRepository
}

// NewReportService creates a new report service
func NewReportService(
	transactionRepo repository.TransactionRepository,
	cashEntryRepo repository.CashEntryRepository,
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
) *ReportService {
	return &ReportService{
		transactionRepo: transactionRepo,
		cashEntryRepo:   cashEntryRepo,
		productRepo:     productRepo,
		settingsRepo:    settingsRepo,
	}
}

// ProfitLoss computes the P&L statement for the requested window
func (s *ReportService) ProfitLoss(ctx context.Context, period enum.ReportPeriod) (*PLReport, error) {
	transactions, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.cashEntryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := BuildPLReport(time.Now(), transactions, entries, period)
	return &report, nil
}

// StockReport classifies the whole catalog using the configured thresholds
func (s *ReportService) StockReport(ctx context.Context) (*StockHealth, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultStoreSettings()
	}

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	health := BuildStockHealth(products, time.Now(), settings.ExpiryWarnDays, settings.LowStockLevel)
	return &health, nil
}
