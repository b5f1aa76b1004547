package service

import (
	"context"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// dashboardSeriesPoints is how many day buckets the cash-flow chart shows
const dashboardSeriesPoints = 10

// DashboardSummary is the single payload behind the home screen
type DashboardSummary struct {
	TodaySales        decimal.Decimal  `json:"today_sales"`
	TodayTransactions int              `json:"today_transactions"`
	NetBalance        decimal.Decimal  `json:"net_balance"`
	ProductCount      int              `json:"product_count"`
	CustomerCount     int              `json:"customer_count"`
	StaffCount        int64            `json:"staff_count"`
	LowStockCount     int              `json:"low_stock_count"`
	ExpiringSoonCount int              `json:"expiring_soon_count"`
	ExpiredCount      int              `json:"expired_count"`
	CashFlow          []DailyCashPoint `json:"cash_flow"`
}

// DashboardService aggregates the figures shown on the home screen
type DashboardService struct {
	transactionRepo repository.TransactionRepository
	cashEntryRepo   repository.CashEntryRepository
	productRepo     repository.ProductRepository
	customerRepo    repository.CustomerRepository
	userRepo        repository.UserRepository
	settingsRepo    repository.SettingsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	transactionRepo repository.TransactionRepository,
	cashEntryRepo repository.CashEntryRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	settingsRepo repository.SettingsRepository,
) *DashboardService {
	return &DashboardService{
		transactionRepo: transactionRepo,
		cashEntryRepo:   cashEntryRepo,
		productRepo:     productRepo,
		customerRepo:    customerRepo,
		userRepo:        userRepo,
		settingsRepo:    settingsRepo,
	}
}

// GetSummary recomputes the dashboard from stored history. Nothing here is
// cached or materialized.
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	transactions, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.cashEntryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	staffCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultStoreSettings()
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	summary := &DashboardSummary{
		TodaySales:    decimal.Zero,
		NetBalance:    NetBalance(transactions, entries),
		ProductCount:  len(products),
		CustomerCount: len(customers),
		StaffCount:    staffCount,
		CashFlow:      BuildDailyCashSeries(transactions, entries, dashboardSeriesPoints),
	}

	for _, trx := range transactions {
		if trx.CreatedAt.Format("2006-01-02") == today {
			summary.TodaySales = summary.TodaySales.Add(trx.TotalAmount)
			summary.TodayTransactions++
		}
	}

	health := BuildStockHealth(products, now, settings.ExpiryWarnDays, settings.LowStockLevel)
	summary.LowStockCount = len(health.LowStock)
	summary.ExpiringSoonCount = len(health.ExpiringSoon)
	summary.ExpiredCount = len(health.Expired)

	return summary, nil
}
