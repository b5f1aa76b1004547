package service

import (
	"testing"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/stretchr/testify/require"
)

func saleAt(t time.Time, total, tax, cost string, qty int) entity.Transaction {
	return entity.Transaction{
		TotalAmount: d(total),
		TaxAmount:   d(tax),
		CreatedAt:   t,
		Items: []entity.TransactionItem{
			{CostPrice: d(cost), Quantity: qty},
		},
	}
}

func entryAt(t time.Time, typ enum.CashEntryType, amount string) entity.CashEntry {
	return entity.CashEntry{Type: typ, Amount: d(amount), CreatedAt: t}
}

func TestBuildPLReport(t *testing.T) {
	now := time.Now()

	transactions := []entity.Transaction{
		// 110000 total incl. 10000 tax, COGS 2 x 30000
		saleAt(now.Add(-2*time.Hour), "110000", "10000", "30000", 2),
	}
	entries := []entity.CashEntry{
		entryAt(now.Add(-3*time.Hour), enum.CashEntryTypeIn, "700000"),
		entryAt(now.Add(-1*time.Hour), enum.CashEntryTypeOut, "100000"),
	}

	report := BuildPLReport(now, transactions, entries, enum.ReportPeriodDaily)

	require.True(t, report.TotalSales.Equal(d("100000")), "sales net of tax: %s", report.TotalSales)
	require.True(t, report.TotalCOGS.Equal(d("60000")))
	require.True(t, report.GrossProfit.Equal(d("40000")))
	require.True(t, report.OtherIncome.Equal(d("700000")))
	require.True(t, report.OperationalExpenses.Equal(d("100000")))
	require.True(t, report.NetProfit.Equal(d("640000")))
	require.Equal(t, 1, report.TransactionCount)

	// Identity: netProfit = grossProfit + otherIncome - expenses
	require.True(t, report.NetProfit.Equal(report.GrossProfit.Add(report.OtherIncome).Sub(report.OperationalExpenses)))
}

func TestBuildPLReportWindowExcludesOldData(t *testing.T) {
	now := time.Now()

	transactions := []entity.Transaction{
		saleAt(now.Add(-36*time.Hour), "110000", "10000", "30000", 2),
	}

	daily := BuildPLReport(now, transactions, nil, enum.ReportPeriodDaily)
	require.True(t, daily.TotalSales.IsZero())
	require.Zero(t, daily.TransactionCount)

	weekly := BuildPLReport(now, transactions, nil, enum.ReportPeriodWeekly)
	require.True(t, weekly.TotalSales.Equal(d("100000")))
	require.Equal(t, 1, weekly.TransactionCount)
}

func TestReportPeriodBoundary(t *testing.T) {
	now := time.Now()

	// Exactly 24h old: ceil(24h/24h) = 1 <= 1, still inside daily
	require.True(t, enum.ReportPeriodDaily.Contains(now, now.Add(-24*time.Hour)))
	// A minute past: ceil -> 2, outside daily
	require.False(t, enum.ReportPeriodDaily.Contains(now, now.Add(-24*time.Hour-time.Minute)))
	require.True(t, enum.ReportPeriodWeekly.Contains(now, now.Add(-24*time.Hour-time.Minute)))
	require.True(t, enum.ReportPeriodMonthly.Contains(now, now.Add(-29*24*time.Hour)))
}

func TestNetBalance(t *testing.T) {
	now := time.Now()

	transactions := []entity.Transaction{
		saleAt(now.AddDate(0, -2, 0), "110000", "10000", "30000", 2),
		saleAt(now, "55000", "5000", "30000", 1),
	}
	entries := []entity.CashEntry{
		entryAt(now.AddDate(0, -1, 0), enum.CashEntryTypeIn, "700000"),
		entryAt(now, enum.CashEntryTypeOut, "100000"),
	}

	// (110000 + 55000 + 700000) - (60000 + 30000 + 100000)
	balance := NetBalance(transactions, entries)
	require.True(t, balance.Equal(d("675000")), "balance: %s", balance)
}

func TestNetBalanceRecomputesAfterDeletion(t *testing.T) {
	now := time.Now()

	entries := []entity.CashEntry{
		entryAt(now, enum.CashEntryTypeIn, "500000"),
		entryAt(now, enum.CashEntryTypeOut, "200000"),
	}
	require.True(t, NetBalance(nil, entries).Equal(d("300000")))

	// The OUT entry deleted: the figure simply stops counting it
	require.True(t, NetBalance(nil, entries[:1]).Equal(d("500000")))
}

func TestBuildDailyCashSeries(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var transactions []entity.Transaction
	var entries []entity.CashEntry
	for day := 0; day < 12; day++ {
		transactions = append(transactions, saleAt(base.AddDate(0, 0, day), "10000", "0", "4000", 1))
	}
	entries = append(entries, entryAt(base.AddDate(0, 0, 11), enum.CashEntryTypeOut, "2000"))

	series := BuildDailyCashSeries(transactions, entries, 10)

	require.Len(t, series, 10, "only the most recent buckets are kept")
	require.Equal(t, "2026-03-03", series[0].Date, "chronological order, oldest dropped")
	require.Equal(t, "2026-03-12", series[9].Date)

	// Last bucket merges the sale and the manual OUT entry
	require.True(t, series[9].CashIn.Equal(d("10000")))
	require.True(t, series[9].CashOut.Equal(d("6000")), "COGS 4000 + OUT 2000")
}

func TestClassifyStockPriority(t *testing.T) {
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	nextWeek := today.AddDate(0, 0, 7)
	nextYear := today.AddDate(1, 0, 0)

	// Expired wins even when stock is also low
	expired := &entity.Product{Stock: 1, ExpiryDate: &yesterday}
	require.Equal(t, enum.StockStatusExpired, ClassifyStock(expired, today, 30, 5))

	// Expiry today counts as expired
	sameDay := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	require.Equal(t, enum.StockStatusExpired, ClassifyStock(&entity.Product{Stock: 50, ExpiryDate: &sameDay}, today, 30, 5))

	expiringSoon := &entity.Product{Stock: 1, ExpiryDate: &nextWeek}
	require.Equal(t, enum.StockStatusExpiringSoon, ClassifyStock(expiringSoon, today, 30, 5))

	lowStock := &entity.Product{Stock: 5, ExpiryDate: &nextYear}
	require.Equal(t, enum.StockStatusLowStock, ClassifyStock(lowStock, today, 30, 5))

	safe := &entity.Product{Stock: 6, ExpiryDate: &nextYear}
	require.Equal(t, enum.StockStatusSafe, ClassifyStock(safe, today, 30, 5))

	noExpiry := &entity.Product{Stock: 100}
	require.Equal(t, enum.StockStatusSafe, ClassifyStock(noExpiry, today, 30, 5))
}

func TestBuildStockHealthSetsOverlap(t *testing.T) {
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	nextWeek := today.AddDate(0, 0, 7)

	// Low stock AND expiring soon: appears in both alert sets
	products := []entity.Product{
		{Name: "Roti", Stock: 2, ExpiryDate: &nextWeek},
	}

	health := BuildStockHealth(products, today, 30, 5)
	require.Len(t, health.ExpiringSoon, 1)
	require.Len(t, health.LowStock, 1)
	require.Empty(t, health.Expired)
}
