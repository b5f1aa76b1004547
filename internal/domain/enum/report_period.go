package enum

import (
	"fmt"
	"math"
	"time"
)

// ReportPeriod represents the reporting time window
type ReportPeriod int

const (
	ReportPeriodDaily ReportPeriod = iota
	ReportPeriodWeekly
	ReportPeriodMonthly
)

var reportPeriodNames = [...]string{"daily", "weekly", "monthly"}

func (p ReportPeriod) String() string {
	if p < 0 || int(p) >= len(reportPeriodNames) {
		return "daily"
	}
	return reportPeriodNames[p]
}

// Days returns the window size in days
func (p ReportPeriod) Days() int {
	switch p {
	case ReportPeriodWeekly:
		return 7
	case ReportPeriodMonthly:
		return 30
	}
	return 1
}

// Contains reports whether t falls in the window ending at now.
// The boundary rule is ceil(|now-t| / 1 day) <= N days.
func (p ReportPeriod) Contains(now, t time.Time) bool {
	diff := math.Abs(now.Sub(t).Hours()) / 24
	return int(math.Ceil(diff)) <= p.Days()
}

// ParseReportPeriod converts a string name into a ReportPeriod
func ParseReportPeriod(s string) (ReportPeriod, error) {
	switch s {
	case "daily", "":
		return ReportPeriodDaily, nil
	case "weekly":
		return ReportPeriodWeekly, nil
	case "monthly":
		return ReportPeriodMonthly, nil
	}
	return ReportPeriodDaily, fmt.Errorf("unknown report period: %q", s)
}
