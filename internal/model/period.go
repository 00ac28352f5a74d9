package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is the aggregation granularity for a statistics query.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// ParsePeriod maps a raw query value to a Period. Unknown values are an
// error, never a fallback to a default period.
func ParsePeriod(raw string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(raw))) {
	case PeriodDaily:
		return PeriodDaily, nil
	case PeriodWeekly:
		return PeriodWeekly, nil
	case PeriodMonthly:
		return PeriodMonthly, nil
	case PeriodYearly:
		return PeriodYearly, nil
	default:
		return "", fmt.Errorf("invalid period %q", raw)
	}
}

// HourLabels returns the 24 hour buckets "00:00".."23:00".
func HourLabels() []string {
	labels := make([]string, 24)
	for i := range labels {
		labels[i] = fmt.Sprintf("%02d:00", i)
	}
	return labels
}

// WeekdayLabels returns the 7 weekday names, Sunday first.
func WeekdayLabels() []string {
	return []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
}

// MonthLabels returns the 12 month names in calendar order.
func MonthLabels() []string {
	labels := make([]string, 12)
	for i := range labels {
		labels[i] = time.Month(i + 1).String()
	}
	return labels
}

// RevenueYearLabels is the 5-year window centered two years back from now,
// used by the revenue chart when no rows exist.
func RevenueYearLabels(now time.Time) []string {
	return yearLabels(now.Year()-2, 5)
}

// CountYearLabels is the current year plus the previous four, used by the
// confirmed-cars count chart.
func CountYearLabels(now time.Time) []string {
	return yearLabels(now.Year()-4, 5)
}

func yearLabels(start, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(start + i)
	}
	return labels
}

// CanonicalLabels returns the fixed label set for a period. Yearly uses the
// revenue chart's window; callers that prefer the years actually present
// substitute them when data exists.
func (p Period) CanonicalLabels(now time.Time) []string {
	switch p {
	case PeriodDaily:
		return HourLabels()
	case PeriodWeekly:
		return WeekdayLabels()
	case PeriodMonthly:
		return MonthLabels()
	case PeriodYearly:
		return RevenueYearLabels(now)
	default:
		return nil
	}
}
