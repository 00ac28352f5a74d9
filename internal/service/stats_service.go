package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"carwash-dashboard/internal/model"
	"carwash-dashboard/internal/repository"
)

// StatsRepo is the slice of the statistics repository the service needs.
type StatsRepo interface {
	RevenueRows(ctx context.Context, period model.Period, shopID int64) ([]repository.StatRow, error)
	TypeSplitRows(ctx context.Context, period model.Period, shopID int64) ([]repository.TypeRow, error)
	CountRows(ctx context.Context, period model.Period, shopID int64) ([]repository.CountRow, error)
}

type StatsService struct {
	stats StatsRepo
	log   zerolog.Logger
	now   func() time.Time
}

func NewStatsService(stats StatsRepo, log zerolog.Logger) *StatsService {
	return &StatsService{stats: stats, log: log, now: time.Now}
}

// GetRevenueSeries builds the dense per-category revenue series for one
// period. Sparse buckets are zero-filled against the canonical label set;
// an unknown period fails before any query runs.
func (s *StatsService) GetRevenueSeries(ctx context.Context, rawPeriod string, shopID int64) (*model.RevenueSeries, error) {
	period, err := model.ParsePeriod(rawPeriod)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	rows, err := s.stats.RevenueRows(ctx, period, shopID)
	if err != nil {
		return nil, err
	}

	labels := s.revenueLabels(period, rows)
	big := s.seriesFor(rows, labels, model.CarTypeBig)
	small := s.seriesFor(rows, labels, model.CarTypeSmall)

	return &model.RevenueSeries{
		Labels:   labels,
		Datasets: model.RevenueDatasets{Big: big, Small: small},
	}, nil
}

// revenueLabels picks the x-axis. Yearly charts show the years actually
// present when there are any rows; every other period uses its fixed set.
func (s *StatsService) revenueLabels(period model.Period, rows []repository.StatRow) []string {
	if period == model.PeriodYearly && len(rows) > 0 {
		seen := make(map[string]bool)
		labels := make([]string, 0, len(rows))
		for _, row := range rows {
			if !seen[row.TimePeriod] {
				seen[row.TimePeriod] = true
				labels = append(labels, row.TimePeriod)
			}
		}
		return labels
	}
	return period.CanonicalLabels(s.now())
}

func (s *StatsService) seriesFor(rows []repository.StatRow, labels []string, carType string) []float64 {
	index := make(map[string]float64, len(rows))
	known := make(map[string]bool, len(labels))
	for _, label := range labels {
		known[label] = true
	}

	for _, row := range rows {
		if row.CarType != carType {
			continue
		}
		if !known[row.TimePeriod] {
			// A bucket outside the canonical set means the query and the
			// label set disagree; surface it rather than chart it.
			s.log.Warn().Str("bucket", row.TimePeriod).Str("car_type", carType).
				Msg("discarding bucket outside canonical label set")
			continue
		}
		index[row.TimePeriod] = row.TotalRevenue
	}

	series := make([]float64, len(labels))
	for i, label := range labels {
		series[i] = index[label]
	}
	return series
}

// GetRevenueByType computes the big/small split for all four period
// windows. The four queries are an all-or-nothing batch: any failure fails
// the whole response.
func (s *StatsService) GetRevenueByType(ctx context.Context, shopID int64) (*model.RevenueByType, error) {
	result := &model.RevenueByType{}

	targets := []struct {
		period model.Period
		split  *model.TypeSplit
	}{
		{model.PeriodDaily, &result.Daily},
		{model.PeriodWeekly, &result.Weekly},
		{model.PeriodMonthly, &result.Monthly},
		{model.PeriodYearly, &result.Yearly},
	}

	for _, target := range targets {
		rows, err := s.stats.TypeSplitRows(ctx, target.period, shopID)
		if err != nil {
			return nil, err
		}
		*target.split = buildTypeSplit(rows)
	}

	return result, nil
}

func buildTypeSplit(rows []repository.TypeRow) model.TypeSplit {
	var big, small repository.TypeRow
	for _, row := range rows {
		switch row.CarType {
		case model.CarTypeBig:
			big = row
		case model.CarTypeSmall:
			small = row
		}
	}

	total := big.CarCount + small.CarCount
	return model.TypeSplit{
		Big:   breakdownFor(big, total),
		Small: breakdownFor(small, total),
		Total: model.TypeTotal{
			Count:   total,
			Revenue: big.TotalRevenue.Add(small.TotalRevenue).StringFixed(2),
		},
	}
}

func breakdownFor(row repository.TypeRow, total int64) model.TypeBreakdown {
	return model.TypeBreakdown{
		Count:      row.CarCount,
		Revenue:    row.TotalRevenue.StringFixed(2),
		Percentage: formatPercentage(row.CarCount, total),
	}
}

// formatPercentage renders 100*part/total to one decimal place. A zero
// total yields "0.0", never a division error or NaN.
func formatPercentage(part, total int64) string {
	if total == 0 {
		return "0.0"
	}
	share := decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total))
	return share.StringFixed(1)
}

// GetCarCounts builds the count series for all four periods, zero-filled
// against each period's fixed label set.
func (s *StatsService) GetCarCounts(ctx context.Context, shopID int64) (*model.CarCounts, error) {
	now := s.now()

	result := &model.CarCounts{}
	targets := []struct {
		period model.Period
		labels []string
		series *model.CountSeries
	}{
		{model.PeriodDaily, model.HourLabels(), &result.Daily},
		{model.PeriodWeekly, model.WeekdayLabels(), &result.Weekly},
		{model.PeriodMonthly, model.MonthLabels(), &result.Monthly},
		{model.PeriodYearly, model.CountYearLabels(now), &result.Yearly},
	}

	for _, target := range targets {
		rows, err := s.stats.CountRows(ctx, target.period, shopID)
		if err != nil {
			return nil, err
		}
		*target.series = s.countSeries(rows, target.labels)
	}

	return result, nil
}

func (s *StatsService) countSeries(rows []repository.CountRow, labels []string) model.CountSeries {
	index := make(map[string]int64, len(rows))
	known := make(map[string]bool, len(labels))
	for _, label := range labels {
		known[label] = true
	}

	for _, row := range rows {
		if !known[row.TimePeriod] {
			s.log.Warn().Str("bucket", row.TimePeriod).
				Msg("discarding bucket outside canonical label set")
			continue
		}
		index[row.TimePeriod] = row.CarCount
	}

	data := make([]int64, len(labels))
	for i, label := range labels {
		data[i] = index[label]
	}
	return model.CountSeries{Labels: labels, Data: data}
}
