package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"carwash-dashboard/internal/model"
	"carwash-dashboard/internal/repository"
)

type fakeStatsRepo struct {
	revenueRows map[model.Period][]repository.StatRow
	typeRows    map[model.Period][]repository.TypeRow
	countRows   map[model.Period][]repository.CountRow
	err         error
}

func (f *fakeStatsRepo) RevenueRows(_ context.Context, period model.Period, _ int64) ([]repository.StatRow, error) {
	return f.revenueRows[period], f.err
}

func (f *fakeStatsRepo) TypeSplitRows(_ context.Context, period model.Period, _ int64) ([]repository.TypeRow, error) {
	return f.typeRows[period], f.err
}

func (f *fakeStatsRepo) CountRows(_ context.Context, period model.Period, _ int64) ([]repository.CountRow, error) {
	return f.countRows[period], f.err
}

func newStatsServiceForTest(repo StatsRepo) *StatsService {
	svc := NewStatsService(repo, zerolog.Nop())
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestGetRevenueSeriesRejectsUnknownPeriod(t *testing.T) {
	svc := newStatsServiceForTest(&fakeStatsRepo{})

	_, err := svc.GetRevenueSeries(context.Background(), "hourly", 1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestGetRevenueSeriesZeroFillsSparseWeek(t *testing.T) {
	repo := &fakeStatsRepo{
		revenueRows: map[model.Period][]repository.StatRow{
			model.PeriodWeekly: {
				{TimePeriod: "Monday", CarType: model.CarTypeBig, TotalRevenue: 120.5},
				{TimePeriod: "Friday", CarType: model.CarTypeSmall, TotalRevenue: 44},
			},
		},
	}
	svc := newStatsServiceForTest(repo)

	series, err := svc.GetRevenueSeries(context.Background(), "weekly", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Labels) != 7 {
		t.Fatalf("expected 7 labels, got %d", len(series.Labels))
	}
	if series.Labels[0] != "Sunday" {
		t.Errorf("labels start at %q, want Sunday", series.Labels[0])
	}
	if got := series.Datasets.Big[1]; got != 120.5 {
		t.Errorf("big Monday = %v, want 120.5", got)
	}
	if got := series.Datasets.Small[5]; got != 44 {
		t.Errorf("small Friday = %v, want 44", got)
	}
	var bigSum, smallSum float64
	for i := range series.Labels {
		bigSum += series.Datasets.Big[i]
		smallSum += series.Datasets.Small[i]
	}
	if bigSum != 120.5 || smallSum != 44 {
		t.Errorf("zero-fill changed totals: big %v small %v", bigSum, smallSum)
	}
}

func TestGetRevenueSeriesEmptyIsDenseZeros(t *testing.T) {
	svc := newStatsServiceForTest(&fakeStatsRepo{})

	series, err := svc.GetRevenueSeries(context.Background(), "daily", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Labels) != 24 || len(series.Datasets.Big) != 24 || len(series.Datasets.Small) != 24 {
		t.Fatalf("daily series not dense: %d labels, %d big, %d small",
			len(series.Labels), len(series.Datasets.Big), len(series.Datasets.Small))
	}
	for i := range series.Datasets.Big {
		if series.Datasets.Big[i] != 0 || series.Datasets.Small[i] != 0 {
			t.Fatalf("expected all zeros at index %d", i)
		}
	}
}

func TestGetRevenueSeriesDiscardsUnknownBucket(t *testing.T) {
	repo := &fakeStatsRepo{
		revenueRows: map[model.Period][]repository.StatRow{
			model.PeriodWeekly: {
				{TimePeriod: "Someday", CarType: model.CarTypeBig, TotalRevenue: 999},
				{TimePeriod: "Tuesday", CarType: model.CarTypeBig, TotalRevenue: 10},
			},
		},
	}
	svc := newStatsServiceForTest(repo)

	series, err := svc.GetRevenueSeries(context.Background(), "weekly", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sum float64
	for _, v := range series.Datasets.Big {
		sum += v
	}
	if sum != 10 {
		t.Errorf("unknown bucket leaked into series, sum = %v, want 10", sum)
	}
}

func TestGetRevenueSeriesYearlyLabels(t *testing.T) {
	repo := &fakeStatsRepo{
		revenueRows: map[model.Period][]repository.StatRow{
			model.PeriodYearly: {
				{TimePeriod: "2023", CarType: model.CarTypeBig, TotalRevenue: 100},
				{TimePeriod: "2023", CarType: model.CarTypeSmall, TotalRevenue: 50},
				{TimePeriod: "2026", CarType: model.CarTypeBig, TotalRevenue: 80},
			},
		},
	}
	svc := newStatsServiceForTest(repo)

	series, err := svc.GetRevenueSeries(context.Background(), "yearly", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// With data present the axis is the distinct years from the rows, in
	// row order, not the fixed window.
	want := []string{"2023", "2026"}
	if len(series.Labels) != len(want) {
		t.Fatalf("labels = %v, want %v", series.Labels, want)
	}
	for i := range want {
		if series.Labels[i] != want[i] {
			t.Fatalf("labels = %v, want %v", series.Labels, want)
		}
	}

	// Without data the axis falls back to the fixed five-year window.
	empty := newStatsServiceForTest(&fakeStatsRepo{})
	series, err = empty.GetRevenueSeries(context.Background(), "yearly", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Labels) != 5 || series.Labels[0] != "2024" || series.Labels[4] != "2028" {
		t.Errorf("fallback yearly labels = %v", series.Labels)
	}
}

func TestGetRevenueByType(t *testing.T) {
	repo := &fakeStatsRepo{
		typeRows: map[model.Period][]repository.TypeRow{
			model.PeriodDaily: {
				{CarType: model.CarTypeBig, CarCount: 3, TotalRevenue: decimal.NewFromFloat(150.5)},
				{CarType: model.CarTypeSmall, CarCount: 1, TotalRevenue: decimal.NewFromFloat(20)},
			},
		},
	}
	svc := newStatsServiceForTest(repo)

	result, err := svc.GetRevenueByType(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	daily := result.Daily
	if daily.Big.Count != 3 || daily.Small.Count != 1 {
		t.Errorf("counts = %d/%d, want 3/1", daily.Big.Count, daily.Small.Count)
	}
	if daily.Big.Revenue != "150.50" {
		t.Errorf("big revenue = %q, want 150.50", daily.Big.Revenue)
	}
	if daily.Big.Percentage != "75.0" {
		t.Errorf("big percentage = %q, want 75.0", daily.Big.Percentage)
	}
	if daily.Small.Percentage != "25.0" {
		t.Errorf("small percentage = %q, want 25.0", daily.Small.Percentage)
	}
	if daily.Total.Count != 4 || daily.Total.Revenue != "170.50" {
		t.Errorf("total = %d/%q, want 4/170.50", daily.Total.Count, daily.Total.Revenue)
	}

	// Periods with no rows come back as explicit zeros, not errors.
	weekly := result.Weekly
	if weekly.Total.Count != 0 || weekly.Total.Revenue != "0.00" {
		t.Errorf("empty total = %d/%q, want 0/0.00", weekly.Total.Count, weekly.Total.Revenue)
	}
	if weekly.Big.Percentage != "0.0" {
		t.Errorf("empty percentage = %q, want 0.0", weekly.Big.Percentage)
	}
}

func TestFormatPercentage(t *testing.T) {
	cases := []struct {
		part, total int64
		want        string
	}{
		{0, 0, "0.0"},
		{5, 0, "0.0"},
		{1, 3, "33.3"},
		{2, 3, "66.7"},
		{4, 4, "100.0"},
	}
	for _, c := range cases {
		if got := formatPercentage(c.part, c.total); got != c.want {
			t.Errorf("formatPercentage(%d, %d) = %q, want %q", c.part, c.total, got, c.want)
		}
	}
}

func TestGetCarCounts(t *testing.T) {
	repo := &fakeStatsRepo{
		countRows: map[model.Period][]repository.CountRow{
			model.PeriodWeekly: {
				{TimePeriod: "Wednesday", CarCount: 6},
			},
			model.PeriodYearly: {
				{TimePeriod: "2026", CarCount: 40},
			},
		},
	}
	svc := newStatsServiceForTest(repo)

	counts, err := svc.GetCarCounts(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(counts.Daily.Labels) != 24 || len(counts.Daily.Data) != 24 {
		t.Errorf("daily series not dense")
	}
	if counts.Weekly.Data[3] != 6 {
		t.Errorf("Wednesday count = %d, want 6", counts.Weekly.Data[3])
	}
	// Yearly axis is always the fixed trailing window, data or not.
	if len(counts.Yearly.Labels) != 5 || counts.Yearly.Labels[0] != "2022" {
		t.Errorf("yearly labels = %v", counts.Yearly.Labels)
	}
	if counts.Yearly.Data[4] != 40 {
		t.Errorf("current year count = %d, want 40", counts.Yearly.Data[4])
	}
}

func TestGetCarCountsPropagatesRepoError(t *testing.T) {
	repoErr := errors.New("connection reset")
	svc := newStatsServiceForTest(&fakeStatsRepo{err: repoErr})

	if _, err := svc.GetCarCounts(context.Background(), 1); !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
