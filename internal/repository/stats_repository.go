package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"carwash-dashboard/internal/model"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// StatRow is one sparse grouped row from a period query: only buckets with
// data appear, and a bucket shows up once per car type.
type StatRow struct {
	TimePeriod   string  `gorm:"column:time_period"`
	BucketOrder  int64   `gorm:"column:bucket_order"`
	CarCount     int64   `gorm:"column:car_count"`
	TotalRevenue float64 `gorm:"column:total_revenue"`
	CarType      string  `gorm:"column:car_type"`
}

// RevenueRows groups confirmed cars by the period's calendar bucket and car
// type. Buckets are ordered chronologically, not lexicographically.
func (r *StatsRepository) RevenueRows(ctx context.Context, period model.Period, shopID int64) ([]StatRow, error) {
	var rows []StatRow

	query := r.db.WithContext(ctx).Table("confirmed_cars")

	switch period {
	case model.PeriodDaily:
		query = query.
			Select(`TO_CHAR(detected_datetime, 'HH24:00') AS time_period,
				EXTRACT(HOUR FROM detected_datetime)::int AS bucket_order,
				COUNT(*) AS car_count,
				COALESCE(SUM(CAST(estimated_price AS DECIMAL(10,2))), 0) AS total_revenue,
				car_type`).
			Where("detected_datetime::date = CURRENT_DATE AND shop_id = ?", shopID)
	case model.PeriodWeekly:
		query = query.
			Select(`TO_CHAR(detected_datetime, 'FMDay') AS time_period,
				EXTRACT(DOW FROM detected_datetime)::int AS bucket_order,
				COUNT(*) AS car_count,
				COALESCE(SUM(CAST(estimated_price AS DECIMAL(10,2))), 0) AS total_revenue,
				car_type`).
			Where("detected_datetime >= NOW() - INTERVAL '7 days' AND shop_id = ?", shopID)
	case model.PeriodMonthly:
		query = query.
			Select(`TO_CHAR(detected_datetime, 'FMMonth') AS time_period,
				EXTRACT(MONTH FROM detected_datetime)::int AS bucket_order,
				COUNT(*) AS car_count,
				COALESCE(SUM(CAST(estimated_price AS DECIMAL(10,2))), 0) AS total_revenue,
				car_type`).
			Where("detected_datetime >= NOW() - INTERVAL '12 months' AND shop_id = ?", shopID)
	case model.PeriodYearly:
		query = query.
			Select(`EXTRACT(YEAR FROM detected_datetime)::int::text AS time_period,
				EXTRACT(YEAR FROM detected_datetime)::int AS bucket_order,
				COUNT(*) AS car_count,
				COALESCE(SUM(CAST(estimated_price AS DECIMAL(10,2))), 0) AS total_revenue,
				car_type`).
			Where("shop_id = ?", shopID)
	default:
		return nil, fmt.Errorf("unsupported period %q", period)
	}

	query = query.Group("1, 2, car_type").Order("bucket_order")

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TypeRow is one category's totals over a period window.
type TypeRow struct {
	CarType      string          `gorm:"column:car_type"`
	CarCount     int64           `gorm:"column:car_count"`
	TotalRevenue decimal.Decimal `gorm:"column:total_revenue"`
}

// TypeSplitRows returns per-category count and revenue for a period window:
// today, trailing 7 days, trailing 30 days, or the current year.
func (r *StatsRepository) TypeSplitRows(ctx context.Context, period model.Period, shopID int64) ([]TypeRow, error) {
	var rows []TypeRow

	query := r.db.WithContext(ctx).
		Table("confirmed_cars").
		Select(`car_type,
			COUNT(*) AS car_count,
			COALESCE(SUM(CAST(estimated_price AS DECIMAL(10,2))), 0) AS total_revenue`)

	switch period {
	case model.PeriodDaily:
		query = query.Where("detected_datetime::date = CURRENT_DATE AND shop_id = ?", shopID)
	case model.PeriodWeekly:
		query = query.Where("detected_datetime >= CURRENT_DATE - INTERVAL '7 days' AND shop_id = ?", shopID)
	case model.PeriodMonthly:
		query = query.Where("detected_datetime >= CURRENT_DATE - INTERVAL '30 days' AND shop_id = ?", shopID)
	case model.PeriodYearly:
		query = query.Where("EXTRACT(YEAR FROM detected_datetime) = EXTRACT(YEAR FROM CURRENT_DATE) AND shop_id = ?", shopID)
	default:
		return nil, fmt.Errorf("unsupported period %q", period)
	}

	if err := query.Group("car_type").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountRow is one sparse count bucket (no category split).
type CountRow struct {
	TimePeriod  string `gorm:"column:time_period"`
	BucketOrder int64  `gorm:"column:bucket_order"`
	CarCount    int64  `gorm:"column:car_count"`
}

// CountRows buckets confirmed-car counts by the period's calendar bucket.
// The yearly variant covers the current year and the previous four.
func (r *StatsRepository) CountRows(ctx context.Context, period model.Period, shopID int64) ([]CountRow, error) {
	var rows []CountRow

	query := r.db.WithContext(ctx).Table("confirmed_cars")

	switch period {
	case model.PeriodDaily:
		query = query.
			Select(`TO_CHAR(detected_datetime, 'HH24:00') AS time_period,
				EXTRACT(HOUR FROM detected_datetime)::int AS bucket_order,
				COUNT(*) AS car_count`).
			Where("detected_datetime::date = CURRENT_DATE AND shop_id = ?", shopID)
	case model.PeriodWeekly:
		query = query.
			Select(`TO_CHAR(detected_datetime, 'FMDay') AS time_period,
				EXTRACT(DOW FROM detected_datetime)::int AS bucket_order,
				COUNT(*) AS car_count`).
			Where("detected_datetime >= CURRENT_DATE - INTERVAL '7 days' AND shop_id = ?", shopID)
	case model.PeriodMonthly:
		query = query.
			Select(`TO_CHAR(detected_datetime, 'FMMonth') AS time_period,
				EXTRACT(MONTH FROM detected_datetime)::int AS bucket_order,
				COUNT(*) AS car_count`).
			Where("detected_datetime >= CURRENT_DATE - INTERVAL '12 months' AND shop_id = ?", shopID)
	case model.PeriodYearly:
		query = query.
			Select(`EXTRACT(YEAR FROM detected_datetime)::int::text AS time_period,
				EXTRACT(YEAR FROM detected_datetime)::int AS bucket_order,
				COUNT(*) AS car_count`).
			Where("EXTRACT(YEAR FROM detected_datetime) >= EXTRACT(YEAR FROM CURRENT_DATE) - 4 AND shop_id = ?", shopID)
	default:
		return nil, fmt.Errorf("unsupported period %q", period)
	}

	query = query.Group("1, 2").Order("bucket_order")

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
