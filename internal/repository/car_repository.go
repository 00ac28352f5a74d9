package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"carwash-dashboard/internal/model"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) CountByShop(ctx context.Context, shopID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.ConfirmedCar{}).
		Where("shop_id = ?", shopID).
		Count(&total).Error
	return total, err
}

// PageByShop returns one window of confirmed cars, newest first. Limit and
// offset are bound through the query builder, never interpolated.
func (r *CarRepository) PageByShop(ctx context.Context, shopID int64, limit, offset int) ([]model.ConfirmedCar, error) {
	var cars []model.ConfirmedCar
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("detected_datetime DESC").
		Limit(limit).
		Offset(offset).
		Find(&cars).Error
	return cars, err
}

func (r *CarRepository) LatestByShop(ctx context.Context, shopID int64, limit int) ([]model.LatestCar, error) {
	var cars []model.LatestCar
	err := r.db.WithContext(ctx).
		Model(&model.ConfirmedCar{}).
		Select("service_type, detected_datetime, car_picture_url, estimated_price").
		Where("shop_id = ?", shopID).
		Order("detected_datetime DESC").
		Limit(limit).
		Scan(&cars).Error
	return cars, err
}

// TotalsRow is a count plus summed revenue for one window.
type TotalsRow struct {
	CarCount     int64           `gorm:"column:car_count"`
	TotalRevenue decimal.Decimal `gorm:"column:total_revenue"`
}

func (r *CarRepository) TodayTotals(ctx context.Context, shopID int64) (TotalsRow, error) {
	var row TotalsRow
	err := r.db.WithContext(ctx).
		Table("confirmed_cars").
		Select("COUNT(*) AS car_count, COALESCE(SUM(estimated_price), 0) AS total_revenue").
		Where("detected_datetime::date = CURRENT_DATE AND shop_id = ?", shopID).
		Scan(&row).Error
	return row, err
}

// WeekTotals uses ISO weeks (Monday start), matching the calendar the
// original dashboard reported on.
func (r *CarRepository) WeekTotals(ctx context.Context, shopID int64) (TotalsRow, error) {
	var row TotalsRow
	err := r.db.WithContext(ctx).
		Table("confirmed_cars").
		Select("COUNT(*) AS car_count, COALESCE(SUM(estimated_price), 0) AS total_revenue").
		Where("DATE_TRUNC('week', detected_datetime) = DATE_TRUNC('week', NOW()) AND shop_id = ?", shopID).
		Scan(&row).Error
	return row, err
}

// ServiceTypeWindow selects the time filter for washing statistics.
type ServiceTypeWindow int

const (
	WindowToday ServiceTypeWindow = iota
	WindowThisWeek
	WindowAllTime
)

func (r *CarRepository) ServiceTypeCounts(ctx context.Context, window ServiceTypeWindow) (model.ServiceTypeCounts, error) {
	var counts model.ServiceTypeCounts

	query := r.db.WithContext(ctx).
		Table("confirmed_cars").
		Select(`COUNT(*) AS total_cars,
			COALESCE(SUM(CASE WHEN service_type = 'premium wash' THEN 1 ELSE 0 END), 0) AS premium_wash,
			COALESCE(SUM(CASE WHEN service_type = 'basic wash' THEN 1 ELSE 0 END), 0) AS basic_wash,
			COALESCE(SUM(CASE WHEN service_type = 'deluxe wash' THEN 1 ELSE 0 END), 0) AS deluxe_wash`)

	switch window {
	case WindowToday:
		query = query.Where("detected_datetime::date = CURRENT_DATE")
	case WindowThisWeek:
		query = query.Where("DATE_TRUNC('week', detected_datetime) = DATE_TRUNC('week', NOW())")
	}

	if err := query.Scan(&counts).Error; err != nil {
		return model.ServiceTypeCounts{}, err
	}
	return counts, nil
}
