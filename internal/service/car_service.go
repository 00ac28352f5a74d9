package service

import (
	"context"
	"fmt"

	"carwash-dashboard/internal/model"
	"carwash-dashboard/internal/repository"
)

const latestCarsLimit = 3

// CarRepo is the slice of the car repository the service needs.
type CarRepo interface {
	CountByShop(ctx context.Context, shopID int64) (int64, error)
	PageByShop(ctx context.Context, shopID int64, limit, offset int) ([]model.ConfirmedCar, error)
	LatestByShop(ctx context.Context, shopID int64, limit int) ([]model.LatestCar, error)
	TodayTotals(ctx context.Context, shopID int64) (repository.TotalsRow, error)
	WeekTotals(ctx context.Context, shopID int64) (repository.TotalsRow, error)
	ServiceTypeCounts(ctx context.Context, window repository.ServiceTypeWindow) (model.ServiceTypeCounts, error)
}

type CarService struct {
	cars            CarRepo
	defaultPageSize int
	maxPageSize     int
}

func NewCarService(cars CarRepo, defaultPageSize, maxPageSize int) *CarService {
	return &CarService{
		cars:            cars,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// ListConfirmed returns one page of confirmed cars plus pagination
// metadata. Non-positive page and limit values clamp to their defaults;
// an empty window is reported as not found, matching the list-endpoint
// contract (chart endpoints zero-fill instead).
func (s *CarService) ListConfirmed(ctx context.Context, page, limit int, shopID int64) (*model.CarPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	offset := (page - 1) * limit

	totalItems, err := s.cars.CountByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	cars, err := s.cars.PageByShop(ctx, shopID, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(cars) == 0 {
		return nil, fmt.Errorf("%w: no confirmed cars for shop %d", ErrNotFound, shopID)
	}

	totalPages := totalItems / int64(limit)
	if totalItems%int64(limit) != 0 {
		totalPages++
	}

	return &model.CarPage{
		Cars: cars,
		Pagination: model.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   totalItems,
			ItemsPerPage: limit,
		},
	}, nil
}

func (s *CarService) Latest(ctx context.Context, shopID int64) ([]model.LatestCar, error) {
	cars, err := s.cars.LatestByShop(ctx, shopID, latestCarsLimit)
	if err != nil {
		return nil, err
	}
	if len(cars) == 0 {
		return nil, fmt.Errorf("%w: no recent cars for shop %d", ErrNotFound, shopID)
	}
	return cars, nil
}

// Summary reports today's and the current ISO week's count and revenue.
func (s *CarService) Summary(ctx context.Context, shopID int64) (*model.CarSummary, error) {
	today, err := s.cars.TodayTotals(ctx, shopID)
	if err != nil {
		return nil, err
	}
	week, err := s.cars.WeekTotals(ctx, shopID)
	if err != nil {
		return nil, err
	}

	return &model.CarSummary{
		Today: model.PeriodTotal{
			Count:   today.CarCount,
			Revenue: today.TotalRevenue.StringFixed(2),
		},
		ThisWeek: model.PeriodTotal{
			Count:   week.CarCount,
			Revenue: week.TotalRevenue.StringFixed(2),
		},
	}, nil
}

// WashingStats buckets confirmed cars by wash service type for today, the
// current week, and all time; percentages are shop-wide.
func (s *CarService) WashingStats(ctx context.Context) (*model.WashingStats, error) {
	today, err := s.cars.ServiceTypeCounts(ctx, repository.WindowToday)
	if err != nil {
		return nil, err
	}
	week, err := s.cars.ServiceTypeCounts(ctx, repository.WindowThisWeek)
	if err != nil {
		return nil, err
	}
	total, err := s.cars.ServiceTypeCounts(ctx, repository.WindowAllTime)
	if err != nil {
		return nil, err
	}

	return &model.WashingStats{
		Today:    breakdownWithPercentages(today),
		ThisWeek: breakdownWithPercentages(week),
		Total:    total,
	}, nil
}

func breakdownWithPercentages(counts model.ServiceTypeCounts) model.ServiceTypeBreakdown {
	return model.ServiceTypeBreakdown{
		ServiceTypeCounts: counts,
		Percentages: model.ServiceTypePercentages{
			PremiumWash: formatPercentage(counts.PremiumWash, counts.TotalCars),
			BasicWash:   formatPercentage(counts.BasicWash, counts.TotalCars),
			DeluxeWash:  formatPercentage(counts.DeluxeWash, counts.TotalCars),
		},
	}
}
