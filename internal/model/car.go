package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Car categories recognized by the charts.
const (
	CarTypeBig   = "big"
	CarTypeSmall = "small"
)

// ConfirmedCar is one confirmed car-wash event. Rows are written by an
// external ingestion process; this service only reads them.
type ConfirmedCar struct {
	ID               int64           `gorm:"column:car_id;primaryKey" json:"car_id"`
	ShopID           int64           `gorm:"column:shop_id" json:"shop_id"`
	DetectedDatetime time.Time       `gorm:"column:detected_datetime" json:"detected_datetime"`
	CarType          string          `gorm:"column:car_type" json:"car_type"`
	ServiceType      string          `gorm:"column:service_type" json:"service_type"`
	EstimatedPrice   decimal.Decimal `gorm:"column:estimated_price;type:decimal(10,2)" json:"estimated_price"`
	CarPictureURL    string          `gorm:"column:car_picture_url" json:"car_picture_url"`
	PlatePictureURL  string          `gorm:"column:plate_picture_url" json:"plate_picture_url"`
	SizePictureURL   string          `gorm:"column:size_picture_url" json:"size_picture_url"`
	Washed           bool            `gorm:"column:washed" json:"washed"`
}

func (ConfirmedCar) TableName() string {
	return "confirmed_cars"
}

// Pagination is the page metadata returned alongside a car window.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

type CarPage struct {
	Cars       []ConfirmedCar
	Pagination Pagination
}

// LatestCar is the trimmed projection shown on the dashboard's recent list.
type LatestCar struct {
	ServiceType      string          `json:"service_type"`
	DetectedDatetime time.Time       `json:"detected_datetime"`
	CarPictureURL    string          `json:"car_picture_url"`
	EstimatedPrice   decimal.Decimal `json:"estimated_price"`
}

// PeriodTotal is a count plus a 2-decimal revenue string.
type PeriodTotal struct {
	Count   int64  `json:"count"`
	Revenue string `json:"revenue"`
}

type CarSummary struct {
	Today    PeriodTotal `json:"today"`
	ThisWeek PeriodTotal `json:"thisWeek"`
}

// ServiceTypeCounts buckets confirmed cars by wash service type.
type ServiceTypeCounts struct {
	TotalCars   int64 `json:"total_cars"`
	PremiumWash int64 `json:"premium_wash"`
	BasicWash   int64 `json:"basic_wash"`
	DeluxeWash  int64 `json:"deluxe_wash"`
}

// ServiceTypePercentages carries 1-decimal percentage strings so the
// display never depends on float rounding.
type ServiceTypePercentages struct {
	PremiumWash string `json:"premium_wash"`
	BasicWash   string `json:"basic_wash"`
	DeluxeWash  string `json:"deluxe_wash"`
}

type ServiceTypeBreakdown struct {
	ServiceTypeCounts
	Percentages ServiceTypePercentages `json:"percentages"`
}

type WashingStats struct {
	Today    ServiceTypeBreakdown `json:"today"`
	ThisWeek ServiceTypeBreakdown `json:"this_week"`
	Total    ServiceTypeCounts    `json:"total"`
}
