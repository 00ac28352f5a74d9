package model

// RevenueDatasets is the per-category series for a multi-series chart.
type RevenueDatasets struct {
	Big   []float64 `json:"big"`
	Small []float64 `json:"small"`
}

// RevenueSeries is a chart-ready dense series: one value per label, in
// canonical label order, zero-filled where no rows exist.
type RevenueSeries struct {
	Labels   []string        `json:"labels"`
	Datasets RevenueDatasets `json:"datasets"`
}

// TypeBreakdown is one category's share of a period. Revenue is a fixed
// 2-decimal string, Percentage a fixed 1-decimal string.
type TypeBreakdown struct {
	Count      int64  `json:"count"`
	Revenue    string `json:"revenue"`
	Percentage string `json:"percentage"`
}

type TypeTotal struct {
	Count   int64  `json:"count"`
	Revenue string `json:"revenue"`
}

type TypeSplit struct {
	Big   TypeBreakdown `json:"big"`
	Small TypeBreakdown `json:"small"`
	Total TypeTotal     `json:"total"`
}

// RevenueByType covers all four period windows in one response; the
// underlying queries run as an all-or-nothing batch.
type RevenueByType struct {
	Daily   TypeSplit `json:"daily"`
	Weekly  TypeSplit `json:"weekly"`
	Monthly TypeSplit `json:"monthly"`
	Yearly  TypeSplit `json:"yearly"`
}

type CountSeries struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}

type CarCounts struct {
	Daily   CountSeries `json:"daily"`
	Weekly  CountSeries `json:"weekly"`
	Monthly CountSeries `json:"monthly"`
	Yearly  CountSeries `json:"yearly"`
}
