package trend

import (
	"errors"
	"fmt"

	"github.com/sartorproj/gosynth/timeseries"
)

// ErrNoRecords indicates an analysis attempted on an empty record slice.
var ErrNoRecords = errors.New("no records to analyze")

// Result represents the fitted linear trend for one category.
type Result struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

// Analyze fits a per-category linear trend and returns a result keyed by
// every distinct category present in records.
//
// Records in each category are sorted by date before fitting; the regressor
// is the 0-based rank index within the sorted group. A category with fewer
// than two records maps to a nil Result (absent, not an error). Empty input
// yields ErrNoRecords; a record with a missing date or category, or a
// non-finite value, yields an error wrapping timeseries.ErrInvalidRecord.
func Analyze(records []timeseries.Record) (map[string]*Result, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("analyze: %w", err)
		}
	}

	results := make(map[string]*Result)
	for category, group := range timeseries.GroupByCategory(records) {
		if len(group) < 2 {
			results[category] = nil
			continue
		}
		sorted := timeseries.SortByDate(group)
		results[category] = fit(timeseries.Values(sorted))
	}
	return results, nil
}

// Detrend subtracts each category's fitted line from its date-sorted values
// and returns the residuals. Categories without a fitted trend (fewer than
// two records) map to nil.
func Detrend(records []timeseries.Record) (map[string][]float64, error) {
	results, err := Analyze(records)
	if err != nil {
		return nil, err
	}

	groups := timeseries.GroupByCategory(records)
	residuals := make(map[string][]float64, len(results))
	for category, res := range results {
		if res == nil {
			residuals[category] = nil
			continue
		}
		sorted := timeseries.SortByDate(groups[category])
		out := make([]float64, len(sorted))
		for i, r := range sorted {
			out[i] = r.Value - (res.Slope*float64(i) + res.Intercept)
		}
		residuals[category] = out
	}
	return residuals, nil
}

// fit computes the ordinary least squares regression of y on 0..n-1.
// Callers guarantee n >= 2, so the slope denominator is never zero.
func fit(y []float64) *Result {
	n := float64(len(y))

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	mean := sumY / n
	var ssRes, ssTot float64
	for i, v := range y {
		fitted := slope*float64(i) + intercept
		ssRes += (v - fitted) * (v - fitted)
		d := v - mean
		ssTot += d * d
	}

	// All-identical values leave ssTot at zero; the flat fit is exact, so
	// r-squared is reported as 1 (see package documentation).
	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	return &Result{Slope: slope, Intercept: intercept, RSquared: r2}
}
