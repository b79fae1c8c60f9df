package timeseries

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// ErrInvalidRecord indicates a record with a missing or malformed field.
var ErrInvalidRecord = errors.New("invalid record")

// Record represents a single step of a generated time series.
type Record struct {
	Date     time.Time
	Value    float64
	Category string
	Index    int
}

// Validate reports whether the record carries a usable date, category, and
// value. The returned error wraps ErrInvalidRecord.
func (r Record) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("%w: missing date (index %d)", ErrInvalidRecord, r.Index)
	}
	if r.Category == "" {
		return fmt.Errorf("%w: missing category (index %d)", ErrInvalidRecord, r.Index)
	}
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return fmt.Errorf("%w: non-numeric value (index %d)", ErrInvalidRecord, r.Index)
	}
	return nil
}

// Values extracts the value column in record order.
func Values(records []Record) []float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Value
	}
	return values
}

// Categories returns the distinct category labels present, in order of
// first appearance.
func Categories(records []Record) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, r := range records {
		if !seen[r.Category] {
			seen[r.Category] = true
			labels = append(labels, r.Category)
		}
	}
	return labels
}

// GroupByCategory splits records into per-category groups. Within each group
// the original record order is preserved.
func GroupByCategory(records []Record) map[string][]Record {
	groups := make(map[string][]Record)
	for _, r := range records {
		groups[r.Category] = append(groups[r.Category], r)
	}
	return groups
}

// SortByDate returns a copy of records sorted by ascending date. The sort is
// stable, so records sharing a date keep their relative order.
func SortByDate(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
