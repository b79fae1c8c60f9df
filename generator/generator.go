package generator

import (
	"math"
	"time"

	"github.com/sartorproj/gosynth/timeseries"
)

// Generate synthesizes a series of cfg.Count records. The configuration is
// validated first; a malformed configuration yields a *ValidationError
// listing every violated constraint and no records.
//
// For step i, the raw value is
//
//	base + trendPerStep*i + amplitude*sin(2*pi*i/period) + (r1-0.5)*2*noise
//
// where r1 is a draw from cfg.Rand. The stored value is max(0, round(raw)),
// with round-half-away-from-zero rounding (math.Round); negative synthetic
// values clamp to zero. The record's category is chosen by a second draw r2
// as categories[floor(r2*len)].
//
// Each step consumes exactly two draws, noise before category, regardless of
// whether noise or multiple categories are configured. Seeded reproducibility
// depends on this order.
func Generate(cfg Config) ([]timeseries.Record, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	records := make([]timeseries.Record, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		noise := (cfg.Rand() - 0.5) * 2 * cfg.NoiseAmount
		seasonal := cfg.SeasonalityAmplitude * math.Sin(2*math.Pi*float64(i)/float64(cfg.SeasonalityPeriod))
		raw := cfg.BaseValue + cfg.TrendPerStep*float64(i) + seasonal + noise

		idx := int(cfg.Rand() * float64(len(cfg.Categories)))
		if idx >= len(cfg.Categories) {
			// A source returning exactly 1.0 violates its contract; clamp
			// rather than panic.
			idx = len(cfg.Categories) - 1
		}

		records = append(records, timeseries.Record{
			Date:     addMonths(cfg.Start, i),
			Value:    math.Max(0, math.Round(raw)),
			Category: cfg.Categories[idx],
			Index:    i,
		})
	}

	return records, nil
}

// addMonths advances t by n calendar months, clamping the day of month to
// the last day of the target month instead of spilling into the next one
// (Jan 31 + 1 month = Feb 28 or 29, never Mar 2).
func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	total := int(month) - 1 + n
	year += total / 12
	month = time.Month(total%12 + 1)

	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
