package generator

import (
	"fmt"
	"math"
	"strings"
)

// Validation bounds for Config fields. All bounds are inclusive.
const (
	MaxCount     = 120
	MinStartYear = 1900
	MaxStartYear = 2100
	MaxBaseValue = 1_000_000
	MaxTrend     = 100_000
	MaxAmplitude = 100_000
	MinPeriod    = 1
	MaxPeriod    = 24
	MaxNoise     = 100_000
)

// ValidationError reports every constraint a configuration violates, not
// just the first. Each violation is a human-readable constraint description
// suitable for showing to end users verbatim.
type ValidationError struct {
	Violations []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "invalid generation config: " + strings.Join(e.Violations, "; ")
}

// Validate checks every Config bound and returns a *ValidationError listing
// all violations, or nil when the configuration is well-formed.
func Validate(cfg Config) error {
	var violations []string

	if cfg.Count < 0 || cfg.Count > MaxCount {
		violations = append(violations,
			fmt.Sprintf("count must be between 0 and %d months (got %d)", MaxCount, cfg.Count))
	}
	if cfg.Start.IsZero() {
		violations = append(violations, "start date is required")
	} else if y := cfg.Start.Year(); y < MinStartYear || y > MaxStartYear {
		violations = append(violations,
			fmt.Sprintf("start date year must be between %d and %d (got %d)", MinStartYear, MaxStartYear, y))
	}
	if !inRange(cfg.BaseValue, 0, MaxBaseValue) {
		violations = append(violations,
			fmt.Sprintf("base value must be between 0 and %d (got %g)", MaxBaseValue, cfg.BaseValue))
	}
	if !inRange(cfg.TrendPerStep, -MaxTrend, MaxTrend) {
		violations = append(violations,
			fmt.Sprintf("trend per step must be between %d and %d (got %g)", -MaxTrend, MaxTrend, cfg.TrendPerStep))
	}
	if !inRange(cfg.SeasonalityAmplitude, 0, MaxAmplitude) {
		violations = append(violations,
			fmt.Sprintf("seasonality amplitude must be between 0 and %d (got %g)", MaxAmplitude, cfg.SeasonalityAmplitude))
	}
	if cfg.SeasonalityPeriod < MinPeriod || cfg.SeasonalityPeriod > MaxPeriod {
		violations = append(violations,
			fmt.Sprintf("seasonality period must be between %d and %d steps (got %d)", MinPeriod, MaxPeriod, cfg.SeasonalityPeriod))
	}
	if !inRange(cfg.NoiseAmount, 0, MaxNoise) {
		violations = append(violations,
			fmt.Sprintf("noise amount must be between 0 and %d (got %g)", MaxNoise, cfg.NoiseAmount))
	}
	violations = append(violations, validateCategories(cfg.Categories)...)
	if cfg.Rand == nil {
		violations = append(violations, "random source is required")
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func validateCategories(categories []string) []string {
	if len(categories) == 0 {
		return []string{"categories must contain at least one label"}
	}

	var violations []string
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c == "" {
			violations = append(violations, "category labels must not be empty")
			continue
		}
		if seen[c] {
			violations = append(violations, fmt.Sprintf("duplicate category %q", c))
		}
		seen[c] = true
	}
	return violations
}

// inRange reports lo <= v <= hi, rejecting NaN (which would slip past
// plain comparisons).
func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}
