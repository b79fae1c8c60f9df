package generator

import "time"

// Source produces uniform pseudo-random values in [0, 1). The generator
// never reads from a global random generator; callers supply a Source and
// own its seeding.
type Source func() float64

// Config describes a synthetic series. All bounds are enforced by Validate
// before generation.
type Config struct {
	// Count is the number of monthly steps to generate, between 0 and 120.
	Count int

	// Start is the calendar date of the first step. Its year must fall in
	// [1900, 2100]. Subsequent steps advance one calendar month at a time.
	Start time.Time

	// BaseValue is the level of the series at step zero, in [0, 1000000].
	BaseValue float64

	// TrendPerStep is the linear change per step, in [-100000, 100000].
	TrendPerStep float64

	// SeasonalityAmplitude scales the sinusoidal seasonal component, in
	// [0, 100000]. Zero disables seasonality.
	SeasonalityAmplitude float64

	// SeasonalityPeriod is the number of steps per full seasonal cycle,
	// between 1 and 24.
	SeasonalityPeriod int

	// NoiseAmount is the half-width of the uniform noise added to each
	// step, in [0, 100000]. Zero disables noise (the draw still happens).
	NoiseAmount float64

	// Categories is the non-empty set of unique labels assigned to records.
	Categories []string

	// Rand is the random source consumed during generation. Required.
	Rand Source
}

// DefaultConfig returns a configuration for a two-year series with a mild
// upward trend and light noise. Rand is left nil; callers must supply a
// source (see the rng package).
func DefaultConfig() Config {
	return Config{
		Count:                24,
		Start:                time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		BaseValue:            1000,
		TrendPerStep:         10,
		SeasonalityAmplitude: 0,
		SeasonalityPeriod:    12,
		NoiseAmount:          5,
		Categories:           []string{"default"},
	}
}
