// Package gosynth provides synthetic time series generation and trend analysis.
//
// GoSynth builds configurable monthly time series from trend, seasonal, and
// noise components with categorical labels, and extracts per-category linear
// trends using ordinary least squares. Generation is fully deterministic when
// driven by a seeded random source, which makes it suitable for reproducible
// dashboards, demos, and test fixtures.
//
// # Features
//
//   - Configurable series synthesis (base level, linear trend, sinusoidal
//     seasonality, uniform noise, category labels)
//   - Per-category OLS trend extraction (slope, intercept, r-squared)
//   - Seeded, reproducible random sources (linear congruential generator)
//   - CSV serialization and parsing of generated records
//   - Prompt building for LLM-assisted generator code variants
//
// # Quick Start
//
// Generate a series and analyze its trend:
//
//	cfg := generator.DefaultConfig()
//	cfg.Count = 36
//	cfg.TrendPerStep = 50
//	cfg.Categories = []string{"north", "south"}
//	cfg.Rand = rng.New(42).Source()
//
//	records, _ := generator.Generate(cfg)
//	results, _ := trend.Analyze(records)
//	fmt.Printf("north slope: %.2f\n", results["north"].Slope)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - generator: Series synthesis and configuration validation
//   - trend: Per-category linear regression trend analysis
//   - rng: Seeded deterministic random sources
//   - timeseries: Record data structures and CSV serialization
//   - codegen: LLM prompt building for generator code variants
//
// The cmd/gosynth command exposes generation, analysis, and export from the
// command line.
package gosynth
