// Package trend extracts per-category linear trends from record series.
//
// The analyzer groups records by category, sorts each group by date, and
// fits an ordinary least squares regression of value on the 0-based rank
// index within the group. Each category yields a slope, an intercept, and
// an r-squared goodness-of-fit measure.
//
// # Analyzing Records
//
// Analyze a generated (or parsed) record slice:
//
//	results, err := trend.Analyze(records)
//	for category, r := range results {
//	    if r == nil {
//	        // fewer than 2 points; no trend can be fitted
//	        continue
//	    }
//	    fmt.Printf("%s: slope=%.2f r2=%.3f\n", category, r.Slope, r.RSquared)
//	}
//
// A category with fewer than two records maps to a nil Result rather than
// an error; empty or malformed input is an error.
//
// # R-Squared Policy
//
// When all values in a group are identical the total sum of squares is zero
// and r-squared is mathematically undefined. The fitted zero-slope line
// reproduces every point exactly in that case, so this package reports 1.0.
//
// # Detrending
//
// Remove the fitted trend to inspect what remains (seasonality and noise):
//
//	residuals, err := trend.Detrend(records)
package trend
