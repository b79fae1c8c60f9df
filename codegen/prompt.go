package codegen

import (
	"fmt"
	"strings"

	"github.com/sartorproj/gosynth/generator"
	"github.com/sartorproj/gosynth/timeseries"
)

// BuildPrompt renders a natural-language description of the configuration,
// asking for alternative generator code producing a comparable series. The
// output depends only on the configuration fields, never on its random
// source, so the same configuration always yields the same prompt.
func BuildPrompt(cfg generator.Config) string {
	var b strings.Builder

	b.WriteString("Write a function that generates synthetic monthly time-series data with these properties:\n")
	fmt.Fprintf(&b, "- %d monthly data points starting on %s\n", cfg.Count, cfg.Start.Format(timeseries.DateFormat))
	fmt.Fprintf(&b, "- base value around %g with a linear trend of %g per month\n", cfg.BaseValue, cfg.TrendPerStep)

	if cfg.SeasonalityAmplitude > 0 {
		fmt.Fprintf(&b, "- sinusoidal seasonality with amplitude %g and a period of %d months\n",
			cfg.SeasonalityAmplitude, cfg.SeasonalityPeriod)
	} else {
		b.WriteString("- no seasonal component\n")
	}

	if cfg.NoiseAmount > 0 {
		fmt.Fprintf(&b, "- uniform random noise of up to ±%g around each value\n", cfg.NoiseAmount)
	} else {
		b.WriteString("- no random noise\n")
	}

	fmt.Fprintf(&b, "- each data point labeled with one of the categories: %s\n",
		strings.Join(cfg.Categories, ", "))
	b.WriteString("- values rounded to whole numbers and clamped at zero\n")
	b.WriteString("\nReturn the data as rows of (date, category, value). Respond with code only.")

	return b.String()
}
