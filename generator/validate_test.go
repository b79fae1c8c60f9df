package generator

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Rand = func() float64 { return 0.5 }
	return cfg
}

func requireViolation(t *testing.T, err error, substr string) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	for _, v := range verr.Violations {
		if strings.Contains(v, substr) {
			return
		}
	}
	t.Errorf("no violation mentioning %q in %v", substr, verr.Violations)
}

func TestValidateAccepts(t *testing.T) {
	require.NoError(t, Validate(validConfig()))
}

func TestValidateAcceptsBoundaries(t *testing.T) {
	cfg := validConfig()
	cfg.Count = 120
	cfg.BaseValue = 1_000_000
	cfg.TrendPerStep = -100_000
	cfg.SeasonalityAmplitude = 100_000
	cfg.SeasonalityPeriod = 24
	cfg.NoiseAmount = 100_000
	cfg.Start = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, Validate(cfg))

	cfg.Count = 0
	cfg.SeasonalityPeriod = 1
	cfg.Start = time.Date(2100, 12, 31, 0, 0, 0, 0, time.UTC)
	require.NoError(t, Validate(cfg))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		mention string
	}{
		{"count above bound", func(c *Config) { c.Count = 121 }, "120"},
		{"negative count", func(c *Config) { c.Count = -1 }, "count"},
		{"zero start", func(c *Config) { c.Start = time.Time{} }, "start date"},
		{"year too early", func(c *Config) { c.Start = time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC) }, "1900"},
		{"year too late", func(c *Config) { c.Start = time.Date(2101, 1, 1, 0, 0, 0, 0, time.UTC) }, "2100"},
		{"negative base", func(c *Config) { c.BaseValue = -1 }, "base value"},
		{"base too large", func(c *Config) { c.BaseValue = 1_000_001 }, "base value"},
		{"NaN base", func(c *Config) { c.BaseValue = math.NaN() }, "base value"},
		{"trend too steep", func(c *Config) { c.TrendPerStep = 100_001 }, "trend per step"},
		{"trend too negative", func(c *Config) { c.TrendPerStep = -100_001 }, "trend per step"},
		{"negative amplitude", func(c *Config) { c.SeasonalityAmplitude = -1 }, "amplitude"},
		{"zero period", func(c *Config) { c.SeasonalityPeriod = 0 }, "period"},
		{"period too long", func(c *Config) { c.SeasonalityPeriod = 25 }, "period"},
		{"negative noise", func(c *Config) { c.NoiseAmount = -1 }, "noise"},
		{"no categories", func(c *Config) { c.Categories = nil }, "categories"},
		{"empty category label", func(c *Config) { c.Categories = []string{"a", ""} }, "empty"},
		{"duplicate category", func(c *Config) { c.Categories = []string{"a", "a"} }, "duplicate"},
		{"nil source", func(c *Config) { c.Rand = nil }, "random source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			requireViolation(t, Validate(cfg), tt.mention)
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Count = 200
	cfg.BaseValue = -5
	cfg.SeasonalityPeriod = 0
	cfg.Categories = nil
	cfg.Rand = nil

	err := Validate(cfg)
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, verr.Violations, 5)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Violations: []string{"first problem", "second problem"}}
	assert.Equal(t, "invalid generation config: first problem; second problem", err.Error())
}
