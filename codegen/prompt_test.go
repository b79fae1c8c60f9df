package codegen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosynth/generator"
)

func promptConfig() generator.Config {
	return generator.Config{
		Count:                36,
		Start:                time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		BaseValue:            2500,
		TrendPerStep:         40,
		SeasonalityAmplitude: 300,
		SeasonalityPeriod:    12,
		NoiseAmount:          75,
		Categories:           []string{"web", "mobile"},
	}
}

func TestBuildPromptMentionsEveryParameter(t *testing.T) {
	prompt := BuildPrompt(promptConfig())

	assert.Contains(t, prompt, "36 monthly data points")
	assert.Contains(t, prompt, "2023-06-01")
	assert.Contains(t, prompt, "2500")
	assert.Contains(t, prompt, "40")
	assert.Contains(t, prompt, "amplitude 300")
	assert.Contains(t, prompt, "period of 12 months")
	assert.Contains(t, prompt, "±75")
	assert.Contains(t, prompt, "web, mobile")
}

func TestBuildPromptDisabledComponents(t *testing.T) {
	cfg := promptConfig()
	cfg.SeasonalityAmplitude = 0
	cfg.NoiseAmount = 0

	prompt := BuildPrompt(cfg)
	assert.Contains(t, prompt, "no seasonal component")
	assert.Contains(t, prompt, "no random noise")
	assert.NotContains(t, prompt, "amplitude")
}

func TestBuildPromptDeterministic(t *testing.T) {
	cfg := promptConfig()

	first := BuildPrompt(cfg)
	// A random source must not influence the prompt.
	cfg.Rand = func() float64 { return 0.9 }
	second := BuildPrompt(cfg)

	assert.Equal(t, first, second)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewClient()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestNewClientDefaultsModel(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_MODEL", "")

	client, err := NewClient()
	require.NoError(t, err)
	assert.Equal(t, defaultModel, client.model)
}
