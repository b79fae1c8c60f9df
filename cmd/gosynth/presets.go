package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/viper"

	"github.com/sartorproj/gosynth/generator"
)

// Preset is a named parameter bundle for the generator, loadable from a
// YAML preset file. Zero-valued fields fall back to the current config.
type Preset struct {
	Count                int      `mapstructure:"count"`
	Start                string   `mapstructure:"start"`
	BaseValue            float64  `mapstructure:"base_value"`
	TrendPerStep         float64  `mapstructure:"trend_per_step"`
	SeasonalityAmplitude float64  `mapstructure:"seasonality_amplitude"`
	SeasonalityPeriod    int      `mapstructure:"seasonality_period"`
	NoiseAmount          float64  `mapstructure:"noise_amount"`
	Categories           []string `mapstructure:"categories"`
}

// builtinPresets mirrors the preset buttons of the dashboard this tool
// descends from.
var builtinPresets = map[string]Preset{
	"steady-growth": {
		Count: 36, BaseValue: 1000, TrendPerStep: 50, NoiseAmount: 20,
		Categories: []string{"product-a", "product-b"},
	},
	"seasonal": {
		Count: 48, BaseValue: 5000, TrendPerStep: 25,
		SeasonalityAmplitude: 800, SeasonalityPeriod: 12, NoiseAmount: 100,
		Categories: []string{"retail"},
	},
	"volatile": {
		Count: 24, BaseValue: 2000, TrendPerStep: 0, NoiseAmount: 900,
		Categories: []string{"alpha", "beta", "gamma"},
	},
	"decline": {
		Count: 36, BaseValue: 8000, TrendPerStep: -150, NoiseAmount: 50,
		Categories: []string{"legacy"},
	},
}

// loadPresets returns the builtin presets merged with those from file (file
// entries win on name collisions). An empty file name skips file loading.
func loadPresets(file string) (map[string]Preset, error) {
	presets := make(map[string]Preset, len(builtinPresets))
	for name, p := range builtinPresets {
		presets[name] = p
	}

	if file == "" {
		return presets, nil
	}

	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading preset file: %w", err)
	}

	var fromFile map[string]Preset
	if err := v.UnmarshalKey("presets", &fromFile); err != nil {
		return nil, fmt.Errorf("parsing preset file: %w", err)
	}
	for name, p := range fromFile {
		presets[name] = p
	}
	return presets, nil
}

// applyPreset overlays non-zero preset fields onto cfg.
func applyPreset(cfg *generator.Config, p Preset) error {
	if p.Count != 0 {
		cfg.Count = p.Count
	}
	if p.Start != "" {
		start, err := time.Parse("2006-01-02", p.Start)
		if err != nil {
			return fmt.Errorf("preset start date: %w", err)
		}
		cfg.Start = start
	}
	if p.BaseValue != 0 {
		cfg.BaseValue = p.BaseValue
	}
	if p.TrendPerStep != 0 {
		cfg.TrendPerStep = p.TrendPerStep
	}
	if p.SeasonalityAmplitude != 0 {
		cfg.SeasonalityAmplitude = p.SeasonalityAmplitude
	}
	if p.SeasonalityPeriod != 0 {
		cfg.SeasonalityPeriod = p.SeasonalityPeriod
	}
	if p.NoiseAmount != 0 {
		cfg.NoiseAmount = p.NoiseAmount
	}
	if len(p.Categories) > 0 {
		cfg.Categories = p.Categories
	}
	return nil
}

// presetNames lists available preset names for error messages.
func presetNames(presets map[string]Preset) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
