package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gosynth/generator"
	"github.com/sartorproj/gosynth/rng"
	"github.com/sartorproj/gosynth/timeseries"
)

// buildConfig assembles a generator.Config from the preset (if any) and the
// command flags. Flags the user set explicitly override preset values.
func buildConfig(cmd *cobra.Command) (generator.Config, error) {
	cfg := generator.DefaultConfig()

	if presetName != "" {
		presets, err := loadPresets(presetFile)
		if err != nil {
			return cfg, err
		}
		preset, ok := presets[presetName]
		if !ok {
			return cfg, fmt.Errorf("unknown preset %q (available: %s)",
				presetName, strings.Join(presetNames(presets), ", "))
		}
		if err := applyPreset(&cfg, preset); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = genCount
	}
	if flags.Changed("start") || presetName == "" {
		start, err := time.Parse("2006-01-02", genStart)
		if err != nil {
			return cfg, fmt.Errorf("invalid --start date: %w", err)
		}
		cfg.Start = start
	}
	if flags.Changed("base") {
		cfg.BaseValue = genBase
	}
	if flags.Changed("trend") {
		cfg.TrendPerStep = genTrend
	}
	if flags.Changed("amplitude") {
		cfg.SeasonalityAmplitude = genAmplitude
	}
	if flags.Changed("period") {
		cfg.SeasonalityPeriod = genPeriod
	}
	if flags.Changed("noise") {
		cfg.NoiseAmount = genNoise
	}
	if flags.Changed("categories") {
		cfg.Categories = genCategories
	}

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Rand = rng.New(genSeed).Source()

	logrus.WithFields(logrus.Fields{
		"count":      cfg.Count,
		"categories": cfg.Categories,
		"seed":       genSeed,
	}).Debug("generating series")

	records, err := generator.Generate(cfg)
	if err != nil {
		var verr *generator.ValidationError
		if errors.As(err, &verr) {
			// Constraint descriptions are meant for end users verbatim.
			for _, v := range verr.Violations {
				fmt.Fprintln(cmd.ErrOrStderr(), v)
			}
			return fmt.Errorf("configuration has %d problem(s)", len(verr.Violations))
		}
		return err
	}

	if genOut != "" {
		if err := timeseries.WriteCSV(records, genOut); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"records": len(records),
			"file":    genOut,
		}).Info("series written")
		return nil
	}

	text, err := timeseries.ToCSV(records)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}
