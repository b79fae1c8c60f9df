package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	genCount      int
	genStart      string
	genBase       float64
	genTrend      float64
	genAmplitude  float64
	genPeriod     int
	genNoise      float64
	genCategories []string
	genSeed       int64
	genOut        string
	presetName    string
	presetFile    string
	codegenCall   bool
	verbose       bool

	rootCmd = &cobra.Command{
		Use:   "gosynth",
		Short: "Generate and analyze synthetic time-series data",
		Long: `GoSynth builds configurable monthly time series from trend, seasonal,
and noise components, extracts per-category linear trends, and exports
records as CSV. Generation is reproducible for a fixed seed.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic series and print or export it as CSV",
		RunE:  runGenerate, // Defined in cmd_generate.go
	}

	analyzeCmd = &cobra.Command{
		Use:   "analyze [file.csv]",
		Short: "Analyze per-category linear trends of a CSV series",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze, // Defined in cmd_analyze.go
	}

	codegenCmd = &cobra.Command{
		Use:   "codegen",
		Short: "Build an LLM prompt describing the configuration",
		RunE:  runCodegen, // Defined in cmd_codegen.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	for _, cmd := range []*cobra.Command{generateCmd, codegenCmd} {
		cmd.Flags().IntVar(&genCount, "count", 24, "Number of monthly steps (0-120)")
		cmd.Flags().StringVar(&genStart, "start", "2024-01-01", "Start date (YYYY-MM-DD)")
		cmd.Flags().Float64Var(&genBase, "base", 1000, "Base value at step zero")
		cmd.Flags().Float64Var(&genTrend, "trend", 10, "Linear change per step")
		cmd.Flags().Float64Var(&genAmplitude, "amplitude", 0, "Seasonality amplitude (0 disables)")
		cmd.Flags().IntVar(&genPeriod, "period", 12, "Seasonality period in steps (1-24)")
		cmd.Flags().Float64Var(&genNoise, "noise", 5, "Uniform noise half-width")
		cmd.Flags().StringSliceVar(&genCategories, "categories", []string{"default"}, "Category labels")
		cmd.Flags().StringVar(&presetName, "preset", "", "Preset name (steady-growth, seasonal, volatile, decline, or from --preset-file)")
		cmd.Flags().StringVar(&presetFile, "preset-file", "", "YAML file with additional presets")
	}

	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Random seed")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Write CSV to this file instead of stdout")

	codegenCmd.Flags().BoolVar(&codegenCall, "call", false, "Send the prompt to the OpenAI API and print the response")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(codegenCmd)
}
