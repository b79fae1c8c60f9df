package main

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gosynth/timeseries"
	"github.com/sartorproj/gosynth/trend"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	records, err := timeseries.ReadCSV(args[0])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}
	logrus.WithFields(logrus.Fields{
		"records": len(records),
		"file":    args[0],
	}).Debug("records loaded")

	results, err := trend.Analyze(records)
	if err != nil {
		return err
	}

	categories := make([]string, 0, len(results))
	for category := range results {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-16s %12s %12s %10s\n", "CATEGORY", "SLOPE", "INTERCEPT", "R2")
	for _, category := range categories {
		r := results[category]
		if r == nil {
			fmt.Fprintf(out, "%-16s %36s\n", category, "(fewer than 2 points)")
			continue
		}
		fmt.Fprintf(out, "%-16s %12.4f %12.4f %10.4f\n", category, r.Slope, r.Intercept, r.RSquared)
	}
	return nil
}
