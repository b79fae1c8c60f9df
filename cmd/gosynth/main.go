// Command gosynth generates synthetic time series, analyzes their trends,
// and exports them as CSV from the command line.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
