// Package cmd - tariff command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// tariffCmd shows the rates bills would be calculated with
var tariffCmd = &cobra.Command{
	Use:   "tariff",
	Short: "Show the effective tariff",
	Long: `Print the rates a bill would be calculated with.

The built-in tariff applies unless a tariff file is named by the
--tariff flag or the configuration. Attributes missing from the file
keep their built-in values.`,
	Args: cobra.NoArgs,
	RunE: runTariff,
}

func init() {
	tariffCmd.Flags().StringVarP(&tariffFile, "tariff", "t", "", "tariff file overriding the built-in rates")
}

func runTariff(cmd *cobra.Command, args []string) error {
	rates, err := loadTariff()
	if err != nil {
		return err
	}

	fmt.Printf("Peak window:    %02d:00 - %02d:00\n", rates.PeakStartHour, rates.PeakEndHour)
	fmt.Printf("Standard rate:  %s per started minute inside the window\n", rates.StandardRate.StringFixed(2))
	fmt.Printf("Reduced rate:   %s per started minute outside it\n", rates.ReducedRate.StringFixed(2))
	fmt.Printf("Long calls:     %s per started minute after the first %d\n", rates.LongCallRate.StringFixed(2), rates.LongCallAfterMinutes)
	return nil
}
