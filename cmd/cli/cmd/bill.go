// Package cmd - bill command
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lubomirsilny/arbes-assignment/core/billing"
	"github.com/lubomirsilny/arbes-assignment/core/output"
	"github.com/lubomirsilny/arbes-assignment/core/tariff"
	"github.com/lubomirsilny/arbes-assignment/internal/config"
	"github.com/lubomirsilny/arbes-assignment/internal/logging"
)

var (
	outputFormat string
	tariffFile   string
	showDetails  bool
)

// billCmd represents the bill command
var billCmd = &cobra.Command{
	Use:   "bill [file]",
	Short: "Calculate the bill for a call log",
	Long: `Read a call log and print the amount to pay.

Each line holds three comma-separated fields: the called number and the
start and end of the call as dd-MM-yyyy HH:mm:ss timestamps. Without a
file argument (or with "-") the log is read from standard input.

Examples:
  phonebill bill calls.log
  phonebill bill --format json calls.log
  phonebill bill --tariff weekend.hcl calls.log
  cat calls.log | phonebill bill`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBill,
}

func init() {
	billCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	billCmd.Flags().StringVarP(&tariffFile, "tariff", "t", "", "tariff file overriding the built-in rates")
	billCmd.Flags().BoolVarP(&showDetails, "details", "d", true, "show the per-call breakdown")
}

func runBill(cmd *cobra.Command, args []string) error {
	logText, err := readLog(args)
	if err != nil {
		return err
	}

	rates, err := loadTariff()
	if err != nil {
		return err
	}

	statement, err := billing.New(rates).Itemize(logText)
	if err != nil {
		return err
	}

	formatter, err := createFormatter(cmd)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, statement)
}

// readLog fetches the raw log text from the file argument or stdin.
func readLog(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading call log: %w", err)
	}
	logging.Debug("Read call log", zap.String("file", args[0]), zap.Int("bytes", len(data)))
	return string(data), nil
}

// loadTariff resolves the effective tariff. The --tariff flag wins over
// the configured file; without either the built-in rates apply.
func loadTariff() (tariff.Tariff, error) {
	path := tariffFile
	if path == "" {
		path = config.Get().Tariff.File
	}
	if path == "" {
		return tariff.Default(), nil
	}
	return tariff.LoadFile(path)
}

func createFormatter(cmd *cobra.Command) (output.Formatter, error) {
	format := outputFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}

	details := config.Get().Output.ShowDetails
	if cmd.Flags().Changed("details") {
		details = showDetails
	}
	opts := output.Options{ShowDetails: details}

	switch format {
	case "cli":
		return output.NewCLIFormatter(opts), nil
	case "json":
		return output.NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use cli or json)", format)
	}
}
