// Package cmd provides the CLI commands for phonebill.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lubomirsilny/arbes-assignment/internal/config"
	"github.com/lubomirsilny/arbes-assignment/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "phonebill",
	Short: "Calculate telephone bills from call logs",
	Long: `phonebill reads a call log and produces the bill for it.

Each log line records one call: the called number and the start and end
timestamps. Calls are charged per started minute, the most frequently
called number is not billed at all, and every amount is computed with
exact decimal arithmetic.

Examples:
  phonebill bill calls.log
  phonebill bill --format json calls.log
  cat calls.log | phonebill bill`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.phonebill.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(billCmd)
	rootCmd.AddCommand(tariffCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("phonebill version 0.1.0")
	},
}
