// Package cmd provides the CLI commands for confluent-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"confluent-cost/internal/config"
	"confluent-cost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "confluent-cost",
	Short: "Estimate Confluent platform costs",
	Long: `confluent-cost estimates Confluent platform costs.

It allocates annual platform cost to a selected capacity tier from a
topic-inventory CSV, projects it across 7 years, and produces ROM
(rough order of magnitude) estimates for new data feeds.

Examples:
  confluent-cost estimate --tier Medium inventory.csv
  confluent-cost estimate --rates rates.hcl --output projection.csv inventory.csv
  confluent-cost rom --inbound 2 --outbound 2`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.confluent-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(romCmd)
	rootCmd.AddCommand(configCmd)
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
		fmt.Println("confluent-cost version 0.1.0")
	},
}
