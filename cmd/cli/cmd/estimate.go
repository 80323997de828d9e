// Package cmd - estimate command
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"confluent-cost/core/allocation"
	"confluent-cost/core/inventory"
	"confluent-cost/core/projection"
	"confluent-cost/core/report"
	"confluent-cost/core/types"
	"confluent-cost/internal/config"
	"confluent-cost/internal/logging"
)

var (
	tierName        string
	ratesFile       string
	increaseRate    float64
	startYear       int
	monthlyStrategy string
	outputPath      string
	includeSkipped  bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate [inventory.csv]",
	Short: "Estimate tier costs from a topic inventory",
	Long: `Parse a topic-inventory CSV, allocate annual platform cost to the
selected T-shirt size, and write the 7-year projection report.

Examples:
  confluent-cost estimate inventory.csv
  confluent-cost estimate --tier Large --rate 0.034 inventory.csv
  confluent-cost estimate --rates rates.hcl --output projection.csv inventory.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	defaults := config.Get().Defaults
	estimateCmd.Flags().StringVarP(&tierName, "tier", "t", defaults.Tier, "T-shirt size to estimate")
	estimateCmd.Flags().StringVar(&ratesFile, "rates", "", "HCL rates file overriding the default rates and tiers")
	estimateCmd.Flags().Float64Var(&increaseRate, "rate", defaults.AnnualIncreaseRate, "annual increase rate")
	estimateCmd.Flags().IntVar(&startYear, "start-year", defaults.StartYear, "first projected year (0 = current year)")
	estimateCmd.Flags().StringVar(&monthlyStrategy, "monthly-strategy", defaults.MonthlyStrategy, "monthly breakdown policy (flat-average, compound)")
	estimateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "report file (default stdout)")
	estimateCmd.Flags().BoolVar(&includeSkipped, "include-skipped", false, "accumulate totals from skipped rows too")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read inventory: %w", err)
	}

	inv := inventory.Parse(string(raw), inventory.ParseOptions{
		IncludeSkippedInTotals: includeSkipped,
	})
	logging.Info("parsed inventory",
		zap.Int("topics", len(inv.Topics)),
		zap.Int("total_partitions", inv.Totals.TotalPartitions),
		zap.String("total_storage_gb", inv.Totals.TotalStorageGB.String()),
	)

	rates, tiers, err := loadRates()
	if err != nil {
		return err
	}

	breakdown, err := allocation.Estimate(inv.Totals, tierName, tiers, rates)
	if err != nil {
		return err
	}

	year := startYear
	if year == 0 {
		year = time.Now().Year()
	}
	rate := decimal.NewFromFloat(increaseRate)

	proj := projection.Project(breakdown, year, rate, projection.MonthlyStrategy(monthlyStrategy), rate)

	rep := report.ProjectionReport{
		TierName:   tierName,
		Totals:     inv.Totals,
		Rates:      rates,
		Breakdown:  breakdown,
		Projection: proj,
	}
	return writeReport(rep.Render, outputPath)
}

func loadRates() (rates types.RateConfig, tiers types.TierTable, err error) {
	if ratesFile != "" {
		return config.LoadRates(ratesFile)
	}
	return types.DefaultRateConfig(), types.DefaultTierTable(), nil
}

// writeReport renders to outputPath, or stdout when it is empty
func writeReport(render func(w io.Writer) error, path string) error {
	if path == "" {
		return render(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()
	if err := render(f); err != nil {
		return err
	}
	logging.Info("report written", zap.String("path", path))
	return nil
}
