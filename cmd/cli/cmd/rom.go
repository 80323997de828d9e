// Package cmd - rom command
package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"confluent-cost/core/report"
	"confluent-cost/core/rom"
	"confluent-cost/core/types"
	"confluent-cost/internal/logging"
)

var (
	romInbound    int
	romOutbound   int
	romIngests    int
	romEscalation float64
	romStartYear  int
	romHourlyRate float64
	romOutputPath string
)

// romCmd represents the rom command
var romCmd = &cobra.Command{
	Use:   "rom",
	Short: "Produce a rough-order-of-magnitude feed estimate",
	Long: `Compute one-time engineering plus recurring cloud cost for a set of
data feeds and write the ROM report.

With --ingests the estimate uses a detailed per-ingest plan; otherwise
the inbound/outbound counts are used directly.

Examples:
  confluent-cost rom
  confluent-cost rom --inbound 2 --outbound 2 --escalation 0.034
  confluent-cost rom --ingests 3 --output rom.csv`,
	RunE: runROM,
}

func init() {
	defaults := types.DefaultROMConfig()
	romCmd.Flags().IntVar(&romInbound, "inbound", defaults.Plan.Simple.InboundFeeds, "inbound feed count")
	romCmd.Flags().IntVar(&romOutbound, "outbound", defaults.Plan.Simple.OutboundFeeds, "outbound feed count")
	romCmd.Flags().IntVar(&romIngests, "ingests", 0, "ingest count for a detailed per-ingest plan (0 = simple plan)")
	romCmd.Flags().Float64Var(&romEscalation, "escalation", defaults.EscalationRate.InexactFloat64(), "annual escalation rate")
	romCmd.Flags().IntVar(&romStartYear, "start-year", defaults.StartYear, "first fiscal year")
	romCmd.Flags().Float64Var(&romHourlyRate, "hourly-rate", defaults.DEHourlyRate.InexactFloat64(), "data engineering hourly rate")
	romCmd.Flags().StringVarP(&romOutputPath, "output", "o", "", "report file (default stdout)")
}

func runROM(cmd *cobra.Command, args []string) error {
	cfg := types.DefaultROMConfig()
	cfg.EscalationRate = decimal.NewFromFloat(romEscalation)
	cfg.StartYear = romStartYear
	cfg.DEHourlyRate = decimal.NewFromFloat(romHourlyRate)

	if romIngests > 0 {
		plan := types.DetailedFeedPlan{}
		plan.Resize(romIngests)
		cfg.Plan = types.FeedPlan{Kind: types.PlanDetailed, Detailed: plan}
	} else {
		cfg.Plan = types.SimplePlan(romInbound, romOutbound)
	}

	result := rom.Aggregate(cfg)
	logging.Info("computed ROM estimate",
		zap.Int("total_feeds", result.TotalFeeds),
		zap.String("total_project_cost", result.Breakdown.TotalProjectCost.StringFixed(2)),
	)

	rep := report.ROMReport{Config: cfg, Result: result}
	return writeReport(rep.Render, romOutputPath)
}
