// Package report - ROM CSV
package report

import (
	"fmt"
	"io"
	"strings"

	"confluent-cost/core/types"
)

// fiscalYearColumns is the fixed width of the fiscal-year header
const fiscalYearColumns = 12

// ROMReport renders the multi-section ROM CSV
type ROMReport struct {
	// Config is the ROM input set; the narrative sections interpolate
	// its rates and hour counts
	Config types.ROMConfig

	// Result is the aggregation output
	Result types.ROMResult
}

// Render writes the ROM report. Currency values carry thousands
// separators with no decimal places.
func (r ROMReport) Render(w io.Writer) error {
	cfg, res := r.Config, r.Result
	bd := res.Breakdown

	var lines []string

	lines = append(lines, "Confluent Feed ROM - Rough Order of Magnitude")
	lines = append(lines, "")

	lines = append(lines, r.fiscalYearHeader())

	lines = append(lines, "INITIAL INVESTMENT EXPENSE")
	initialDE := res.InitialInvestment.DataEngineering
	lines = append(lines, fmt.Sprintf("Data Engineering,%s,,,,,,,,,,,,%s", moneyWhole(initialDE), moneyWhole(initialDE)))

	lines = append(lines, placeholderItems()...)

	cloudCosts := make([]string, 0, len(res.OperatingVariance))
	for _, ov := range res.OperatingVariance {
		cloudCosts = append(cloudCosts, moneyWhole(ov.CloudInfrastructure))
	}
	escalated := strings.Join(cloudCosts, ",")

	lines = append(lines, fmt.Sprintf("GCP/GKE/Confluent,%s,%s,,,,,,%s",
		moneyWhole(res.InitialInvestment.CloudInfrastructure), escalated, moneyWhole(bd.CloudInfrastructure7Year)))
	lines = append(lines, fmt.Sprintf("TOTAL,%s,%s,,,,,,%s",
		moneyWhole(res.InitialInvestment.Total), escalated, moneyWhole(bd.TotalProjectCost)))

	lines = append(lines, "", "")

	lines = append(lines, r.fiscalYearHeader())
	lines = append(lines, "OPERATING VARIANCE")
	lines = append(lines, fmt.Sprintf("Data Engineering,,%s,,,,,,%s", escalated, moneyWhole(bd.OperatingVariance6Year)))
	lines = append(lines, placeholderItems()...)
	lines = append(lines, fmt.Sprintf("TOTAL,,%s,,,,,,%s", escalated, moneyWhole(bd.OperatingVariance6Year)))

	lines = append(lines, "", "")

	lines = append(lines, "Summary")
	lines = append(lines, "Capital,$-")
	lines = append(lines, fmt.Sprintf("Expense,%s", moneyWhole(bd.TotalProjectCost)))
	lines = append(lines, fmt.Sprintf("Variance,%s", moneyWhole(bd.OperatingVariance6Year)))
	lines = append(lines, fmt.Sprintf("Total,%s", moneyWhole(bd.TotalProjectCost)))

	lines = append(lines, "", "")
	lines = append(lines, fmt.Sprintf("Escalation Rate,%s", percent1(cfg.EscalationRate)))

	lines = append(lines, "")
	lines = append(lines, "Note*")
	lines = append(lines, `"Estimate based on latest Payroll 2.0 scaling factors"`)
	lines = append(lines, `"ROM may require revision as detailed requirements are finalized"`)

	lines = append(lines, "")
	lines = append(lines, "Assumptions:")
	lines = append(lines, fmt.Sprintf("1,ROM covers %d EEB ingest feed(s) with inbound/outbound data processing capabilities", res.TotalFeeds))
	lines = append(lines, "2,Feed ingests data with complex processing requirements")
	lines = append(lines, "3,Includes event data with facility impacts and workflow approvals")
	lines = append(lines, "4,Feed includes data normalization and standardization requirements")
	lines = append(lines, "5,Workspace/Environment setup costs included")
	lines = append(lines, fmt.Sprintf("6,Confluent platform required for real-time streaming: %s per feed per year", moneyWhole(cfg.ConfluentAnnualCost)))
	lines = append(lines, fmt.Sprintf("7,GCP/GKE infrastructure cost: %s per feed per year for compute and storage", moneyWhole(cfg.GCPPerFeedAnnualCost)))
	lines = append(lines, "8,ROM based on current understanding of high level requirements & known attributes")
	lines = append(lines, "9,As requirements are refined/finalized the ROM may need to be revised")

	lines = append(lines, "")
	lines = append(lines, "Timeline")
	lines = append(lines, fmt.Sprintf("FY%d-FY%d", cfg.StartYear, cfg.StartYear+6))
	lines = append(lines, fmt.Sprintf("12,FY%d: %s (Data Engineering + Cloud infrastructure setup - starting in 3 weeks)",
		cfg.StartYear, moneyWhole(res.InitialInvestment.Total)))
	lines = append(lines, fmt.Sprintf("13,FY%d-%d: %s annually (ongoing cloud operations with %s escalation) plus Operating Variance",
		cfg.StartYear+1, cfg.StartYear+6, moneyWhole(bd.OperatingVarianceAnnualAvg), percent1(cfg.EscalationRate)))

	lines = append(lines, "")
	lines = append(lines, "Cost Breakdown per Feed:")
	lines = append(lines, fmt.Sprintf("14,Create inbound ingest: %s,%s (%s hours)",
		moneyWhole(bd.PerFeedInboundCost), whole(cfg.InboundHours), whole(cfg.InboundHours)))
	lines = append(lines, fmt.Sprintf("15,Create outbound enterprise data assets: %s,%s (%s hours)",
		moneyWhole(bd.PerFeedOutboundCost), whole(cfg.OutboundHours), whole(cfg.OutboundHours)))
	lines = append(lines, fmt.Sprintf("16,Data normalization and standardization: %s,%s (%s hours - %d feeds)",
		moneyWhole(bd.NormalizationCost), whole(cfg.NormalizationHours), cfg.NormalizationHours.String(), res.TotalFeeds))
	lines = append(lines, fmt.Sprintf("17,Workspace/Environment/Subscription Prep: %s", moneyWhole(bd.WorkspaceSetup)))
	lines = append(lines, fmt.Sprintf("18,Annual Confluent platform cost: %s,%s", moneyWhole(cfg.ConfluentAnnualCost), whole(cfg.ConfluentAnnualCost)))
	lines = append(lines, fmt.Sprintf("19,Annual GCP/GKE cost: %s,%s per feed", moneyWhole(cfg.GCPPerFeedAnnualCost), whole(cfg.GCPPerFeedAnnualCost)))

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Total %d-Feed Investment", res.TotalFeeds))
	lines = append(lines, fmt.Sprintf("%d-Feed Investment", res.TotalFeeds))
	lines = append(lines, fmt.Sprintf("21,Data Engineering: %s,%s (one-time development)",
		moneyWhole(bd.OneTimeDevelopment), inThousands(bd.OneTimeDevelopment)))
	lines = append(lines, fmt.Sprintf("22,Cloud Infrastructure: %s,%s (7-year operational costs with %s escalation)",
		moneyWhole(bd.CloudInfrastructure7Year), inThousands(bd.CloudInfrastructure7Year), percent1(cfg.EscalationRate)))
	lines = append(lines, fmt.Sprintf("23,Operating Variance: %s,%s (6-year escalated costs)",
		moneyWhole(bd.OperatingVariance6Year), inThousands(bd.OperatingVariance6Year)))
	lines = append(lines, fmt.Sprintf("24,Total Project Cost: %s,%s",
		moneyWhole(bd.TotalProjectCost), inThousands(bd.TotalProjectCost)))

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// fiscalYearHeader renders "Fiscal Year,<12 years>,Total"
func (r ROMReport) fiscalYearHeader() string {
	years := make([]string, 0, fiscalYearColumns)
	for i := 0; i < fiscalYearColumns; i++ {
		years = append(years, fmt.Sprintf("%d", r.Config.StartYear+i))
	}
	return "Fiscal Year," + strings.Join(years, ",") + ",Total"
}

// placeholderItems are the fixed always-zero line items both tables carry
func placeholderItems() []string {
	return []string{
		"Data Strategy and Governance,,,,,,,,,,,,$-",
		"Enterprise Reporting and Dashboard,,,,,,,,,,,,$-",
		"Advance Modeling,,,,,,,,,,,,$-",
		"Service Performance,,,,,,,,,,,,$-",
	}
}
