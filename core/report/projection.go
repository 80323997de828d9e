// Package report - 7-year cost projection CSV
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"confluent-cost/core/projection"
	"confluent-cost/core/types"
)

var twelveMonths = decimal.NewFromInt(projection.MonthsPerYear)

// ProjectionReport renders the cost-projection CSV for one tier estimate
type ProjectionReport struct {
	// TierName is the selected T-shirt size
	TierName string

	// Totals is the parsed inventory the estimate was allocated against
	Totals types.InventoryTotals

	// Rates is the rate configuration used
	Rates types.RateConfig

	// Breakdown is the current-year cost breakdown
	Breakdown types.CostBreakdown

	// Projection is the 7-year escalation
	Projection projection.Projection
}

// Render writes the report CSV. The layout is fixed: title, metadata
// lines, CKU configuration, current-year breakdown, the 7-year
// projection table and the monthly expansion.
func (r ProjectionReport) Render(w io.Writer) error {
	var lines []string

	lines = append(lines, "Confluent Cloud Cost Calculator - 7 Year Projection")
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("T-Shirt Size:,%s", r.TierName))
	lines = append(lines, fmt.Sprintf("Partitions:,%d", r.Totals.TotalPartitions))
	lines = append(lines, fmt.Sprintf("Storage (GB):,%s", r.Totals.TotalStorageGB.String()))
	lines = append(lines, fmt.Sprintf("Annual Increase Rate:,%s", percent1(r.Projection.EscalationRate)))
	lines = append(lines, "")

	lines = append(lines, "CKU Configuration")
	for _, rate := range r.Rates.ComputeRates {
		lines = append(lines, fmt.Sprintf("%s CKUs:,%d", rate.Provider, rate.CKUs))
		lines = append(lines, fmt.Sprintf("%s Rate ($/CKU/Month):,$%s", rate.Provider, rate.MonthlyRate.String()))
	}
	lines = append(lines, "")

	lines = append(lines, "Current Year Cost Breakdown")
	lines = append(lines, "Category,Annual Cost,Monthly Cost")
	lines = append(lines, breakdownLine("Compute (CKU)", r.Breakdown.Compute))
	lines = append(lines, breakdownLine("Storage", r.Breakdown.Storage))
	lines = append(lines, breakdownLine("Network", r.Breakdown.Network))
	lines = append(lines, breakdownLine("Governance", r.Breakdown.Governance))
	lines = append(lines, fmt.Sprintf("Total,%s,%s", money2(r.Breakdown.TotalYearly), money2(r.Breakdown.TotalMonthly)))
	lines = append(lines, "")

	lines = append(lines, "7-Year Cost Projection")
	lines = append(lines, "Year,Compute Cost,Storage Cost,Network Cost,Governance Cost,Total Annual Cost,Cumulative Cost")
	for _, yp := range r.Projection.Years {
		lines = append(lines, fmt.Sprintf("%d,%s,%s,%s,%s,%s,%s",
			yp.Year,
			money2(yp.Compute),
			money2(yp.Storage),
			money2(yp.Network),
			money2(yp.Governance),
			money2(yp.Total),
			money2(yp.Cumulative),
		))
	}
	lines = append(lines, "")

	lines = append(lines, "Monthly Breakdown by Year")
	lines = append(lines, "Year,Jan,Feb,Mar,Apr,May,Jun,Jul,Aug,Sep,Oct,Nov,Dec,Annual Total")
	for _, yp := range r.Projection.Years {
		monthly := make([]string, 0, projection.MonthsPerYear)
		for _, m := range yp.Monthly {
			monthly = append(monthly, money2(m))
		}
		lines = append(lines, fmt.Sprintf("%d,%s,%s", yp.Year, strings.Join(monthly, ","), money2(yp.MonthlyTotal)))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// breakdownLine renders one category with its annual figure and the
// same figure displayed at monthly scale
func breakdownLine(category string, annual decimal.Decimal) string {
	return fmt.Sprintf("%s,%s,%s", category, money2(annual), money2(annual.Div(twelveMonths)))
}
