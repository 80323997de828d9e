package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confluent-cost/core/projection"
	"confluent-cost/core/types"
)

func testProjectionReport() ProjectionReport {
	yearly := decimal.NewFromInt(24000)
	breakdown := types.CostBreakdown{
		Compute:      decimal.NewFromInt(12000),
		Storage:      decimal.NewFromInt(6000),
		Network:      decimal.NewFromInt(4800),
		Governance:   decimal.NewFromInt(1200),
		TotalYearly:  yearly,
		TotalMonthly: yearly.Div(decimal.NewFromInt(12)),
	}
	proj := projection.Project(breakdown, 2025, decimal.Zero, projection.MonthlyFlatAverage, decimal.Zero)

	return ProjectionReport{
		TierName: "Medium",
		Totals: types.InventoryTotals{
			TotalPartitions: 1000,
			TotalStorageGB:  decimal.NewFromInt(2000),
		},
		Rates:      types.DefaultRateConfig(),
		Breakdown:  breakdown,
		Projection: proj,
	}
}

func TestProjectionReportLayout(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, testProjectionReport().Render(&sb))
	lines := strings.Split(sb.String(), "\n")

	assert.Equal(t, "Confluent Cloud Cost Calculator - 7 Year Projection", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "T-Shirt Size:,Medium", lines[2])
	assert.Equal(t, "Partitions:,1000", lines[3])
	assert.Equal(t, "Storage (GB):,2000", lines[4])
	assert.Equal(t, "Annual Increase Rate:,0.0%", lines[5])

	assert.Contains(t, lines, "CKU Configuration")
	assert.Contains(t, lines, "Azure CKUs:,2")
	assert.Contains(t, lines, "Azure Rate ($/CKU/Month):,$2100")
	assert.Contains(t, lines, "GCP CKUs:,2")
	assert.Contains(t, lines, "GCP Rate ($/CKU/Month):,$1955")
}

func TestProjectionReportBreakdownSection(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, testProjectionReport().Render(&sb))
	out := sb.String()

	assert.Contains(t, out, "Current Year Cost Breakdown\nCategory,Annual Cost,Monthly Cost\n")
	assert.Contains(t, out, "Compute (CKU),$12000.00,$1000.00")
	assert.Contains(t, out, "Storage,$6000.00,$500.00")
	assert.Contains(t, out, "Network,$4800.00,$400.00")
	assert.Contains(t, out, "Governance,$1200.00,$100.00")
	assert.Contains(t, out, "Total,$24000.00,$2000.00")
}

func TestProjectionReportProjectionTable(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, testProjectionReport().Render(&sb))
	lines := strings.Split(sb.String(), "\n")

	headerIdx := indexOf(lines, "Year,Compute Cost,Storage Cost,Network Cost,Governance Cost,Total Annual Cost,Cumulative Cost")
	require.GreaterOrEqual(t, headerIdx, 0)

	// zero escalation: seven identical rows with a running cumulative
	assert.Equal(t, "2025,$12000.00,$6000.00,$4800.00,$1200.00,$24000.00,$24000.00", lines[headerIdx+1])
	assert.Equal(t, "2031,$12000.00,$6000.00,$4800.00,$1200.00,$24000.00,$168000.00", lines[headerIdx+7])
}

func TestProjectionReportMonthlySection(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, testProjectionReport().Render(&sb))
	lines := strings.Split(sb.String(), "\n")

	headerIdx := indexOf(lines, "Year,Jan,Feb,Mar,Apr,May,Jun,Jul,Aug,Sep,Oct,Nov,Dec,Annual Total")
	require.GreaterOrEqual(t, headerIdx, 0)
	require.Len(t, lines, headerIdx+8)

	row := lines[headerIdx+1]
	fields := strings.Split(row, ",")
	require.Len(t, fields, 14)
	assert.Equal(t, "2025", fields[0])
	for _, f := range fields[1:13] {
		assert.Equal(t, "$2000.00", f)
	}
	assert.Equal(t, "$24000.00", fields[13])
}

func indexOf(lines []string, want string) int {
	for i, l := range lines {
		if l == want {
			return i
		}
	}
	return -1
}
