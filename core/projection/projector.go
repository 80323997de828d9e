// Package projection escalates a base cost breakdown across a fixed
// 7-year horizon. Each call recomputes the full projection from its
// inputs; nothing is cached between calls.
package projection

import (
	"github.com/shopspring/decimal"

	"confluent-cost/core/types"
)

// Years is the fixed projection horizon
const Years = 7

// MonthsPerYear is the monthly expansion width
const MonthsPerYear = 12

// MonthlyStrategy selects how the 12 monthly values per year are derived
type MonthlyStrategy string

const (
	// MonthlyFlatAverage divides each escalated annual total evenly by 12.
	// The recommended policy: it stays consistent with the annual
	// escalation rate the caller supplied.
	MonthlyFlatAverage MonthlyStrategy = "flat-average"

	// MonthlyCompound compounds a separate monthly rate from a global
	// month index, independent of the annual figures. Its cumulative sum
	// will generally differ from the annual totals.
	MonthlyCompound MonthlyStrategy = "compound"
)

// YearProjection is one escalated year
type YearProjection struct {
	// Year is the calendar year label
	Year int `json:"year"`

	// Compute is the escalated compute cost
	Compute decimal.Decimal `json:"compute"`

	// Storage is the escalated storage cost
	Storage decimal.Decimal `json:"storage"`

	// Network is the escalated network cost
	Network decimal.Decimal `json:"network"`

	// Governance is the escalated governance cost
	Governance decimal.Decimal `json:"governance"`

	// Total is the sum of the four categories for this year
	Total decimal.Decimal `json:"total"`

	// Cumulative is the running total through this year
	Cumulative decimal.Decimal `json:"cumulative"`

	// Monthly holds the 12 monthly values per the selected strategy
	Monthly [MonthsPerYear]decimal.Decimal `json:"monthly"`

	// MonthlyTotal is the annual figure the monthly row reports: Total
	// under MonthlyFlatAverage, the sum of Monthly under MonthlyCompound
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
}

// Projection is the complete fixed-length output
type Projection struct {
	// StartYear is the first projected year
	StartYear int `json:"start_year"`

	// EscalationRate is the annual compounding rate applied
	EscalationRate decimal.Decimal `json:"escalation_rate"`

	// Strategy is the monthly derivation policy used
	Strategy MonthlyStrategy `json:"strategy"`

	// Years holds exactly 7 projected years
	Years [Years]YearProjection `json:"years"`
}

var one = decimal.NewFromInt(1)
var twelve = decimal.NewFromInt(MonthsPerYear)

// Project escalates base forward 7 years at rate, starting at startYear.
// monthlyRate only applies under MonthlyCompound and is ignored
// otherwise.
func Project(base types.CostBreakdown, startYear int, rate decimal.Decimal, strategy MonthlyStrategy, monthlyRate decimal.Decimal) Projection {
	p := Projection{
		StartYear:      startYear,
		EscalationRate: rate,
		Strategy:       strategy,
	}

	growth := one.Add(rate)
	monthlyGrowth := one.Add(monthlyRate)
	cumulative := decimal.Zero

	for y := 0; y < Years; y++ {
		multiplier := growth.Pow(decimal.NewFromInt(int64(y)))

		yp := YearProjection{
			Year:       startYear + y,
			Compute:    base.Compute.Mul(multiplier),
			Storage:    base.Storage.Mul(multiplier),
			Network:    base.Network.Mul(multiplier),
			Governance: base.Governance.Mul(multiplier),
		}
		yp.Total = yp.Compute.Add(yp.Storage).Add(yp.Network).Add(yp.Governance)
		cumulative = cumulative.Add(yp.Total)
		yp.Cumulative = cumulative

		switch strategy {
		case MonthlyCompound:
			monthlySum := decimal.Zero
			for m := 0; m < MonthsPerYear; m++ {
				globalMonth := int64(y*MonthsPerYear + m)
				value := base.TotalMonthly.Mul(monthlyGrowth.Pow(decimal.NewFromInt(globalMonth)))
				yp.Monthly[m] = value
				monthlySum = monthlySum.Add(value)
			}
			yp.MonthlyTotal = monthlySum
		default:
			avg := yp.Total.Div(twelve)
			for m := 0; m < MonthsPerYear; m++ {
				yp.Monthly[m] = avg
			}
			yp.MonthlyTotal = yp.Total
		}

		p.Years[y] = yp
	}

	return p
}
