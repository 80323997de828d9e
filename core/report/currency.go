// Package report renders computed estimates into the two fixed CSV
// report layouts. Formatters are strictly downstream of computation:
// they format values the allocator, projector and aggregator already
// produced, and never derive new ones, so exported CSV figures cannot
// diverge from the on-screen ones.
package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)
var thousand = decimal.NewFromInt(1000)

// money2 formats a value as $1234.56
func money2(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}

// moneyWhole formats a value as $1,234 - thousands separators, no decimals
func moneyWhole(v decimal.Decimal) string {
	return "$" + groupThousands(v.Round(0).String())
}

// percent1 formats a fractional rate as a percentage with one decimal
func percent1(rate decimal.Decimal) string {
	return rate.Mul(hundred).StringFixed(1) + "%"
}

// whole formats a value rounded to the nearest integer
func whole(v decimal.Decimal) string {
	return v.Round(0).String()
}

// inThousands formats a value scaled down to thousands, rounded
func inThousands(v decimal.Decimal) string {
	return v.Div(thousand).Round(0).String()
}

// groupThousands inserts comma separators into an integer string
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	return out
}
