// Package inventory parses topic-inventory CSV data into structured rows
// and aggregate totals. Parsing never fails hard: malformed fields
// degrade to zero so one bad row cannot sink the whole inventory.
package inventory

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// storageToken matches <number><unit> with no whitespace between them.
// Units are case-sensitive.
var storageToken = regexp.MustCompile(`^([0-9]*\.?[0-9]+)(B|KB|MB|GB|TB)$`)

var kib = decimal.NewFromInt(1024)

// ParseStorageGB converts a human-readable size token ("1.2TB", "500MB")
// to GB using binary (1024-based) conversions. Empty or unrecognized
// tokens normalize to zero; this function never errors.
func ParseStorageGB(token string) decimal.Decimal {
	token = strings.TrimSpace(token)
	if token == "" || token == "0B" {
		return decimal.Zero
	}

	m := storageToken.FindStringSubmatch(token)
	if m == nil {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Zero
	}

	switch m[2] {
	case "TB":
		return value.Mul(kib)
	case "GB":
		return value
	case "MB":
		return value.Div(kib)
	case "KB":
		return value.Div(kib).Div(kib)
	default: // B
		return value.Div(kib).Div(kib).Div(kib)
	}
}
