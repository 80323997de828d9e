// Package inventory - topic inventory CSV parser
package inventory

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"confluent-cost/core/types"
)

// Column positions in the inventory export. The layout is fixed; the
// columns in between carry fields this calculator does not use.
const (
	colName       = 0
	colPartitions = 2
	colStorage    = 5

	// minColumns is the minimum field count for a parseable row
	minColumns = 6
)

// ParseOptions selects between the observed parser variants
type ParseOptions struct {
	// IncludeSkippedInTotals accumulates totals from every parseable line,
	// including rows dropped from the topic list. When false (the
	// default), totals come from kept rows only.
	IncludeSkippedInTotals bool

	// RequirePartitions additionally drops rows whose partition count is
	// not positive
	RequirePartitions bool
}

// Inventory is the parser output: the kept topic rows plus totals
type Inventory struct {
	// Topics are the kept rows, in input order
	Topics []types.TopicRow `json:"topics"`

	// Totals aggregates the inventory per the configured policy
	Totals types.InventoryTotals `json:"totals"`
}

// Parse reads raw inventory CSV text. The first line is treated as a
// header and ignored. Blank lines and rows with fewer than six columns
// are skipped; unparseable partition counts and storage tokens degrade
// to zero. Parse never fails: empty input yields an empty inventory
// with zero totals.
func Parse(raw string, opts ParseOptions) Inventory {
	inv := Inventory{
		Totals: types.InventoryTotals{TotalStorageGB: decimal.Zero},
	}

	r := csv.NewReader(strings.NewReader(raw))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// malformed line; skip and keep going
			continue
		}
		if header {
			header = false
			continue
		}
		if len(record) < minColumns {
			continue
		}

		name := strings.TrimSpace(record[colName])
		partitions := parsePartitions(record[colPartitions])
		storageRaw := strings.TrimSpace(record[colStorage])
		storageGB := ParseStorageGB(storageRaw)

		kept := name != ""
		if opts.RequirePartitions && partitions <= 0 {
			kept = false
		}

		if kept {
			inv.Topics = append(inv.Topics, types.TopicRow{
				Name:       name,
				Partitions: partitions,
				StorageGB:  storageGB,
				StorageRaw: storageRaw,
			})
		}
		if kept || opts.IncludeSkippedInTotals {
			inv.Totals.TotalPartitions += partitions
			inv.Totals.TotalStorageGB = inv.Totals.TotalStorageGB.Add(storageGB)
		}
	}

	return inv
}

func parsePartitions(field string) int {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0
	}
	return n
}
