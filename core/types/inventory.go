// Package types defines the value objects shared by the cost calculators.
// Everything here is caller-owned data; no function in this module keeps
// state between calls.
package types

import "github.com/shopspring/decimal"

// TopicRow is a single topic parsed from the inventory CSV
type TopicRow struct {
	// Name is the topic name
	Name string `json:"name"`

	// Partitions is the topic partition count
	Partitions int `json:"partitions"`

	// StorageGB is the retained storage normalized to GB
	StorageGB decimal.Decimal `json:"storage_gb"`

	// StorageRaw is the storage token as it appeared in the source
	StorageRaw string `json:"storage_raw,omitempty"`
}

// InventoryTotals aggregates a parsed topic inventory
type InventoryTotals struct {
	// TotalPartitions is the partition sum over the inventory
	TotalPartitions int `json:"total_partitions"`

	// TotalStorageGB is the storage sum over the inventory, in GB
	TotalStorageGB decimal.Decimal `json:"total_storage_gb"`
}
