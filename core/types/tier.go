// Package types - capacity tiers and unit rates
package types

import "github.com/shopspring/decimal"

// Provider identifies a compute provider for CKU pricing
type Provider string

const (
	ProviderAzure Provider = "Azure"
	ProviderGCP   Provider = "GCP"
)

// String returns the display name
func (p Provider) String() string {
	return string(p)
}

// TierProfile is a named capacity tier's resource footprint.
// The tier's share of the total inventory determines its share of the
// prorated platform costs.
type TierProfile struct {
	// Partitions is the partition count the tier is sized for
	Partitions int `json:"partitions"`

	// StorageGB is the storage footprint the tier is sized for
	StorageGB decimal.Decimal `json:"storage_gb"`
}

// TierTable maps tier names to their profiles
type TierTable map[string]TierProfile

// CKURate is a per-provider compute rate: a CKU count billed monthly
type CKURate struct {
	// Provider is the compute provider
	Provider Provider `json:"provider"`

	// CKUs is the provisioned CKU count
	CKUs int `json:"ckus"`

	// MonthlyRate is the price per CKU per month
	MonthlyRate decimal.Decimal `json:"monthly_rate"`
}

// AnnualCost returns CKUs x MonthlyRate x 12
func (r CKURate) AnnualCost() decimal.Decimal {
	return decimal.NewFromInt(int64(r.CKUs)).Mul(r.MonthlyRate).Mul(monthsPerYear)
}

// RateConfig holds the configurable unit costs for tier allocation.
// All fields are non-negative; there are no cross-field invariants.
type RateConfig struct {
	// ComputeRates are the per-provider CKU rates
	ComputeRates []CKURate `json:"compute_rates"`

	// StorageAnnual is the flat annual storage cost, prorated by storage ratio
	StorageAnnual decimal.Decimal `json:"storage_annual"`

	// NetworkAnnual is the flat annual network cost
	NetworkAnnual decimal.Decimal `json:"network_annual"`

	// GovernanceAnnual is the flat annual governance cost, prorated by storage ratio
	GovernanceAnnual decimal.Decimal `json:"governance_annual"`

	// NetworkMultiplier scales the network cost; never prorated by tier size
	NetworkMultiplier decimal.Decimal `json:"network_multiplier"`
}

// CostBreakdown is the allocated annual cost for one tier.
// Derived on every call; never persisted.
type CostBreakdown struct {
	// Compute is the prorated annual CKU cost
	Compute decimal.Decimal `json:"compute"`

	// Storage is the prorated annual storage cost
	Storage decimal.Decimal `json:"storage"`

	// Network is the flat annual network cost
	Network decimal.Decimal `json:"network"`

	// Governance is the prorated annual governance cost
	Governance decimal.Decimal `json:"governance"`

	// TotalYearly is the sum of the four categories
	TotalYearly decimal.Decimal `json:"total_yearly"`

	// TotalMonthly is TotalYearly / 12
	TotalMonthly decimal.Decimal `json:"total_monthly"`
}

var monthsPerYear = decimal.NewFromInt(12)

// DefaultTierTable returns the standard T-shirt size tiers.
// A fresh copy is built per call so callers can edit it freely.
func DefaultTierTable() TierTable {
	return TierTable{
		"Small":    {Partitions: 250, StorageGB: decimal.NewFromInt(500)},
		"Medium":   {Partitions: 500, StorageGB: decimal.NewFromInt(1000)},
		"Large":    {Partitions: 1000, StorageGB: decimal.NewFromInt(2500)},
		"X-Large":  {Partitions: 2500, StorageGB: decimal.NewFromInt(5000)},
		"XX-Large": {Partitions: 4500, StorageGB: decimal.NewFromInt(10000)},
	}
}

// DefaultRateConfig returns the standard unit rates
func DefaultRateConfig() RateConfig {
	return RateConfig{
		ComputeRates: []CKURate{
			{Provider: ProviderAzure, CKUs: 2, MonthlyRate: decimal.NewFromInt(2100)},
			{Provider: ProviderGCP, CKUs: 2, MonthlyRate: decimal.NewFromInt(1955)},
		},
		StorageAnnual:     decimal.NewFromInt(35000),
		NetworkAnnual:     decimal.NewFromInt(120000),
		GovernanceAnnual:  decimal.NewFromInt(15000),
		NetworkMultiplier: decimal.NewFromInt(1),
	}
}
