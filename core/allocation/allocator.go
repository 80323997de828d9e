// Package allocation computes the prorated annual cost breakdown for a
// capacity tier. Pure functions; safe to call on every rate or tier
// change.
package allocation

import (
	"github.com/shopspring/decimal"

	"confluent-cost/core/types"
	"confluent-cost/internal/errors"
)

var twelve = decimal.NewFromInt(12)

// Estimate resolves tierName in tiers and allocates costs to it.
// An unknown tier name is the one hard failure in the core: it returns
// a typed not-found error rather than a silent zero breakdown.
func Estimate(totals types.InventoryTotals, tierName string, tiers types.TierTable, rates types.RateConfig) (types.CostBreakdown, error) {
	tier, ok := tiers[tierName]
	if !ok {
		return types.CostBreakdown{}, errors.NotFound("tier", tierName)
	}
	return EstimateTier(totals, tier, rates), nil
}

// EstimateTier allocates costs to an already-resolved tier.
//
// Compute is prorated by the tier's partition share, storage and
// governance by its storage share. Network is a flat allocation scaled
// only by the configured multiplier, regardless of tier size. Both
// ratios are forced to zero when the inventory total is zero.
func EstimateTier(totals types.InventoryTotals, tier types.TierProfile, rates types.RateConfig) types.CostBreakdown {
	partitionRatio := ratio(decimal.NewFromInt(int64(tier.Partitions)), decimal.NewFromInt(int64(totals.TotalPartitions)))
	storageRatio := ratio(tier.StorageGB, totals.TotalStorageGB)

	computeAnnual := decimal.Zero
	for _, r := range rates.ComputeRates {
		computeAnnual = computeAnnual.Add(r.AnnualCost())
	}

	compute := partitionRatio.Mul(computeAnnual)
	storage := storageRatio.Mul(rates.StorageAnnual)
	network := rates.NetworkAnnual.Mul(rates.NetworkMultiplier)
	governance := storageRatio.Mul(rates.GovernanceAnnual)

	totalYearly := compute.Add(storage).Add(network).Add(governance)

	return types.CostBreakdown{
		Compute:      compute,
		Storage:      storage,
		Network:      network,
		Governance:   governance,
		TotalYearly:  totalYearly,
		TotalMonthly: totalYearly.Div(twelve),
	}
}

// ratio returns part/whole, or zero when whole is zero
func ratio(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole)
}
