package allocation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confluent-cost/core/types"
	"confluent-cost/internal/errors"
)

func testTotals() types.InventoryTotals {
	return types.InventoryTotals{
		TotalPartitions: 1000,
		TotalStorageGB:  decimal.NewFromInt(2000),
	}
}

func TestEstimateTierProratesByRatios(t *testing.T) {
	rates := types.DefaultRateConfig()
	tier := types.TierProfile{Partitions: 500, StorageGB: decimal.NewFromInt(1000)}

	bd := EstimateTier(testTotals(), tier, rates)

	// both ratios are 0.5; annual compute is 2x2100x12 + 2x1955x12 = 97320
	assert.True(t, bd.Compute.Equal(decimal.NewFromInt(48660)), "compute %s", bd.Compute)
	assert.True(t, bd.Storage.Equal(decimal.NewFromInt(17500)), "storage %s", bd.Storage)
	assert.True(t, bd.Governance.Equal(decimal.NewFromInt(7500)), "governance %s", bd.Governance)
	assert.True(t, bd.Network.Equal(decimal.NewFromInt(120000)), "network %s", bd.Network)
}

func TestEstimateTierZeroTotalsGuardsDivision(t *testing.T) {
	rates := types.DefaultRateConfig()
	tier := types.TierProfile{Partitions: 500, StorageGB: decimal.NewFromInt(1000)}

	bd := EstimateTier(types.InventoryTotals{}, tier, rates)

	assert.True(t, bd.Compute.IsZero())
	assert.True(t, bd.Storage.IsZero())
	assert.True(t, bd.Governance.IsZero())
	// network is flat and unaffected by the empty inventory
	assert.True(t, bd.Network.Equal(decimal.NewFromInt(120000)))
}

func TestEstimateTierNetworkInvariantAcrossTiers(t *testing.T) {
	rates := types.DefaultRateConfig()
	totals := testTotals()

	small := EstimateTier(totals, types.TierProfile{Partitions: 250, StorageGB: decimal.NewFromInt(500)}, rates)
	large := EstimateTier(totals, types.TierProfile{Partitions: 4500, StorageGB: decimal.NewFromInt(10000)}, rates)

	assert.True(t, small.Network.Equal(large.Network))
}

func TestEstimateTierNetworkMultiplier(t *testing.T) {
	rates := types.DefaultRateConfig()
	rates.NetworkMultiplier = decimal.NewFromFloat(0.5)

	bd := EstimateTier(testTotals(), types.TierProfile{Partitions: 500, StorageGB: decimal.NewFromInt(1000)}, rates)

	assert.True(t, bd.Network.Equal(decimal.NewFromInt(60000)))
}

func TestEstimateTierTotalsIdentity(t *testing.T) {
	rates := types.DefaultRateConfig()
	tier := types.TierProfile{Partitions: 333, StorageGB: decimal.NewFromFloat(1234.5)}

	bd := EstimateTier(testTotals(), tier, rates)

	sum := bd.Compute.Add(bd.Storage).Add(bd.Network).Add(bd.Governance)
	assert.True(t, bd.TotalYearly.Equal(sum))
	assert.True(t, bd.TotalMonthly.Equal(bd.TotalYearly.Div(decimal.NewFromInt(12))))
}

func TestEstimateResolvesTierName(t *testing.T) {
	bd, err := Estimate(testTotals(), "Medium", types.DefaultTierTable(), types.DefaultRateConfig())

	require.NoError(t, err)
	assert.False(t, bd.TotalYearly.IsZero())
}

func TestEstimateUnknownTier(t *testing.T) {
	_, err := Estimate(testTotals(), "Galactic", types.DefaultTierTable(), types.DefaultRateConfig())

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestEstimateTierIdempotent(t *testing.T) {
	rates := types.DefaultRateConfig()
	tier := types.TierProfile{Partitions: 500, StorageGB: decimal.NewFromInt(1000)}

	first := EstimateTier(testTotals(), tier, rates)
	second := EstimateTier(testTotals(), tier, rates)

	assert.True(t, first.TotalYearly.Equal(second.TotalYearly))
	assert.True(t, first.TotalMonthly.Equal(second.TotalMonthly))
}
