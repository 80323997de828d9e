package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailedFeedPlanResize(t *testing.T) {
	t.Run("pads with defaults", func(t *testing.T) {
		p := DetailedFeedPlan{}
		p.Resize(3)
		require.Len(t, p.Feeds, 3)
		for _, f := range p.Feeds {
			assert.Equal(t, 1, f.Inbound)
			assert.Equal(t, 1, f.Outbound)
			assert.True(t, f.Partitions.Equal(decimal.NewFromFloat(0.048)))
		}
	})

	t.Run("truncates and keeps prefix", func(t *testing.T) {
		custom := FeedConfig{Inbound: 4, Outbound: 2, Partitions: decimal.NewFromInt(3)}
		p := DetailedFeedPlan{Feeds: []FeedConfig{custom, DefaultFeedConfig(), DefaultFeedConfig()}}
		p.Resize(1)
		require.Len(t, p.Feeds, 1)
		assert.Equal(t, custom.Inbound, p.Feeds[0].Inbound)
		assert.Equal(t, custom.Outbound, p.Feeds[0].Outbound)
	})

	t.Run("negative clamps to empty", func(t *testing.T) {
		p := DetailedFeedPlan{Feeds: []FeedConfig{DefaultFeedConfig()}}
		p.Resize(-1)
		assert.Empty(t, p.Feeds)
	})

	t.Run("same size is a no-op", func(t *testing.T) {
		p := DetailedFeedPlan{Feeds: []FeedConfig{{Inbound: 9}}}
		p.Resize(1)
		require.Len(t, p.Feeds, 1)
		assert.Equal(t, 9, p.Feeds[0].Inbound)
	})
}

func TestPlanConstructors(t *testing.T) {
	sp := SimplePlan(3, 5)
	assert.Equal(t, PlanSimple, sp.Kind)
	assert.Equal(t, 3, sp.Simple.InboundFeeds)
	assert.Equal(t, 5, sp.Simple.OutboundFeeds)

	dp := DetailedPlan(DefaultFeedConfig(), DefaultFeedConfig())
	assert.Equal(t, PlanDetailed, dp.Kind)
	assert.Len(t, dp.Detailed.Feeds, 2)
}

func TestDefaultROMConfig(t *testing.T) {
	cfg := DefaultROMConfig()

	assert.Equal(t, PlanSimple, cfg.Plan.Kind)
	assert.Equal(t, 1, cfg.Plan.Simple.InboundFeeds)
	assert.Equal(t, 1, cfg.Plan.Simple.OutboundFeeds)
	assert.True(t, cfg.DEHourlyRate.Equal(decimal.NewFromInt(80)))
	assert.True(t, cfg.InboundHours.Equal(decimal.NewFromInt(296)))
	assert.True(t, cfg.OutboundHours.Equal(decimal.NewFromInt(254)))
	assert.True(t, cfg.NormalizationHours.Equal(decimal.NewFromFloat(27.9)))
	assert.True(t, cfg.WorkspaceSetupCost.Equal(decimal.NewFromInt(8000)))
	assert.True(t, cfg.ConfluentAnnualCost.Equal(decimal.NewFromInt(11709)))
	assert.True(t, cfg.GCPPerFeedAnnualCost.Equal(decimal.NewFromInt(9279)))
	assert.True(t, cfg.EscalationRate.Equal(decimal.NewFromFloat(0.034)))
	assert.Equal(t, 2025, cfg.StartYear)
	assert.Equal(t, 5000, cfg.RecordsPerDay)
}
