// Package rom computes the rough-order-of-magnitude estimate for a set
// of data feeds: one-time engineering cost plus recurring cloud cost
// escalated across a fixed 6-year horizon after the start year.
package rom

import (
	"github.com/shopspring/decimal"

	"confluent-cost/core/types"
)

// escalationYears is the number of escalated out-years after the start year
const escalationYears = 6

var (
	one     = decimal.NewFromInt(1)
	six     = decimal.NewFromInt(escalationYears)
	hundred = decimal.NewFromInt(100)

	// networkAnnualBaseline is the reference annual network cost for a
	// 100-partition capacity; detailed plans prorate against it
	networkAnnualBaseline = decimal.NewFromInt(120000)

	// networkPartitionCapacity is the partition capacity the baseline buys
	networkPartitionCapacity = decimal.NewFromInt(100)
)

// Aggregate computes a ROMResult from cfg. Inputs are assumed
// pre-validated non-negative; there are no error conditions.
func Aggregate(cfg types.ROMConfig) types.ROMResult {
	var totalInbound, totalOutbound int
	totalPartitions := decimal.Zero
	feedMultiplier := one

	detailed := cfg.Plan.Kind == types.PlanDetailed
	if detailed {
		for _, f := range cfg.Plan.Detailed.Feeds {
			totalInbound += f.Inbound
			totalOutbound += f.Outbound
			totalPartitions = totalPartitions.Add(f.Partitions)
		}
		// normalization effort scales per ingest, not per topic
		feedMultiplier = decimal.NewFromInt(int64(len(cfg.Plan.Detailed.Feeds)))
	} else {
		totalInbound = cfg.Plan.Simple.InboundFeeds
		totalOutbound = cfg.Plan.Simple.OutboundFeeds
	}
	totalFeeds := totalInbound + totalOutbound

	inboundDecimal := decimal.NewFromInt(int64(totalInbound))

	perFeedInbound := cfg.InboundHours.Mul(cfg.DEHourlyRate)
	perFeedOutbound := cfg.OutboundHours.Mul(cfg.DEHourlyRate)

	inboundCost := inboundDecimal.Mul(perFeedInbound)
	outboundCost := decimal.NewFromInt(int64(totalOutbound)).Mul(perFeedOutbound)
	normalizationCost := cfg.NormalizationHours.Mul(cfg.DEHourlyRate).Mul(feedMultiplier)
	oneTimeDevelopment := inboundCost.Add(outboundCost).Add(normalizationCost).Add(cfg.WorkspaceSetupCost)

	var confluentCost, gcpCost, networkCost decimal.Decimal
	if detailed {
		// each inbound feed is assumed paired with one outbound feed and
		// priced together
		confluentCost = cfg.ConfluentAnnualCost.Mul(inboundDecimal)
		gcpCost = cfg.GCPPerFeedAnnualCost.Mul(inboundDecimal)
		networkCost = networkAnnualBaseline.Mul(totalPartitions.Div(networkPartitionCapacity))
	} else {
		confluentCost = cfg.ConfluentAnnualCost
		gcpCost = cfg.GCPPerFeedAnnualCost.Mul(decimal.NewFromInt(int64(totalFeeds)))
		networkCost = decimal.Zero
	}
	firstYearCloud := confluentCost.Add(gcpCost).Add(networkCost)

	growth := one.Add(cfg.EscalationRate)
	cloud7Year := firstYearCloud
	variance6Year := decimal.Zero
	variance := make([]types.YearCost, 0, escalationYears)

	for i := 1; i <= escalationYears; i++ {
		escalated := firstYearCloud.Mul(growth.Pow(decimal.NewFromInt(int64(i))))
		cloud7Year = cloud7Year.Add(escalated)
		variance6Year = variance6Year.Add(escalated)
		variance = append(variance, types.YearCost{
			Year:                cfg.StartYear + i,
			DataEngineering:     decimal.Zero,
			CloudInfrastructure: escalated,
			Total:               escalated,
		})
	}

	totalProject := oneTimeDevelopment.Add(cloud7Year)

	return types.ROMResult{
		TotalInboundFeeds:       totalInbound,
		TotalOutboundFeeds:      totalOutbound,
		TotalFeeds:              totalFeeds,
		TotalPartitions:         totalPartitions,
		PartitionUtilizationPct: totalPartitions.Div(networkPartitionCapacity).Mul(hundred),
		InitialInvestment: types.YearCost{
			Year:                cfg.StartYear,
			DataEngineering:     oneTimeDevelopment,
			CloudInfrastructure: firstYearCloud,
			Total:               oneTimeDevelopment.Add(firstYearCloud),
		},
		OperatingVariance: variance,
		Breakdown: types.ROMBreakdown{
			InboundCost:                inboundCost,
			OutboundCost:               outboundCost,
			NormalizationCost:          normalizationCost,
			WorkspaceSetup:             cfg.WorkspaceSetupCost,
			PerFeedInboundCost:         perFeedInbound,
			PerFeedOutboundCost:        perFeedOutbound,
			ConfluentCost:              confluentCost,
			GCPCost:                    gcpCost,
			NetworkCost:                networkCost,
			FirstYearCloudCost:         firstYearCloud,
			OneTimeDevelopment:         oneTimeDevelopment,
			CloudInfrastructure7Year:   cloud7Year,
			OperatingVariance6Year:     variance6Year,
			OperatingVarianceAnnualAvg: variance6Year.Div(six),
			TotalProjectCost:           totalProject,
		},
	}
}
