// Package types - ROM (rough order of magnitude) feed estimate types
package types

import "github.com/shopspring/decimal"

// FeedPlanKind tags the two ways a ROM scope can be described
type FeedPlanKind string

const (
	// PlanSimple counts inbound and outbound feeds directly
	PlanSimple FeedPlanKind = "simple"

	// PlanDetailed lists one FeedConfig per ingest
	PlanDetailed FeedPlanKind = "detailed"
)

// FeedConfig describes one ingest in a detailed plan
type FeedConfig struct {
	// Inbound is the inbound feed count for this ingest
	Inbound int `json:"inbound"`

	// Outbound is the outbound feed count for this ingest
	Outbound int `json:"outbound"`

	// Partitions is the partition capacity this ingest consumes.
	// Fractional values are valid; small feeds use a sliver of a partition.
	Partitions decimal.Decimal `json:"partitions"`
}

// DefaultFeedConfig returns the per-ingest defaults used when a plan grows
func DefaultFeedConfig() FeedConfig {
	return FeedConfig{
		Inbound:    1,
		Outbound:   1,
		Partitions: decimal.NewFromFloat(0.048),
	}
}

// SimpleFeedCount is the scalar-count form of a feed plan
type SimpleFeedCount struct {
	// InboundFeeds is the inbound feed count
	InboundFeeds int `json:"inbound_feeds"`

	// OutboundFeeds is the outbound feed count
	OutboundFeeds int `json:"outbound_feeds"`
}

// DetailedFeedPlan lists per-ingest feed records
type DetailedFeedPlan struct {
	// Feeds has one entry per ingest
	Feeds []FeedConfig `json:"feeds"`
}

// Resize truncates or pads the feed list to n entries.
// New entries take DefaultFeedConfig.
func (p *DetailedFeedPlan) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(p.Feeds) {
		p.Feeds = p.Feeds[:n]
		return
	}
	for len(p.Feeds) < n {
		p.Feeds = append(p.Feeds, DefaultFeedConfig())
	}
}

// FeedPlan is the tagged variant over the two plan shapes.
// The aggregator branches once on Kind; callers never probe optional
// fields.
type FeedPlan struct {
	// Kind selects which shape is populated
	Kind FeedPlanKind `json:"kind"`

	// Simple is populated when Kind == PlanSimple
	Simple SimpleFeedCount `json:"simple,omitempty"`

	// Detailed is populated when Kind == PlanDetailed
	Detailed DetailedFeedPlan `json:"detailed,omitempty"`
}

// SimplePlan builds a simple feed plan
func SimplePlan(inbound, outbound int) FeedPlan {
	return FeedPlan{
		Kind:   PlanSimple,
		Simple: SimpleFeedCount{InboundFeeds: inbound, OutboundFeeds: outbound},
	}
}

// DetailedPlan builds a detailed feed plan
func DetailedPlan(feeds ...FeedConfig) FeedPlan {
	return FeedPlan{
		Kind:     PlanDetailed,
		Detailed: DetailedFeedPlan{Feeds: feeds},
	}
}

// ROMConfig holds every input to the ROM aggregation
type ROMConfig struct {
	// Plan describes the feed scope
	Plan FeedPlan `json:"plan"`

	// DEHourlyRate is the data-engineering hourly rate
	DEHourlyRate decimal.Decimal `json:"de_hourly_rate"`

	// InboundHours is the engineering effort per inbound feed
	InboundHours decimal.Decimal `json:"inbound_hours"`

	// OutboundHours is the engineering effort per outbound feed
	OutboundHours decimal.Decimal `json:"outbound_hours"`

	// NormalizationHours is the normalization effort; scales per ingest
	// in a detailed plan
	NormalizationHours decimal.Decimal `json:"normalization_hours"`

	// WorkspaceSetupCost is the one-time workspace/environment cost
	WorkspaceSetupCost decimal.Decimal `json:"workspace_setup_cost"`

	// ConfluentAnnualCost is the annual Confluent platform cost; flat in
	// a simple plan, per inbound feed in a detailed plan
	ConfluentAnnualCost decimal.Decimal `json:"confluent_annual_cost"`

	// GCPPerFeedAnnualCost is the annual GCP/GKE cost per feed
	GCPPerFeedAnnualCost decimal.Decimal `json:"gcp_per_feed_annual_cost"`

	// EscalationRate is the annual escalation applied to recurring costs
	EscalationRate decimal.Decimal `json:"escalation_rate"`

	// StartYear is the first fiscal year of the projection
	StartYear int `json:"start_year"`

	// RecordsPerDay is informational only; it never enters the cost math
	RecordsPerDay int `json:"records_per_day"`
}

// DefaultROMConfig returns the standard ROM inputs.
// A fresh copy is built per call.
func DefaultROMConfig() ROMConfig {
	return ROMConfig{
		Plan:                 SimplePlan(1, 1),
		DEHourlyRate:         decimal.NewFromInt(80),
		InboundHours:         decimal.NewFromInt(296),
		OutboundHours:        decimal.NewFromInt(254),
		NormalizationHours:   decimal.NewFromFloat(27.9),
		WorkspaceSetupCost:   decimal.NewFromInt(8000),
		ConfluentAnnualCost:  decimal.NewFromInt(11709),
		GCPPerFeedAnnualCost: decimal.NewFromInt(9279),
		EscalationRate:       decimal.NewFromFloat(0.034),
		StartYear:            2025,
		RecordsPerDay:        5000,
	}
}

// YearCost is one fiscal year's cost line in a ROM projection
type YearCost struct {
	// Year is the fiscal year
	Year int `json:"year"`

	// DataEngineering is the engineering spend for the year
	DataEngineering decimal.Decimal `json:"data_engineering"`

	// CloudInfrastructure is the cloud spend for the year
	CloudInfrastructure decimal.Decimal `json:"cloud_infrastructure"`

	// Total is DataEngineering + CloudInfrastructure
	Total decimal.Decimal `json:"total"`
}

// ROMBreakdown itemizes the ROM cost components.
// Every derived figure the report prints lives here so the formatter
// never recomputes anything.
type ROMBreakdown struct {
	// InboundCost is total inbound feeds x inbound hours x rate
	InboundCost decimal.Decimal `json:"inbound_cost"`

	// OutboundCost is total outbound feeds x outbound hours x rate
	OutboundCost decimal.Decimal `json:"outbound_cost"`

	// NormalizationCost is normalization hours x rate x ingest multiplier
	NormalizationCost decimal.Decimal `json:"normalization_cost"`

	// WorkspaceSetup is the one-time workspace cost
	WorkspaceSetup decimal.Decimal `json:"workspace_setup"`

	// PerFeedInboundCost is inbound hours x rate for a single feed
	PerFeedInboundCost decimal.Decimal `json:"per_feed_inbound_cost"`

	// PerFeedOutboundCost is outbound hours x rate for a single feed
	PerFeedOutboundCost decimal.Decimal `json:"per_feed_outbound_cost"`

	// ConfluentCost is the first-year Confluent platform cost
	ConfluentCost decimal.Decimal `json:"confluent_cost"`

	// GCPCost is the first-year GCP/GKE cost
	GCPCost decimal.Decimal `json:"gcp_cost"`

	// NetworkCost is the first-year network cost; zero in a simple plan
	NetworkCost decimal.Decimal `json:"network_cost"`

	// FirstYearCloudCost is Confluent + GCP + network
	FirstYearCloudCost decimal.Decimal `json:"first_year_cloud_cost"`

	// OneTimeDevelopment is the total one-time engineering cost
	OneTimeDevelopment decimal.Decimal `json:"one_time_development"`

	// CloudInfrastructure7Year is the escalated 7-year cloud total
	CloudInfrastructure7Year decimal.Decimal `json:"cloud_infrastructure_7year"`

	// OperatingVariance6Year is the sum of the 6 escalated years
	OperatingVariance6Year decimal.Decimal `json:"operating_variance_6year"`

	// OperatingVarianceAnnualAvg is OperatingVariance6Year / 6
	OperatingVarianceAnnualAvg decimal.Decimal `json:"operating_variance_annual_avg"`

	// TotalProjectCost is OneTimeDevelopment + CloudInfrastructure7Year
	TotalProjectCost decimal.Decimal `json:"total_project_cost"`
}

// ROMResult is the complete ROM aggregation output
type ROMResult struct {
	// TotalInboundFeeds is the inbound feed count across the plan
	TotalInboundFeeds int `json:"total_inbound_feeds"`

	// TotalOutboundFeeds is the outbound feed count across the plan
	TotalOutboundFeeds int `json:"total_outbound_feeds"`

	// TotalFeeds is inbound + outbound
	TotalFeeds int `json:"total_feeds"`

	// TotalPartitions is the partition capacity across the plan
	TotalPartitions decimal.Decimal `json:"total_partitions"`

	// PartitionUtilizationPct is TotalPartitions against the 100-partition
	// network baseline, as a percentage
	PartitionUtilizationPct decimal.Decimal `json:"partition_utilization_pct"`

	// InitialInvestment is the start-year cost line
	InitialInvestment YearCost `json:"initial_investment"`

	// OperatingVariance holds the 6 escalated out-years
	OperatingVariance []YearCost `json:"operating_variance"`

	// Breakdown itemizes every component
	Breakdown ROMBreakdown `json:"breakdown"`
}
