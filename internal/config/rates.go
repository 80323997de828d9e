// Package config - HCL rates file
package config

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"confluent-cost/core/types"
	"confluent-cost/internal/errors"
)

// ratesFile is the HCL schema for a rates override file:
//
//	storage_annual     = 35000
//	network_annual     = 120000
//	governance_annual  = 15000
//	network_multiplier = 1.0
//
//	compute "Azure" {
//	  ckus         = 2
//	  monthly_rate = 2100
//	}
//
//	tier "Medium" {
//	  partitions = 500
//	  storage_gb = 1000
//	}
type ratesFile struct {
	StorageAnnual     *float64       `hcl:"storage_annual,optional"`
	NetworkAnnual     *float64       `hcl:"network_annual,optional"`
	GovernanceAnnual  *float64       `hcl:"governance_annual,optional"`
	NetworkMultiplier *float64       `hcl:"network_multiplier,optional"`
	Compute           []computeBlock `hcl:"compute,block"`
	Tiers             []tierBlock    `hcl:"tier,block"`
}

type computeBlock struct {
	Provider    string  `hcl:"provider,label"`
	CKUs        int     `hcl:"ckus"`
	MonthlyRate float64 `hcl:"monthly_rate"`
}

type tierBlock struct {
	Name       string  `hcl:"name,label"`
	Partitions int     `hcl:"partitions"`
	StorageGB  float64 `hcl:"storage_gb"`
}

// LoadRates reads an HCL rates file and overlays it on the presets.
// Scalars and compute blocks replace the corresponding defaults; tier
// blocks add to or replace entries of the default tier table. A
// malformed file is a hard configuration error.
func LoadRates(path string) (types.RateConfig, types.TierTable, error) {
	var f ratesFile
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return types.RateConfig{}, nil, errors.Config("failed to load rates file", err)
	}

	rates := types.DefaultRateConfig()
	if f.StorageAnnual != nil {
		rates.StorageAnnual = decimal.NewFromFloat(*f.StorageAnnual)
	}
	if f.NetworkAnnual != nil {
		rates.NetworkAnnual = decimal.NewFromFloat(*f.NetworkAnnual)
	}
	if f.GovernanceAnnual != nil {
		rates.GovernanceAnnual = decimal.NewFromFloat(*f.GovernanceAnnual)
	}
	if f.NetworkMultiplier != nil {
		rates.NetworkMultiplier = decimal.NewFromFloat(*f.NetworkMultiplier)
	}
	if len(f.Compute) > 0 {
		rates.ComputeRates = make([]types.CKURate, 0, len(f.Compute))
		for _, c := range f.Compute {
			rates.ComputeRates = append(rates.ComputeRates, types.CKURate{
				Provider:    types.Provider(c.Provider),
				CKUs:        c.CKUs,
				MonthlyRate: decimal.NewFromFloat(c.MonthlyRate),
			})
		}
	}

	tiers := types.DefaultTierTable()
	for _, t := range f.Tiers {
		tiers[t.Name] = types.TierProfile{
			Partitions: t.Partitions,
			StorageGB:  decimal.NewFromFloat(t.StorageGB),
		}
	}

	return rates, tiers, nil
}
