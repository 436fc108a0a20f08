package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

// RiskFactor is a reference contributing cause of a risk type with an
// observed frequency. Factors are seeded once and read-only afterwards.
type RiskFactor struct {
	RiskType            types.RiskType    `json:"riskType"`
	FactorName          string            `json:"factorName"`
	ImpactLevel         types.ImpactLevel `json:"impactLevel"`
	FrequencyPercentage float64           `json:"frequencyPercentage"`
	Description         string            `json:"description,omitempty"`
}

// Validate checks the reference-data invariants before seeding
func (f *RiskFactor) Validate() error {
	if !f.RiskType.IsValid() {
		return goerr.Wrap(ErrInvalidFactor, "unrecognized riskType", goerr.V("riskType", f.RiskType))
	}
	if strings.TrimSpace(f.FactorName) == "" {
		return goerr.Wrap(ErrInvalidFactor, "factorName is required")
	}
	if !f.ImpactLevel.IsValid() {
		return goerr.Wrap(ErrInvalidFactor, "unrecognized impactLevel", goerr.V("impactLevel", f.ImpactLevel))
	}
	if f.FrequencyPercentage < 0 || f.FrequencyPercentage > 100 {
		return goerr.Wrap(ErrInvalidFactor, "frequencyPercentage must be between 0 and 100",
			goerr.V("frequency", f.FrequencyPercentage))
	}
	return nil
}

// Clone returns a copy of the factor
func (f *RiskFactor) Clone() *RiskFactor {
	if f == nil {
		return nil
	}
	clone := *f
	return &clone
}
