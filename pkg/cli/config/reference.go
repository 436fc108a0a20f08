package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

// ReferenceData represents the seedable reference dataset: mitigation
// strategies and risk factors, keyed by risk type labels
type ReferenceData struct {
	Strategies []StrategyEntry `toml:"strategy"`
	Factors    []FactorEntry   `toml:"factor"`
}

// StrategyEntry represents a mitigation strategy in TOML form
type StrategyEntry struct {
	RiskType           string `toml:"risk_type"`
	Severity           string `toml:"severity"`
	Title              string `toml:"title"`
	Description        string `toml:"description"`
	Difficulty         string `toml:"difficulty"`
	EffectivenessScore int    `toml:"effectiveness_score"`
}

// ToModel converts the entry to the domain model
func (s *StrategyEntry) ToModel() *model.MitigationStrategy {
	return &model.MitigationStrategy{
		RiskType:           types.RiskType(s.RiskType),
		Severity:           types.Severity(s.Severity),
		Title:              s.Title,
		Description:        s.Description,
		Difficulty:         types.Difficulty(s.Difficulty),
		EffectivenessScore: s.EffectivenessScore,
	}
}

// FactorEntry represents a risk factor in TOML form
type FactorEntry struct {
	RiskType            string  `toml:"risk_type"`
	FactorName          string  `toml:"factor_name"`
	ImpactLevel         string  `toml:"impact_level"`
	FrequencyPercentage float64 `toml:"frequency_percentage"`
	Description         string  `toml:"description"`
}

// ToModel converts the entry to the domain model
func (f *FactorEntry) ToModel() *model.RiskFactor {
	return &model.RiskFactor{
		RiskType:            types.RiskType(f.RiskType),
		FactorName:          f.FactorName,
		ImpactLevel:         types.ImpactLevel(f.ImpactLevel),
		FrequencyPercentage: f.FrequencyPercentage,
		Description:         f.Description,
	}
}

// Validate checks every entry against the domain invariants and rejects
// duplicate natural keys so re-seeding stays deterministic
func (r *ReferenceData) Validate() error {
	type strategyKey struct{ riskType, title string }
	strategyKeys := make(map[strategyKey]bool)
	for i, entry := range r.Strategies {
		if err := entry.ToModel().Validate(); err != nil {
			return goerr.Wrap(err, "invalid mitigation strategy", goerr.V(StrategyIndexKey, i))
		}
		key := strategyKey{riskType: entry.RiskType, title: entry.Title}
		if strategyKeys[key] {
			return goerr.Wrap(ErrDuplicateStrategy, "strategy appears twice",
				goerr.V(StrategyTitleKey, entry.Title), goerr.V(StrategyIndexKey, i))
		}
		strategyKeys[key] = true
	}

	type factorKey struct{ riskType, name string }
	factorKeys := make(map[factorKey]bool)
	for i, entry := range r.Factors {
		if err := entry.ToModel().Validate(); err != nil {
			return goerr.Wrap(err, "invalid risk factor", goerr.V(FactorIndexKey, i))
		}
		key := factorKey{riskType: entry.RiskType, name: entry.FactorName}
		if factorKeys[key] {
			return goerr.Wrap(ErrDuplicateFactor, "factor appears twice",
				goerr.V(FactorNameKey, entry.FactorName), goerr.V(FactorIndexKey, i))
		}
		factorKeys[key] = true
	}

	return nil
}

// StrategyModels returns all strategies converted to the domain model
func (r *ReferenceData) StrategyModels() []*model.MitigationStrategy {
	strategies := make([]*model.MitigationStrategy, len(r.Strategies))
	for i, entry := range r.Strategies {
		strategies[i] = entry.ToModel()
	}
	return strategies
}

// FactorModels returns all factors converted to the domain model
func (r *ReferenceData) FactorModels() []*model.RiskFactor {
	factors := make([]*model.RiskFactor, len(r.Factors))
	for i, entry := range r.Factors {
		factors[i] = entry.ToModel()
	}
	return factors
}

// ParseReferenceData parses and validates reference data from TOML bytes
func ParseReferenceData(data []byte) (*ReferenceData, error) {
	var ref ReferenceData
	if err := toml.Unmarshal(data, &ref); err != nil {
		return nil, goerr.Wrap(err, "failed to parse reference data TOML")
	}

	if err := ref.Validate(); err != nil {
		return nil, goerr.Wrap(err, "reference data validation failed")
	}

	return &ref, nil
}

// LoadReferenceData loads and validates reference data from a TOML file
func LoadReferenceData(path string) (*ReferenceData, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrReferenceNotFound, "no such file", goerr.V(ReferencePathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read reference data file", goerr.V(ReferencePathKey, path))
	}

	ref, err := ParseReferenceData(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid reference data file", goerr.V(ReferencePathKey, path))
	}

	return ref, nil
}
