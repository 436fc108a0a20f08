package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

// MitigationStrategy is a reference recommendation for a risk type and
// severity pair. Strategies are seeded once by the seed command and are
// read-only to the application.
type MitigationStrategy struct {
	RiskType           types.RiskType   `json:"riskType"`
	Severity           types.Severity   `json:"severity"`
	Title              string           `json:"title"`
	Description        string           `json:"description,omitempty"`
	Difficulty         types.Difficulty `json:"implementationDifficulty"`
	EffectivenessScore int              `json:"effectivenessScore"`
}

// Validate checks the reference-data invariants before seeding
func (s *MitigationStrategy) Validate() error {
	if !s.RiskType.IsValid() {
		return goerr.Wrap(ErrInvalidStrategy, "unrecognized riskType", goerr.V("riskType", s.RiskType))
	}
	if !s.Severity.IsValid() {
		return goerr.Wrap(ErrInvalidStrategy, "unrecognized severity", goerr.V("severity", s.Severity))
	}
	if strings.TrimSpace(s.Title) == "" {
		return goerr.Wrap(ErrInvalidStrategy, "title is required")
	}
	if !s.Difficulty.IsValid() {
		return goerr.Wrap(ErrInvalidStrategy, "unrecognized difficulty", goerr.V("difficulty", s.Difficulty))
	}
	if s.EffectivenessScore < 1 || s.EffectivenessScore > 10 {
		return goerr.Wrap(ErrInvalidStrategy, "effectivenessScore must be between 1 and 10",
			goerr.V("score", s.EffectivenessScore))
	}
	return nil
}

// Clone returns a copy of the strategy
func (s *MitigationStrategy) Clone() *MitigationStrategy {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}
