package memory

import (
	"github.com/secmon-lab/talos/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is the in-process backing store used in development mode. It
// carries the same record shapes as the hosted store but is not
// authoritative: contents vanish with the process.
type Memory struct {
	assessment *assessmentRepository
	mitigation *mitigationRepository
	factor     *factorRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		assessment: newAssessmentRepository(),
		mitigation: newMitigationRepository(),
		factor:     newFactorRepository(),
	}
}

func (m *Memory) Assessment() interfaces.AssessmentRepository {
	return m.assessment
}

func (m *Memory) Mitigation() interfaces.MitigationRepository {
	return m.mitigation
}

func (m *Memory) Factor() interfaces.FactorRepository {
	return m.factor
}

func (m *Memory) Close() error {
	return nil
}
