package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

type factorRepository struct {
	mu      sync.RWMutex
	factors map[string]*model.RiskFactor
}

func newFactorRepository() *factorRepository {
	return &factorRepository{
		factors: make(map[string]*model.RiskFactor),
	}
}

func (r *factorRepository) key(f *model.RiskFactor) string {
	return f.RiskType.String() + "|" + f.FactorName
}

func (r *factorRepository) Put(ctx context.Context, factor *model.RiskFactor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factors[r.key(factor)] = factor.Clone()
	return nil
}

func (r *factorRepository) List(ctx context.Context, riskType types.RiskType) ([]*model.RiskFactor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factors := make([]*model.RiskFactor, 0, len(r.factors))
	for _, factor := range r.factors {
		if riskType != "" && factor.RiskType != riskType {
			continue
		}
		factors = append(factors, factor.Clone())
	}

	// Most frequent first, name as a deterministic tie-break
	sort.Slice(factors, func(i, j int) bool {
		if factors[i].FrequencyPercentage == factors[j].FrequencyPercentage {
			return factors[i].FactorName < factors[j].FactorName
		}
		return factors[i].FrequencyPercentage > factors[j].FrequencyPercentage
	})

	return factors, nil
}
