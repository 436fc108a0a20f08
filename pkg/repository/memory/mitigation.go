package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/secmon-lab/talos/pkg/domain/interfaces"
	"github.com/secmon-lab/talos/pkg/domain/model"
)

type mitigationRepository struct {
	mu         sync.RWMutex
	strategies map[string]*model.MitigationStrategy
}

func newMitigationRepository() *mitigationRepository {
	return &mitigationRepository{
		strategies: make(map[string]*model.MitigationStrategy),
	}
}

func (r *mitigationRepository) key(s *model.MitigationStrategy) string {
	return s.RiskType.String() + "|" + s.Title
}

func (r *mitigationRepository) Put(ctx context.Context, strategy *model.MitigationStrategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.strategies[r.key(strategy)] = strategy.Clone()
	return nil
}

func (r *mitigationRepository) List(ctx context.Context, query interfaces.MitigationQuery) ([]*model.MitigationStrategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategies := make([]*model.MitigationStrategy, 0, len(r.strategies))
	for _, strategy := range r.strategies {
		if query.RiskType != "" && strategy.RiskType != query.RiskType {
			continue
		}
		if query.Severity != "" && strategy.Severity != query.Severity {
			continue
		}
		strategies = append(strategies, strategy.Clone())
	}

	// Most effective first, title as a deterministic tie-break
	sort.Slice(strategies, func(i, j int) bool {
		if strategies[i].EffectivenessScore == strategies[j].EffectivenessScore {
			return strategies[i].Title < strategies[j].Title
		}
		return strategies[i].EffectivenessScore > strategies[j].EffectivenessScore
	})

	return strategies, nil
}
