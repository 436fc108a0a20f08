package interfaces

import (
	"context"

	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

// MitigationQuery narrows List results. Zero values mean no filter.
type MitigationQuery struct {
	RiskType types.RiskType
	Severity types.Severity
}

type MitigationRepository interface {
	// Put saves a mitigation strategy (upsert keyed on risk type and title)
	Put(ctx context.Context, strategy *model.MitigationStrategy) error

	// List retrieves strategies matching the query, ordered by
	// EffectivenessScore descending
	List(ctx context.Context, query MitigationQuery) ([]*model.MitigationStrategy, error)
}
