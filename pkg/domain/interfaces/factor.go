package interfaces

import (
	"context"

	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

type FactorRepository interface {
	// Put saves a risk factor (upsert keyed on risk type and factor name)
	Put(ctx context.Context, factor *model.RiskFactor) error

	// List retrieves factors, optionally filtered by risk type, ordered by
	// FrequencyPercentage descending. Pass an empty risk type for all.
	List(ctx context.Context, riskType types.RiskType) ([]*model.RiskFactor, error)
}
