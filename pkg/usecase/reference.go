package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/interfaces"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

// ListMitigations returns reference strategies, most effective first. Zero
// filter values return the full set.
func (uc *UseCase) ListMitigations(ctx context.Context, riskType types.RiskType, severity types.Severity) ([]*model.MitigationStrategy, error) {
	if riskType != "" && !riskType.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "unrecognized riskType filter", goerr.V("riskType", riskType))
	}
	if severity != "" && !severity.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "unrecognized severity filter", goerr.V("severity", severity))
	}

	strategies, err := uc.repo.Mitigation().List(ctx, interfaces.MitigationQuery{
		RiskType: riskType,
		Severity: severity,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list mitigation strategies")
	}

	return strategies, nil
}

// ListFactors returns reference risk factors, most frequent first. An empty
// riskType returns the full set.
func (uc *UseCase) ListFactors(ctx context.Context, riskType types.RiskType) ([]*model.RiskFactor, error) {
	if riskType != "" && !riskType.IsValid() {
		return nil, goerr.Wrap(ErrInvalidArgument, "unrecognized riskType filter", goerr.V("riskType", riskType))
	}

	factors, err := uc.repo.Factor().List(ctx, riskType)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risk factors")
	}

	return factors, nil
}
