package interfaces

import (
	"context"

	"github.com/secmon-lab/talos/pkg/domain/model"
)

// Notifier delivers a heads-up about a newly submitted assessment to an
// external channel. Implementations must not block the submit path on
// delivery failure.
type Notifier interface {
	NotifyAssessment(ctx context.Context, assessment *model.RiskAssessment) error
}
