package interfaces

import (
	"context"

	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

type AssessmentRepository interface {
	// Create persists a new assessment, assigning ID and CreatedAt when
	// unset, and returns the stored record.
	Create(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error)

	// Get retrieves an assessment by ID
	Get(ctx context.Context, id types.AssessmentID) (*model.RiskAssessment, error)

	// List retrieves all assessments ordered by CreatedAt descending
	List(ctx context.Context) ([]*model.RiskAssessment, error)
}
