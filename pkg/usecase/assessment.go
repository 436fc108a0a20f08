package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
	"github.com/secmon-lab/talos/pkg/service/normalize"
	"github.com/secmon-lab/talos/pkg/utils/async"
)

// SubmitAssessmentInput carries the user-supplied fields of a new report
type SubmitAssessmentInput struct {
	AITool          string         `json:"aiTool"`
	RiskType        types.RiskType `json:"riskType"`
	Severity        types.Severity `json:"severity"`
	Description     string         `json:"description"`
	ContactEmail    string         `json:"contactEmail"`
	ReportRequested bool           `json:"reportRequested"`
}

// SubmitAssessment validates and stores a new report. The tool label is
// canonicalized when it matches the product catalog. Nothing is written
// when validation fails.
func (uc *UseCase) SubmitAssessment(ctx context.Context, input *SubmitAssessmentInput) (*model.RiskAssessment, error) {
	assessment := &model.RiskAssessment{
		AITool:          normalize.CanonicalTool(input.AITool),
		RiskType:        input.RiskType,
		Severity:        input.Severity,
		Description:     strings.TrimSpace(input.Description),
		ContactEmail:    strings.TrimSpace(input.ContactEmail),
		ReportRequested: input.ReportRequested,
	}
	if err := assessment.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Assessment().Create(ctx, assessment)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create assessment")
	}

	uc.notify(ctx, created)

	return created, nil
}

// notify dispatches a notification for critical or report-requested
// submissions. Delivery failure is logged and never fails the submission.
func (uc *UseCase) notify(ctx context.Context, assessment *model.RiskAssessment) {
	if uc.notifier == nil {
		return
	}
	if assessment.Severity != types.SeverityCritical && !assessment.ReportRequested {
		return
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		return uc.notifier.NotifyAssessment(ctx, assessment)
	})
}

// ListAssessments returns all stored reports, newest first
func (uc *UseCase) ListAssessments(ctx context.Context) ([]*model.RiskAssessment, error) {
	assessments, err := uc.repo.Assessment().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments")
	}

	return assessments, nil
}

// GetAssessment retrieves a single report by ID
func (uc *UseCase) GetAssessment(ctx context.Context, id types.AssessmentID) (*model.RiskAssessment, error) {
	assessment, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrAssessmentNotFound, "assessment not found", goerr.V(AssessmentIDKey, id))
	}

	return assessment, nil
}
