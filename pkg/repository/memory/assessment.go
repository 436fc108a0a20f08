package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

type assessmentRepository struct {
	mu          sync.RWMutex
	assessments map[types.AssessmentID]*model.RiskAssessment
}

func newAssessmentRepository() *assessmentRepository {
	return &assessmentRepository{
		assessments: make(map[types.AssessmentID]*model.RiskAssessment),
	}
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := assessment.Clone()
	if stored.ID == "" {
		stored.ID = types.NewAssessmentID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	if _, exists := r.assessments[stored.ID]; exists {
		return nil, goerr.New("assessment already exists", goerr.V("id", stored.ID))
	}

	r.assessments[stored.ID] = stored

	// Return a copy to prevent external modification
	return stored.Clone(), nil
}

func (r *assessmentRepository) Get(ctx context.Context, id types.AssessmentID) (*model.RiskAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessment, exists := r.assessments[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
	}

	return assessment.Clone(), nil
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.RiskAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessments := make([]*model.RiskAssessment, 0, len(r.assessments))
	for _, assessment := range r.assessments {
		assessments = append(assessments, assessment.Clone())
	}

	// Newest first, ID as a deterministic tie-break for identical stamps
	sort.Slice(assessments, func(i, j int) bool {
		if assessments[i].CreatedAt.Equal(assessments[j].CreatedAt) {
			return assessments[i].ID < assessments[j].ID
		}
		return assessments[i].CreatedAt.After(assessments[j].CreatedAt)
	})

	return assessments, nil
}
