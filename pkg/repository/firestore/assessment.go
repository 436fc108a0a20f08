package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type assessmentDocument struct {
	ID              string    `firestore:"id"`
	AITool          string    `firestore:"ai_tool"`
	RiskType        string    `firestore:"risk_type"`
	Severity        string    `firestore:"severity"`
	Description     string    `firestore:"description"`
	ContactEmail    string    `firestore:"contact_email"`
	ReportRequested bool      `firestore:"report_requested"`
	CreatedAt       time.Time `firestore:"created_at"`
}

func toAssessmentDocument(a *model.RiskAssessment) *assessmentDocument {
	return &assessmentDocument{
		ID:              a.ID.String(),
		AITool:          a.AITool,
		RiskType:        a.RiskType.String(),
		Severity:        a.Severity.String(),
		Description:     a.Description,
		ContactEmail:    a.ContactEmail,
		ReportRequested: a.ReportRequested,
		CreatedAt:       a.CreatedAt,
	}
}

func (d *assessmentDocument) toModel() *model.RiskAssessment {
	return &model.RiskAssessment{
		ID:              types.AssessmentID(d.ID),
		AITool:          d.AITool,
		RiskType:        types.RiskType(d.RiskType),
		Severity:        types.Severity(d.Severity),
		Description:     d.Description,
		ContactEmail:    d.ContactEmail,
		ReportRequested: d.ReportRequested,
		CreatedAt:       d.CreatedAt,
	}
}

type assessmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAssessmentRepository(client *firestore.Client) *assessmentRepository {
	return &assessmentRepository{client: client}
}

func (r *assessmentRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_assessments"
	}
	return "assessments"
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error) {
	stored := assessment.Clone()
	if stored.ID == "" {
		stored.ID = types.NewAssessmentID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	doc := toAssessmentDocument(stored)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Create(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create assessment", goerr.V("id", doc.ID))
	}

	return stored, nil
}

func (r *assessmentRepository) Get(ctx context.Context, id types.AssessmentID) (*model.RiskAssessment, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("id", id))
	}

	var assessmentDoc assessmentDocument
	if err := doc.DataTo(&assessmentDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal assessment", goerr.V("id", id))
	}

	return assessmentDoc.toModel(), nil
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.RiskAssessment, error) {
	iter := r.client.Collection(r.collection()).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var assessments []*model.RiskAssessment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate assessments")
		}

		var assessmentDoc assessmentDocument
		if err := doc.DataTo(&assessmentDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal assessment")
		}

		assessments = append(assessments, assessmentDoc.toModel())
	}

	return assessments, nil
}
