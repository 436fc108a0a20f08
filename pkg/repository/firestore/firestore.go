package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/interfaces"
)

type Firestore struct {
	client     *firestore.Client
	assessment *assessmentRepository
	mitigation *mitigationRepository
	factor     *factorRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces every collection, used by tests to keep
// runs isolated within a shared project.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.assessment.collectionPrefix = prefix
		f.mitigation.collectionPrefix = prefix
		f.factor.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:     client,
		assessment: newAssessmentRepository(client),
		mitigation: newMitigationRepository(client),
		factor:     newFactorRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Assessment() interfaces.AssessmentRepository {
	return f.assessment
}

func (f *Firestore) Mitigation() interfaces.MitigationRepository {
	return f.mitigation
}

func (f *Firestore) Factor() interfaces.FactorRepository {
	return f.factor
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
