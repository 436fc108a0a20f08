package firestore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/interfaces"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
	"google.golang.org/api/iterator"
)

type mitigationDocument struct {
	RiskType           string `firestore:"risk_type"`
	Severity           string `firestore:"severity"`
	Title              string `firestore:"title"`
	Description        string `firestore:"description"`
	Difficulty         string `firestore:"difficulty"`
	EffectivenessScore int    `firestore:"effectiveness_score"`
}

func toMitigationDocument(s *model.MitigationStrategy) *mitigationDocument {
	return &mitigationDocument{
		RiskType:           s.RiskType.String(),
		Severity:           s.Severity.String(),
		Title:              s.Title,
		Description:        s.Description,
		Difficulty:         s.Difficulty.String(),
		EffectivenessScore: s.EffectivenessScore,
	}
}

func (d *mitigationDocument) toModel() *model.MitigationStrategy {
	return &model.MitigationStrategy{
		RiskType:           types.RiskType(d.RiskType),
		Severity:           types.Severity(d.Severity),
		Title:              d.Title,
		Description:        d.Description,
		Difficulty:         types.Difficulty(d.Difficulty),
		EffectivenessScore: d.EffectivenessScore,
	}
}

type mitigationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMitigationRepository(client *firestore.Client) *mitigationRepository {
	return &mitigationRepository{client: client}
}

func (r *mitigationRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_mitigation_strategies"
	}
	return "mitigation_strategies"
}

// strategyDocID derives a stable document ID from the natural key so that
// re-seeding overwrites instead of duplicating. Raw keys cannot be used
// directly because risk type labels contain slashes.
func strategyDocID(riskType types.RiskType, title string) string {
	sum := sha256.Sum256([]byte(riskType.String() + "|" + title))
	return hex.EncodeToString(sum[:20])
}

func (r *mitigationRepository) Put(ctx context.Context, strategy *model.MitigationStrategy) error {
	doc := toMitigationDocument(strategy)
	docRef := r.client.Collection(r.collection()).Doc(strategyDocID(strategy.RiskType, strategy.Title))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put mitigation strategy", goerr.V("title", strategy.Title))
	}
	return nil
}

func (r *mitigationRepository) List(ctx context.Context, query interfaces.MitigationQuery) ([]*model.MitigationStrategy, error) {
	q := r.client.Collection(r.collection()).Query
	if query.RiskType != "" {
		q = q.Where("risk_type", "==", query.RiskType.String())
	}
	if query.Severity != "" {
		q = q.Where("severity", "==", query.Severity.String())
	}
	q = q.OrderBy("effectiveness_score", firestore.Desc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var strategies []*model.MitigationStrategy
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate mitigation strategies")
		}

		var strategyDoc mitigationDocument
		if err := doc.DataTo(&strategyDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal mitigation strategy")
		}

		strategies = append(strategies, strategyDoc.toModel())
	}

	return strategies, nil
}
