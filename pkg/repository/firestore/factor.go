package firestore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
	"google.golang.org/api/iterator"
)

type factorDocument struct {
	RiskType            string  `firestore:"risk_type"`
	FactorName          string  `firestore:"factor_name"`
	ImpactLevel         string  `firestore:"impact_level"`
	FrequencyPercentage float64 `firestore:"frequency_percentage"`
	Description         string  `firestore:"description"`
}

func toFactorDocument(f *model.RiskFactor) *factorDocument {
	return &factorDocument{
		RiskType:            f.RiskType.String(),
		FactorName:          f.FactorName,
		ImpactLevel:         f.ImpactLevel.String(),
		FrequencyPercentage: f.FrequencyPercentage,
		Description:         f.Description,
	}
}

func (d *factorDocument) toModel() *model.RiskFactor {
	return &model.RiskFactor{
		RiskType:            types.RiskType(d.RiskType),
		FactorName:          d.FactorName,
		ImpactLevel:         types.ImpactLevel(d.ImpactLevel),
		FrequencyPercentage: d.FrequencyPercentage,
		Description:         d.Description,
	}
}

type factorRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newFactorRepository(client *firestore.Client) *factorRepository {
	return &factorRepository{client: client}
}

func (r *factorRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_risk_factors"
	}
	return "risk_factors"
}

func factorDocID(riskType types.RiskType, factorName string) string {
	sum := sha256.Sum256([]byte(riskType.String() + "|" + factorName))
	return hex.EncodeToString(sum[:20])
}

func (r *factorRepository) Put(ctx context.Context, factor *model.RiskFactor) error {
	doc := toFactorDocument(factor)
	docRef := r.client.Collection(r.collection()).Doc(factorDocID(factor.RiskType, factor.FactorName))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put risk factor", goerr.V("factorName", factor.FactorName))
	}
	return nil
}

func (r *factorRepository) List(ctx context.Context, riskType types.RiskType) ([]*model.RiskFactor, error) {
	q := r.client.Collection(r.collection()).Query
	if riskType != "" {
		q = q.Where("risk_type", "==", riskType.String())
	}
	q = q.OrderBy("frequency_percentage", firestore.Desc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var factors []*model.RiskFactor
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate risk factors")
		}

		var factorDoc factorDocument
		if err := doc.DataTo(&factorDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal risk factor")
		}

		factors = append(factors, factorDoc.toModel())
	}

	return factors, nil
}
