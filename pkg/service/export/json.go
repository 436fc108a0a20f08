package export

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/model"
)

type jsonPayload struct {
	Metadata    Metadata                    `json:"metadata"`
	Assessments []*model.RiskAssessment     `json:"assessments,omitempty"`
	Strategies  []*model.MitigationStrategy `json:"strategies,omitempty"`
	Factors     []*model.RiskFactor         `json:"factors,omitempty"`
}

// buildJSON renders the snapshot as a pretty-printed document with the
// metadata block first, then the raw records.
func buildJSON(snapshot *model.Snapshot, meta Metadata) ([]byte, error) {
	payload := jsonPayload{
		Metadata:    meta,
		Assessments: snapshot.Assessments,
		Strategies:  snapshot.Strategies,
		Factors:     snapshot.Factors,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal export payload")
	}

	return append(data, '\n'), nil
}
