package stats

import (
	"sort"

	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

// ToolScore aggregates the severity-weighted risk profile of one tool.
type ToolScore struct {
	Tool          string  `json:"tool"`
	ReportCount   int     `json:"reportCount"`
	CriticalCount int     `json:"criticalCount"`
	TotalScore    int     `json:"totalScore"`
	AvgScore      float64 `json:"avgScore"`
}

// ToolScores computes per-tool severity-weighted scores, ordered by
// average score descending. Ties keep first-encountered input order.
// Averages are rounded to two decimals.
func ToolScores(assessments []*model.RiskAssessment) []ToolScore {
	index := make(map[string]int, len(assessments))
	scores := make([]ToolScore, 0, len(assessments))

	for _, a := range assessments {
		i, ok := index[a.AITool]
		if !ok {
			i = len(scores)
			index[a.AITool] = i
			scores = append(scores, ToolScore{Tool: a.AITool})
		}

		scores[i].ReportCount++
		scores[i].TotalScore += a.Severity.Weight()
		if a.Severity == types.SeverityCritical {
			scores[i].CriticalCount++
		}
	}

	for i := range scores {
		scores[i].AvgScore = round2(float64(scores[i].TotalScore) / float64(scores[i].ReportCount))
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].AvgScore > scores[j].AvgScore
	})

	return scores
}
