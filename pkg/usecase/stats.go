package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/service/stats"
)

// Dashboard is the aggregate document backing the statistics view
type Dashboard struct {
	Summary    *stats.Summary     `json:"summary"`
	ToolScores []stats.ToolScore  `json:"toolScores"`
	Trends     []stats.TrendPoint `json:"trends"`
	Insights   []stats.Insight    `json:"insights"`
	Daily      []stats.DailyCount `json:"daily"`
}

// Stats computes the dashboard document over all stored reports using the
// evaluation-time wall clock
func (uc *UseCase) Stats(ctx context.Context) (*Dashboard, error) {
	assessments, err := uc.repo.Assessment().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments")
	}

	scores := stats.ToolScores(assessments)
	trends := stats.TrendByRiskType(assessments)

	return &Dashboard{
		Summary:    stats.Summarize(assessments, time.Now().UTC()),
		ToolScores: scores,
		Trends:     trends,
		Insights:   stats.Insights(assessments, scores, trends),
		Daily:      stats.DailyCounts(assessments),
	}, nil
}
