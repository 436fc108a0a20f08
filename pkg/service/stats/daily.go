package stats

import (
	"sort"

	"github.com/secmon-lab/talos/pkg/domain/model"
)

// DailyCount is the number of reports filed on one UTC calendar day.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DailyCounts buckets assessments per UTC calendar day for the timeline
// chart, ordered by date ascending.
func DailyCounts(assessments []*model.RiskAssessment) []DailyCount {
	counts := make(map[string]int)
	for _, a := range assessments {
		counts[a.CreatedAt.UTC().Format("2006-01-02")]++
	}

	days := make([]DailyCount, 0, len(counts))
	for date, count := range counts {
		days = append(days, DailyCount{Date: date, Count: count})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days
}
