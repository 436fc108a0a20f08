package stats

import (
	"math"
	"sort"
	"time"

	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

// weeklyWindow is the trailing period covered by WeeklyCount.
const weeklyWindow = 7 * 24 * time.Hour

// CountBySeverity groups assessments by severity. Only severities that
// actually occur appear as keys; records carrying an unrecognized value
// land in that value's own bucket rather than failing.
func CountBySeverity(assessments []*model.RiskAssessment) map[types.Severity]int {
	counts := make(map[types.Severity]int)
	for _, a := range assessments {
		counts[a.Severity]++
	}
	return counts
}

// CountByTool groups assessments by tool label.
func CountByTool(assessments []*model.RiskAssessment) map[string]int {
	counts := make(map[string]int)
	for _, a := range assessments {
		counts[a.AITool]++
	}
	return counts
}

// CountByRiskType groups assessments by risk type.
func CountByRiskType(assessments []*model.RiskAssessment) map[types.RiskType]int {
	counts := make(map[types.RiskType]int)
	for _, a := range assessments {
		counts[a.RiskType]++
	}
	return counts
}

// Entry is one labeled count in a ranked listing.
type Entry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TopTools returns up to n tools by descending report count. Ties keep the
// order in which the tools first appear in the input; anything beyond n is
// dropped, there is no overflow bucket.
func TopTools(assessments []*model.RiskAssessment, n int) []Entry {
	return topEntries(assessments, n, func(a *model.RiskAssessment) string {
		return a.AITool
	})
}

// TopRiskTypes returns up to n risk types by descending report count, with
// the same tie and truncation rules as TopTools.
func TopRiskTypes(assessments []*model.RiskAssessment, n int) []Entry {
	return topEntries(assessments, n, func(a *model.RiskAssessment) string {
		return a.RiskType.String()
	})
}

func topEntries(assessments []*model.RiskAssessment, n int, label func(*model.RiskAssessment) string) []Entry {
	counts := make(map[string]int, len(assessments))
	order := make([]string, 0, len(assessments))

	for _, a := range assessments {
		l := label(a)
		if _, ok := counts[l]; !ok {
			order = append(order, l)
		}
		counts[l]++
	}

	entries := make([]Entry, 0, len(order))
	for _, l := range order {
		entries = append(entries, Entry{Label: l, Count: counts[l]})
	}

	// Stable: equal counts keep first-encountered order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// WeeklyCount counts assessments created within the trailing 7-day window
// ending at now. The lower bound is inclusive; records stamped after now
// are excluded.
func WeeklyCount(assessments []*model.RiskAssessment, now time.Time) int {
	lower := now.Add(-weeklyWindow)

	var count int
	for _, a := range assessments {
		if a.CreatedAt.Before(lower) || a.CreatedAt.After(now) {
			continue
		}
		count++
	}
	return count
}

// CriticalPercentage is the share of Critical reports in percent, rounded
// to one decimal. An empty input yields 0 rather than dividing by zero.
func CriticalPercentage(assessments []*model.RiskAssessment) float64 {
	if len(assessments) == 0 {
		return 0
	}

	var critical int
	for _, a := range assessments {
		if a.Severity == types.SeverityCritical {
			critical++
		}
	}

	return round1(100 * float64(critical) / float64(len(assessments)))
}

// Summary is the aggregate document behind the dashboard cards.
type Summary struct {
	Total              int                    `json:"total"`
	WeeklyCount        int                    `json:"weeklyCount"`
	CriticalCount      int                    `json:"criticalCount"`
	CriticalPercentage float64                `json:"criticalPercentage"`
	TopTool            string                 `json:"topTool,omitempty"`
	TopRiskType        string                 `json:"topRiskType,omitempty"`
	CountBySeverity    map[types.Severity]int `json:"countBySeverity"`
	CountByTool        map[string]int         `json:"countByTool"`
	CountByRiskType    map[types.RiskType]int `json:"countByRiskType"`
}

// Summarize computes the full dashboard summary at the given evaluation
// time. Pure: the input slice is never modified.
func Summarize(assessments []*model.RiskAssessment, now time.Time) *Summary {
	s := &Summary{
		Total:              len(assessments),
		WeeklyCount:        WeeklyCount(assessments, now),
		CriticalPercentage: CriticalPercentage(assessments),
		CountBySeverity:    CountBySeverity(assessments),
		CountByTool:        CountByTool(assessments),
		CountByRiskType:    CountByRiskType(assessments),
	}
	s.CriticalCount = s.CountBySeverity[types.SeverityCritical]

	if top := TopTools(assessments, 1); len(top) > 0 {
		s.TopTool = top[0].Label
	}
	if top := TopRiskTypes(assessments, 1); len(top) > 0 {
		s.TopRiskType = top[0].Label
	}

	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
