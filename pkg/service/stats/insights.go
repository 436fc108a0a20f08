package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/secmon-lab/talos/pkg/domain/model"
)

// Insight is one actionable finding derived from the aggregate data.
type Insight struct {
	Type           string `json:"type"`
	Message        string `json:"message"`
	Priority       string `json:"priority"`
	Recommendation string `json:"recommendation"`
}

const (
	highRiskAvgThreshold    = 3.0
	criticalAlertPctMin     = 10.0
	increasingTrendPctMin   = 20.0
	lowEngagementRatePctMax = 30.0
)

// Insights evaluates the finding rules over the aggregate inputs. Rules
// that do not fire produce nothing; an empty input yields no insights.
func Insights(assessments []*model.RiskAssessment, scores []ToolScore, trends []TrendPoint) []Insight {
	var insights []Insight

	// Tools averaging High or worse, listed alphabetically, first three
	var highRisk []string
	for _, s := range scores {
		if s.AvgScore >= highRiskAvgThreshold {
			highRisk = append(highRisk, s.Tool)
		}
	}
	if len(highRisk) > 0 {
		sort.Strings(highRisk)
		if len(highRisk) > 3 {
			highRisk = highRisk[:3]
		}
		insights = append(insights, Insight{
			Type:           "High Risk Tools",
			Message:        fmt.Sprintf("Tools with highest average risk: %s", strings.Join(highRisk, ", ")),
			Priority:       "High",
			Recommendation: "Implement additional monitoring and safety measures for these tools",
		})
	}

	if pct := CriticalPercentage(assessments); pct > criticalAlertPctMin {
		insights = append(insights, Insight{
			Type:           "Critical Risk Alert",
			Message:        fmt.Sprintf("%.1f%% of reports are Critical severity", pct),
			Priority:       "Critical",
			Recommendation: "Immediate attention required for critical risk mitigation",
		})
	}

	for _, trend := range trends {
		if trend.Direction != TrendIncreasing || trend.ChangePct <= increasingTrendPctMin {
			continue
		}
		insights = append(insights, Insight{
			Type:           "Increasing Risk Trend",
			Message:        fmt.Sprintf("%s reports increased by %.1f%% this week", trend.RiskType, trend.ChangePct),
			Priority:       "Medium",
			Recommendation: fmt.Sprintf("Investigate root causes of increasing %s incidents", trend.RiskType),
		})
	}

	if len(assessments) > 0 {
		var requested int
		for _, a := range assessments {
			if a.ReportRequested {
				requested++
			}
		}
		rate := 100 * float64(requested) / float64(len(assessments))
		if rate < lowEngagementRatePctMax {
			insights = append(insights, Insight{
				Type:           "Low Engagement",
				Message:        fmt.Sprintf("Only %.1f%% of users request detailed reports", rate),
				Priority:       "Low",
				Recommendation: "Consider improving report value proposition to increase engagement",
			})
		}
	}

	return insights
}
