package stats_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
	"github.com/secmon-lab/talos/pkg/service/stats"
)

func TestToolScores(t *testing.T) {
	now := time.Now()

	input := []*model.RiskAssessment{
		assessment("Safe Tool", types.RiskTypeBias, types.SeverityLow, now),
		assessment("Risky Tool", types.RiskTypePrivacy, types.SeverityCritical, now),
		assessment("Risky Tool", types.RiskTypePrivacy, types.SeverityHigh, now),
		assessment("Safe Tool", types.RiskTypeBias, types.SeverityMedium, now),
		assessment("Risky Tool", types.RiskTypeSecurity, types.SeverityCritical, now),
	}

	scores := stats.ToolScores(input)
	gt.Array(t, scores).Length(2)

	// Risky Tool: weights 4+3+4 = 11 over 3 reports
	gt.Value(t, scores[0].Tool).Equal("Risky Tool")
	gt.Number(t, scores[0].ReportCount).Equal(3)
	gt.Number(t, scores[0].CriticalCount).Equal(2)
	gt.Number(t, scores[0].TotalScore).Equal(11)
	gt.Number(t, scores[0].AvgScore).Equal(3.67)

	// Safe Tool: weights 1+2 = 3 over 2 reports
	gt.Value(t, scores[1].Tool).Equal("Safe Tool")
	gt.Number(t, scores[1].AvgScore).Equal(1.5)
}

func TestToolScoresTieOrder(t *testing.T) {
	now := time.Now()

	input := []*model.RiskAssessment{
		assessment("First", types.RiskTypeBias, types.SeverityHigh, now),
		assessment("Second", types.RiskTypeBias, types.SeverityHigh, now),
	}

	scores := stats.ToolScores(input)
	gt.Value(t, scores[0].Tool).Equal("First")
	gt.Value(t, scores[1].Tool).Equal("Second")
}

func TestTrendByRiskType(t *testing.T) {
	// A Monday, so the whole test week sits inside one ISO week
	thisWeek := time.Date(2026, 4, 20, 10, 0, 0, 0, time.UTC)
	lastWeek := thisWeek.AddDate(0, 0, -7)

	t.Run("directions per risk type", func(t *testing.T) {
		var input []*model.RiskAssessment

		// Bias: 2 last week, 4 this week (+100%)
		for i := 0; i < 2; i++ {
			input = append(input, assessment("A", types.RiskTypeBias, types.SeverityLow, lastWeek.Add(time.Duration(i)*time.Hour)))
		}
		for i := 0; i < 4; i++ {
			input = append(input, assessment("A", types.RiskTypeBias, types.SeverityLow, thisWeek.Add(time.Duration(i)*time.Hour)))
		}

		// Privacy: 4 last week, 1 this week (-75%)
		for i := 0; i < 4; i++ {
			input = append(input, assessment("A", types.RiskTypePrivacy, types.SeverityLow, lastWeek.Add(time.Duration(i)*time.Minute)))
		}
		input = append(input, assessment("A", types.RiskTypePrivacy, types.SeverityLow, thisWeek))

		// Security: 3 each week (0%)
		for i := 0; i < 3; i++ {
			input = append(input, assessment("A", types.RiskTypeSecurity, types.SeverityLow, lastWeek.Add(time.Duration(i)*time.Hour)))
			input = append(input, assessment("A", types.RiskTypeSecurity, types.SeverityLow, thisWeek.Add(time.Duration(i)*time.Hour)))
		}

		points := stats.TrendByRiskType(input)
		gt.Array(t, points).Length(3)

		byType := map[types.RiskType]stats.TrendPoint{}
		for _, p := range points {
			byType[p.RiskType] = p
		}

		gt.Value(t, byType[types.RiskTypeBias].Direction).Equal(stats.TrendIncreasing)
		gt.Number(t, byType[types.RiskTypeBias].ChangePct).Equal(100.0)

		gt.Value(t, byType[types.RiskTypePrivacy].Direction).Equal(stats.TrendDecreasing)
		gt.Number(t, byType[types.RiskTypePrivacy].ChangePct).Equal(-75.0)

		gt.Value(t, byType[types.RiskTypeSecurity].Direction).Equal(stats.TrendStable)
		gt.Number(t, byType[types.RiskTypeSecurity].ChangePct).Equal(0.0)
	})

	t.Run("no previous-week base means no point", func(t *testing.T) {
		input := []*model.RiskAssessment{
			assessment("A", types.RiskTypeBias, types.SeverityLow, thisWeek),
			assessment("A", types.RiskTypeBias, types.SeverityLow, thisWeek.Add(time.Hour)),
		}

		gt.Array(t, stats.TrendByRiskType(input)).Length(0)
	})

	t.Run("empty input", func(t *testing.T) {
		gt.Array(t, stats.TrendByRiskType(nil)).Length(0)
	})
}

func TestInsights(t *testing.T) {
	now := time.Now()

	t.Run("no input no insights", func(t *testing.T) {
		gt.Array(t, stats.Insights(nil, nil, nil)).Length(0)
	})

	t.Run("high risk tools lists first three alphabetically", func(t *testing.T) {
		scores := []stats.ToolScore{
			{Tool: "Zeta", AvgScore: 3.5},
			{Tool: "Alpha", AvgScore: 3.2},
			{Tool: "Mid", AvgScore: 3.0},
			{Tool: "Low", AvgScore: 1.0},
			{Tool: "Beta", AvgScore: 4.0},
		}

		// Keep severity distribution quiet so only one rule fires
		input := []*model.RiskAssessment{
			assessment("Alpha", types.RiskTypeBias, types.SeverityLow, now),
		}
		input[0].ReportRequested = true

		insights := stats.Insights(input, scores, nil)
		gt.Array(t, insights).Length(1)
		gt.Value(t, insights[0].Type).Equal("High Risk Tools")
		gt.Value(t, insights[0].Priority).Equal("High")
		gt.B(t, strings.HasSuffix(insights[0].Message, "Alpha, Beta, Mid")).True()
	})

	t.Run("critical alert above ten percent", func(t *testing.T) {
		input := []*model.RiskAssessment{
			assessment("A", types.RiskTypeBias, types.SeverityCritical, now),
			assessment("B", types.RiskTypeBias, types.SeverityLow, now),
		}
		for i := range input {
			input[i].ReportRequested = true
		}

		insights := stats.Insights(input, nil, nil)
		gt.Array(t, insights).Length(1)
		gt.Value(t, insights[0].Type).Equal("Critical Risk Alert")
		gt.Value(t, insights[0].Message).Equal("50.0% of reports are Critical severity")
	})

	t.Run("increasing trend above twenty percent", func(t *testing.T) {
		trends := []stats.TrendPoint{
			{RiskType: types.RiskTypeBias, ChangePct: 50.0, Direction: stats.TrendIncreasing},
			{RiskType: types.RiskTypePrivacy, ChangePct: 10.0, Direction: stats.TrendIncreasing},
			{RiskType: types.RiskTypeSecurity, ChangePct: -40.0, Direction: stats.TrendDecreasing},
		}

		input := []*model.RiskAssessment{
			assessment("A", types.RiskTypeBias, types.SeverityLow, now),
		}
		input[0].ReportRequested = true

		insights := stats.Insights(input, nil, trends)
		gt.Array(t, insights).Length(1)
		gt.Value(t, insights[0].Type).Equal("Increasing Risk Trend")
		gt.Value(t, insights[0].Message).Equal("Bias/Discrimination reports increased by 50.0% this week")
	})

	t.Run("low engagement below thirty percent", func(t *testing.T) {
		input := []*model.RiskAssessment{
			assessment("A", types.RiskTypeBias, types.SeverityLow, now),
			assessment("B", types.RiskTypeBias, types.SeverityLow, now),
			assessment("C", types.RiskTypeBias, types.SeverityLow, now),
			assessment("D", types.RiskTypeBias, types.SeverityLow, now),
		}
		input[0].ReportRequested = true

		insights := stats.Insights(input, nil, nil)
		gt.Array(t, insights).Length(1)
		gt.Value(t, insights[0].Type).Equal("Low Engagement")
		gt.Value(t, insights[0].Message).Equal("Only 25.0% of users request detailed reports")
	})
}

func TestDailyCounts(t *testing.T) {
	day1 := time.Date(2026, 4, 18, 23, 30, 0, 0, time.UTC)
	day2 := time.Date(2026, 4, 19, 0, 15, 0, 0, time.UTC)

	input := []*model.RiskAssessment{
		assessment("A", types.RiskTypeBias, types.SeverityLow, day2),
		assessment("B", types.RiskTypeBias, types.SeverityLow, day1),
		assessment("C", types.RiskTypeBias, types.SeverityLow, day2.Add(time.Hour)),
	}

	days := stats.DailyCounts(input)
	gt.Array(t, days).Length(2)
	gt.Value(t, days[0]).Equal(stats.DailyCount{Date: "2026-04-18", Count: 1})
	gt.Value(t, days[1]).Equal(stats.DailyCount{Date: "2026-04-19", Count: 2})
}
