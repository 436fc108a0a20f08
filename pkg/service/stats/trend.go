package stats

import (
	"time"

	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

// TrendDirection classifies a week-over-week change.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// Changes inside this band count as stable.
const trendStableBandPct = 5.0

// TrendPoint is the week-over-week movement of one risk type.
type TrendPoint struct {
	RiskType  types.RiskType `json:"riskType"`
	ChangePct float64        `json:"changePct"`
	Direction TrendDirection `json:"direction"`
}

type isoWeek struct {
	year int
	week int
}

// TrendByRiskType compares the most recent ISO week present in the input
// against the week before it, per risk type. Risk types with no reports in
// the earlier week are skipped since there is no base to compare against.
// Results keep the first-encountered order of risk types in the input and
// change percentages are rounded to one decimal.
func TrendByRiskType(assessments []*model.RiskAssessment) []TrendPoint {
	if len(assessments) == 0 {
		return nil
	}

	type weekCounts map[isoWeek]int
	counts := make(map[types.RiskType]weekCounts)
	order := make([]types.RiskType, 0)

	var latest isoWeek
	var latestAt time.Time

	for _, a := range assessments {
		y, w := a.CreatedAt.ISOWeek()
		wk := isoWeek{year: y, week: w}

		if _, ok := counts[a.RiskType]; !ok {
			counts[a.RiskType] = make(weekCounts)
			order = append(order, a.RiskType)
		}
		counts[a.RiskType][wk]++

		if a.CreatedAt.After(latestAt) {
			latestAt = a.CreatedAt
			latest = wk
		}
	}

	// The calendar week right before the latest one, crossing year
	// boundaries via date arithmetic instead of week-number subtraction
	py, pw := latestAt.AddDate(0, 0, -7).ISOWeek()
	previous := isoWeek{year: py, week: pw}

	points := make([]TrendPoint, 0, len(order))
	for _, rt := range order {
		prevCount := counts[rt][previous]
		if prevCount == 0 {
			continue
		}
		recentCount := counts[rt][latest]

		changePct := round1(100 * float64(recentCount-prevCount) / float64(prevCount))

		direction := TrendStable
		switch {
		case changePct > trendStableBandPct:
			direction = TrendIncreasing
		case changePct < -trendStableBandPct:
			direction = TrendDecreasing
		}

		points = append(points, TrendPoint{
			RiskType:  rt,
			ChangePct: changePct,
			Direction: direction,
		})
	}

	return points
}
