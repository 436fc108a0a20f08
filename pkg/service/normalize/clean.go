package normalize

import (
	"sort"
	"time"

	"github.com/secmon-lab/talos/pkg/domain/model"
)

// Report summarizes what a cleaning pass changed.
type Report struct {
	RowsIn               int            `json:"rowsIn"`
	RowsOut              int            `json:"rowsOut"`
	RowsRemoved          int            `json:"rowsRemoved"`
	RemovalPercentage    float64        `json:"removalPercentage"`
	ValidEmails          int            `json:"validEmails"`
	EmailRate            float64        `json:"emailRate"`
	SeverityDistribution map[string]int `json:"severityDistribution"`
	MissingDescriptions  int            `json:"missingDescriptions"`
}

// dedupeWindow is how close two reports about the same tool and risk type
// must be to count as duplicates.
const dedupeWindow = time.Hour

// CleanAssessments canonicalizes labels, validates contact addresses, and
// drops near-duplicate reports (same tool and risk type within an hour,
// earliest kept). The input records are not modified; cleaned copies are
// returned sorted by CreatedAt ascending.
func CleanAssessments(assessments []*model.RiskAssessment) ([]*model.RiskAssessment, *Report) {
	report := &Report{
		RowsIn:               len(assessments),
		SeverityDistribution: map[string]int{},
	}

	cleaned := make([]*model.RiskAssessment, 0, len(assessments))
	for _, a := range assessments {
		c := a.Clone()
		c.AITool = Tool(c.AITool)
		if rt, ok := RiskType(c.RiskType.String()); ok {
			c.RiskType = rt
		}
		c.Severity = Severity(c.Severity.String())
		c.ContactEmail = Email(c.ContactEmail)
		c.Description = Text(c.Description)
		cleaned = append(cleaned, c)
	}

	sort.SliceStable(cleaned, func(i, j int) bool {
		return cleaned[i].CreatedAt.Before(cleaned[j].CreatedAt)
	})

	kept := dedupe(cleaned)

	for _, a := range kept {
		report.SeverityDistribution[a.Severity.String()]++
		if a.ContactEmail != "" {
			report.ValidEmails++
		}
		if a.Description == "" {
			report.MissingDescriptions++
		}
	}

	report.RowsOut = len(kept)
	report.RowsRemoved = report.RowsIn - report.RowsOut
	if report.RowsIn > 0 {
		report.RemovalPercentage = float64(report.RowsRemoved) / float64(report.RowsIn) * 100
	}
	if report.RowsOut > 0 {
		report.EmailRate = float64(report.ValidEmails) / float64(report.RowsOut) * 100
	}

	return kept, report
}

// dedupe expects records sorted by CreatedAt ascending and keeps the first
// record of each (tool, risk type) burst. A burst extends as long as each
// report falls within the window of the one before it, so a long chain of
// near-duplicates collapses to its first report.
func dedupe(sorted []*model.RiskAssessment) []*model.RiskAssessment {
	type key struct {
		tool     string
		riskType string
	}

	lastSeen := map[key]time.Time{}
	kept := make([]*model.RiskAssessment, 0, len(sorted))

	for _, a := range sorted {
		k := key{tool: a.AITool, riskType: a.RiskType.String()}
		prev, seen := lastSeen[k]
		lastSeen[k] = a.CreatedAt
		if seen && a.CreatedAt.Sub(prev) < dedupeWindow {
			continue
		}
		kept = append(kept, a)
	}

	return kept
}
