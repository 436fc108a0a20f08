package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

var (
	assessmentHeader = []string{"id", "aiTool", "riskType", "severity", "description", "contactEmail", "reportRequested", "createdAt"}
	strategyHeader   = []string{"riskType", "severity", "title", "description", "implementationDifficulty", "effectivenessScore"}
	factorHeader     = []string{"riskType", "factorName", "impactLevel", "frequencyPercentage", "description"}
)

// buildCSV renders the snapshot as CSV text. Every cell is double-quoted
// regardless of content, matching the historical export files consumers
// already parse. Aggregate information lives only in a trailing metadata
// section, never per-row.
func buildCSV(snapshot *model.Snapshot, dataType types.ExportDataType, meta Metadata) ([]byte, error) {
	var b strings.Builder

	sections := 0
	writeSection := func(name string, header []string, rows [][]string) {
		if len(rows) == 0 {
			return
		}
		if sections > 0 {
			b.WriteString("\n")
		}
		if dataType == types.ExportDataAll {
			b.WriteString("# " + name + "\n")
		}
		writeRow(&b, header)
		for _, row := range rows {
			writeRow(&b, row)
		}
		sections++
	}

	writeSection("assessments", assessmentHeader, assessmentRows(snapshot.Assessments))
	writeSection("strategies", strategyHeader, strategyRows(snapshot.Strategies))
	writeSection("factors", factorHeader, factorRows(snapshot.Factors))

	b.WriteString("\n# metadata\n")
	writeRow(&b, []string{"exportedAt", meta.ExportedAt})
	writeRow(&b, []string{"schemaVersion", meta.SchemaVersion})
	writeRow(&b, []string{"assessmentCount", strconv.Itoa(meta.RecordCounts.Assessments)})
	writeRow(&b, []string{"strategyCount", strconv.Itoa(meta.RecordCounts.Strategies)})
	writeRow(&b, []string{"factorCount", strconv.Itoa(meta.RecordCounts.Factors)})

	return []byte(b.String()), nil
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(quote(cell))
	}
	b.WriteString("\n")
}

// quote wraps a cell in double quotes, doubling any inner quotes.
func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

func assessmentRows(assessments []*model.RiskAssessment) [][]string {
	rows := make([][]string, 0, len(assessments))
	for _, a := range assessments {
		rows = append(rows, []string{
			a.ID.String(),
			a.AITool,
			a.RiskType.String(),
			a.Severity.String(),
			a.Description,
			a.ContactEmail,
			strconv.FormatBool(a.ReportRequested),
			a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows
}

func strategyRows(strategies []*model.MitigationStrategy) [][]string {
	rows := make([][]string, 0, len(strategies))
	for _, s := range strategies {
		rows = append(rows, []string{
			s.RiskType.String(),
			s.Severity.String(),
			s.Title,
			s.Description,
			s.Difficulty.String(),
			strconv.Itoa(s.EffectivenessScore),
		})
	}
	return rows
}

func factorRows(factors []*model.RiskFactor) [][]string {
	rows := make([][]string, 0, len(factors))
	for _, f := range factors {
		rows = append(rows, []string{
			f.RiskType.String(),
			f.FactorName,
			f.ImpactLevel.String(),
			strconv.FormatFloat(f.FrequencyPercentage, 'f', -1, 64),
			f.Description,
		})
	}
	return rows
}
