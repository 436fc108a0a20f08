package export

import (
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

// ErrNoData is returned when the selected dataset holds no records. The
// caller reports the condition instead of producing an empty file.
var ErrNoData = goerr.New("no data to export")

// SchemaVersion identifies the export payload layout.
const SchemaVersion = "1.0"

// Metadata is the fixed descriptive block embedded in every export.
type Metadata struct {
	ExportedAt    string             `json:"exportedAt"`
	SchemaVersion string             `json:"schemaVersion"`
	RecordCounts  model.RecordCounts `json:"recordCounts"`
}

// Result is a rendered export payload ready for download.
type Result struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Export renders the selected slice of the snapshot in the requested
// format. Output is deterministic for a given snapshot and timestamp.
func Export(snapshot *model.Snapshot, dataType types.ExportDataType, format types.ExportFormat, now time.Time) (*Result, error) {
	if snapshot == nil {
		return nil, goerr.Wrap(ErrNoData, "nil snapshot")
	}

	selected := selectRecords(snapshot, dataType)
	if selected.Total() == 0 {
		return nil, goerr.Wrap(ErrNoData, "empty dataset", goerr.V("dataType", dataType))
	}

	meta := Metadata{
		ExportedAt:    now.UTC().Format(time.RFC3339),
		SchemaVersion: SchemaVersion,
		RecordCounts:  selected.Counts(),
	}

	var data []byte
	var err error
	switch format {
	case types.ExportFormatJSON:
		data, err = buildJSON(selected, meta)
	case types.ExportFormatCSV:
		data, err = buildCSV(selected, dataType, meta)
	default:
		return nil, goerr.New("unsupported export format", goerr.V("format", format))
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Data:        data,
		Filename:    Filename(dataType, format, now),
		ContentType: ContentType(format),
	}, nil
}

// Filename follows the download naming convention
// ai-risk-<dataType>-<YYYY-MM-DD>.<ext>.
func Filename(dataType types.ExportDataType, format types.ExportFormat, now time.Time) string {
	return fmt.Sprintf("ai-risk-%s-%s.%s", dataType, now.UTC().Format("2006-01-02"), format.Ext())
}

// ContentType returns the MIME type for the download response.
func ContentType(format types.ExportFormat) string {
	switch format {
	case types.ExportFormatCSV:
		return "text/csv"
	default:
		return "application/json"
	}
}

// selectRecords narrows the snapshot to the requested dataset. Unselected
// sets are left nil so they stay out of the payload.
func selectRecords(snapshot *model.Snapshot, dataType types.ExportDataType) *model.Snapshot {
	switch dataType {
	case types.ExportDataAssessments:
		return &model.Snapshot{Assessments: snapshot.Assessments}
	case types.ExportDataStrategies:
		return &model.Snapshot{Strategies: snapshot.Strategies}
	case types.ExportDataFactors:
		return &model.Snapshot{Factors: snapshot.Factors}
	default:
		return snapshot
	}
}
