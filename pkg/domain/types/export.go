package types

import "fmt"

// ExportFormat represents the serialization format of an export payload
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatCSV  ExportFormat = "csv"
)

// AllExportFormats returns all valid export formats
func AllExportFormats() []ExportFormat {
	return []ExportFormat{
		ExportFormatJSON,
		ExportFormatCSV,
	}
}

// IsValid checks if the export format is valid
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatJSON, ExportFormatCSV:
		return true
	default:
		return false
	}
}

// Ext returns the file extension for the format, without a leading dot
func (f ExportFormat) Ext() string {
	return string(f)
}

// String returns the string representation of the export format
func (f ExportFormat) String() string {
	return string(f)
}

// ParseExportFormat parses a string into an ExportFormat
func ParseExportFormat(s string) (ExportFormat, error) {
	format := ExportFormat(s)
	if !format.IsValid() {
		return "", fmt.Errorf("invalid export format: %s", s)
	}
	return format, nil
}

// ExportDataType selects which record sets an export contains
type ExportDataType string

const (
	ExportDataAssessments ExportDataType = "assessments"
	ExportDataStrategies  ExportDataType = "strategies"
	ExportDataFactors     ExportDataType = "factors"
	ExportDataAll         ExportDataType = "all"
)

// AllExportDataTypes returns all valid export data types
func AllExportDataTypes() []ExportDataType {
	return []ExportDataType{
		ExportDataAssessments,
		ExportDataStrategies,
		ExportDataFactors,
		ExportDataAll,
	}
}

// IsValid checks if the export data type is valid
func (d ExportDataType) IsValid() bool {
	switch d {
	case ExportDataAssessments,
		ExportDataStrategies,
		ExportDataFactors,
		ExportDataAll:
		return true
	default:
		return false
	}
}

// String returns the string representation of the export data type
func (d ExportDataType) String() string {
	return string(d)
}

// ParseExportDataType parses a string into an ExportDataType
func ParseExportDataType(s string) (ExportDataType, error) {
	dataType := ExportDataType(s)
	if !dataType.IsValid() {
		return "", fmt.Errorf("invalid export data type: %s", s)
	}
	return dataType, nil
}
