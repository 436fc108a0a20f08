package types

import "fmt"

// Severity represents the ordered impact level of a risk assessment
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// AllSeverities returns all valid severities in ascending order
func AllSeverities() []Severity {
	return []Severity{
		SeverityLow,
		SeverityMedium,
		SeverityHigh,
		SeverityCritical,
	}
}

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow,
		SeverityMedium,
		SeverityHigh,
		SeverityCritical:
		return true
	default:
		return false
	}
}

// Weight returns the numeric score of the severity (Low=1 .. Critical=4).
// Unknown severities score 0.
func (s Severity) Weight() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity parses a string into a Severity
func ParseSeverity(s string) (Severity, error) {
	severity := Severity(s)
	if !severity.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return severity, nil
}
