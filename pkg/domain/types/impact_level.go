package types

import "fmt"

// ImpactLevel represents the impact classification of a risk factor
type ImpactLevel string

const (
	ImpactLevelLow      ImpactLevel = "Low"
	ImpactLevelMedium   ImpactLevel = "Medium"
	ImpactLevelHigh     ImpactLevel = "High"
	ImpactLevelCritical ImpactLevel = "Critical"
)

// AllImpactLevels returns all valid impact levels in ascending order
func AllImpactLevels() []ImpactLevel {
	return []ImpactLevel{
		ImpactLevelLow,
		ImpactLevelMedium,
		ImpactLevelHigh,
		ImpactLevelCritical,
	}
}

// IsValid checks if the impact level is valid
func (l ImpactLevel) IsValid() bool {
	switch l {
	case ImpactLevelLow,
		ImpactLevelMedium,
		ImpactLevelHigh,
		ImpactLevelCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the impact level
func (l ImpactLevel) String() string {
	return string(l)
}

// ParseImpactLevel parses a string into an ImpactLevel
func ParseImpactLevel(s string) (ImpactLevel, error) {
	level := ImpactLevel(s)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid impact level: %s", s)
	}
	return level, nil
}
