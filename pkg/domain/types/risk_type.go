package types

import "fmt"

// RiskType represents one of the reportable AI risk categories
type RiskType string

const (
	RiskTypeTrustErosion    RiskType = "Trust Erosion"
	RiskTypeOverReliance    RiskType = "Over-reliance"
	RiskTypeBias            RiskType = "Bias/Discrimination"
	RiskTypePrivacy         RiskType = "Privacy Concerns"
	RiskTypeMisinformation  RiskType = "Misinformation"
	RiskTypeJobDisplacement RiskType = "Job Displacement"
	RiskTypeSecurity        RiskType = "Security Vulnerabilities"
	RiskTypeManipulation    RiskType = "Algorithmic Manipulation"
	RiskTypeTransparency    RiskType = "Lack of Transparency"
	RiskTypeDataQuality     RiskType = "Data Quality Issues"
)

// AllRiskTypes returns all valid risk types
func AllRiskTypes() []RiskType {
	return []RiskType{
		RiskTypeTrustErosion,
		RiskTypeOverReliance,
		RiskTypeBias,
		RiskTypePrivacy,
		RiskTypeMisinformation,
		RiskTypeJobDisplacement,
		RiskTypeSecurity,
		RiskTypeManipulation,
		RiskTypeTransparency,
		RiskTypeDataQuality,
	}
}

// IsValid checks if the risk type is valid
func (t RiskType) IsValid() bool {
	switch t {
	case RiskTypeTrustErosion,
		RiskTypeOverReliance,
		RiskTypeBias,
		RiskTypePrivacy,
		RiskTypeMisinformation,
		RiskTypeJobDisplacement,
		RiskTypeSecurity,
		RiskTypeManipulation,
		RiskTypeTransparency,
		RiskTypeDataQuality:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk type
func (t RiskType) String() string {
	return string(t)
}

// ParseRiskType parses a string into a RiskType
func ParseRiskType(s string) (RiskType, error) {
	riskType := RiskType(s)
	if !riskType.IsValid() {
		return "", fmt.Errorf("invalid risk type: %s", s)
	}
	return riskType, nil
}
