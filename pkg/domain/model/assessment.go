package model

import (
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

// emailPattern matches the address format accepted by the reporting form.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether s is an acceptable contact address
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// RiskAssessment is a single user-submitted AI risk report. Records are
// immutable once created and are never deleted by this system.
type RiskAssessment struct {
	ID              types.AssessmentID `json:"id"`
	AITool          string             `json:"aiTool"`
	RiskType        types.RiskType     `json:"riskType"`
	Severity        types.Severity     `json:"severity"`
	Description     string             `json:"description,omitempty"`
	ContactEmail    string             `json:"contactEmail,omitempty"`
	ReportRequested bool               `json:"reportRequested"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// Validate checks the submission invariants: AITool and RiskType/Severity
// must be present and recognized, and ContactEmail, when given, must be a
// plausible address. Stored records are not re-validated on load.
func (a *RiskAssessment) Validate() error {
	if strings.TrimSpace(a.AITool) == "" {
		return goerr.Wrap(ErrInvalidAssessment, "aiTool is required")
	}
	if !a.RiskType.IsValid() {
		return goerr.Wrap(ErrInvalidAssessment, "unrecognized riskType", goerr.V("riskType", a.RiskType))
	}
	if !a.Severity.IsValid() {
		return goerr.Wrap(ErrInvalidAssessment, "unrecognized severity", goerr.V("severity", a.Severity))
	}
	if a.ContactEmail != "" && !IsValidEmail(a.ContactEmail) {
		return goerr.Wrap(ErrInvalidAssessment, "invalid contactEmail")
	}
	return nil
}

// Clone returns a copy of the assessment
func (a *RiskAssessment) Clone() *RiskAssessment {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}
