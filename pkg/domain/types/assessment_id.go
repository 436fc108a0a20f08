package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// AssessmentID represents a unique identifier for a risk assessment.
// IDs are opaque and server-assigned; callers never construct them from
// user input.
type AssessmentID string

// NewAssessmentID generates a new random AssessmentID
func NewAssessmentID() AssessmentID {
	return AssessmentID(uuid.New().String())
}

// Validate checks if the AssessmentID is valid
func (i AssessmentID) Validate() error {
	if i == "" {
		return goerr.New("assessment ID cannot be empty")
	}
	if err := uuid.Validate(string(i)); err != nil {
		return goerr.Wrap(err, "assessment ID must be a UUID", goerr.V("id", i))
	}
	return nil
}

// String returns the string representation of AssessmentID
func (i AssessmentID) String() string {
	return string(i)
}
