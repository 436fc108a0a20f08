package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrInvalidArgument    = errors.New("invalid argument")
)

// Context keys for error values
const (
	AssessmentIDKey = "assessment_id"
)
