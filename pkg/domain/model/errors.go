package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for model validation
var (
	ErrInvalidAssessment = goerr.New("invalid risk assessment")
	ErrInvalidStrategy   = goerr.New("invalid mitigation strategy")
	ErrInvalidFactor     = goerr.New("invalid risk factor")
)
