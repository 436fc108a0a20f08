package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidLogLevel   = goerr.New("invalid log level")
	ErrInvalidLogFormat  = goerr.New("invalid log format")
	ErrInvalidBackend    = goerr.New("invalid repository backend")
	ErrMissingProjectID  = goerr.New("firestore project ID is required")
	ErrReferenceNotFound = goerr.New("reference data file not found")
	ErrInvalidReference  = goerr.New("invalid reference data")
	ErrDuplicateStrategy = goerr.New("duplicate mitigation strategy")
	ErrDuplicateFactor   = goerr.New("duplicate risk factor")
	ErrIncompleteSlack   = goerr.New("slack notification requires both bot token and channel")
)

// Context keys for error values
const (
	LogLevelKey      = "log_level"
	LogFormatKey     = "log_format"
	LogOutputKey     = "log_output"
	BackendKey       = "backend"
	ReferencePathKey = "reference_path"
	StrategyIndexKey = "strategy_index"
	StrategyTitleKey = "strategy_title"
	FactorIndexKey   = "factor_index"
	FactorNameKey    = "factor_name"
)
