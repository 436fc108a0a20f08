package slack

// Export internal functions for testing
var BuildAssessmentBlocks = buildAssessmentBlocks

// TruncateToMaxBytes is exported for testing UTF-8 truncation
var TruncateToMaxBytes = truncateToMaxBytes
