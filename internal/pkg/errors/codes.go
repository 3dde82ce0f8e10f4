package errors

// Error code constants. Errors carry code + params; messages stay in
// English for logs, clients key on the code.

// Validation error codes.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeMissingField     = "MISSING_REQUIRED_FIELD"
	CodeOutOfRange       = "VALUE_OUT_OF_RANGE"
	CodeInvalidEnum      = "INVALID_ENUM_VALUE"
	CodeInvalidEmail     = "INVALID_EMAIL"
	CodeInvalidDate      = "INVALID_DATE"
)

// Not-found error codes.
const (
	CodeLocationNotFound   = "LOCATION_NOT_FOUND"
	CodeConditionNotFound  = "CONDITION_NOT_FOUND"
	CodeResearcherNotFound = "RESEARCHER_NOT_FOUND"
	CodeSpecimenNotFound   = "SPECIMEN_NOT_FOUND"
	CodeGrowthNotFound     = "GROWTH_METRIC_NOT_FOUND"
	CodeLinkNotFound       = "SPECIMEN_RESEARCHER_NOT_FOUND"
)

// Referential and state conflict codes.
const (
	CodeStillReferenced   = "REFERENCE_STILL_IN_USE"
	CodeSpecimenDeleted   = "SPECIMEN_DELETED"
	CodeDuplicateEmail    = "DUPLICATE_RESEARCHER_EMAIL"
	CodeDuplicateLink     = "DUPLICATE_SPECIMEN_RESEARCHER"
	CodeMeasuredTooEarly  = "MEASURED_BEFORE_SAMPLING_DATE"
	CodeFutureSamplingDay = "SAMPLING_DATE_IN_FUTURE"
)
