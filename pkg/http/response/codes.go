package response

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingField     = "missing_field"

	// Resource errors
	ErrCodeNotFound      = "not_found"
	ErrCodeAlreadyExists = "already_exists"

	// Ring/fight errors
	ErrCodeRingFull         = "ring_full"
	ErrCodeNotEnoughBoxers  = "not_enough_boxers"
	ErrCodeFightFailed      = "fight_failed"
	ErrCodeEnterRingFailed  = "enter_ring_failed"
	ErrCodeInvalidSortField = "invalid_sort_field"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
	ErrCodeUpstreamError      = "upstream_error"
)
