package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidRating         = "Rating must be a non-negative number"
	ErrMsgInvalidEffect         = "Effect must be a non-negative number"
	ErrMsgInvalidLevel          = "Level must be an integer between 1 and 255"
	ErrMsgUnknownStat           = "Unknown stat"
	ErrMsgConstantNotFound      = "Constant not found"
	ErrMsgUnsupportedFormat     = "Unsupported format"
	ErrMsgGenericServerError    = "Something went wrong"
)
