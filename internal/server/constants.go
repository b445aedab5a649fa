package server

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// HTTP header names
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderCacheControl   = "Cache-Control"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"

	// The table never changes while the process runs.
	HeaderValueCacheTable = "public, max-age=3600"
)

// Paths excluded from request logging
var QuietPaths = []string{
	"/healthz",
	"/metrics",
}
