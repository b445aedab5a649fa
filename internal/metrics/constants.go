package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Table metric names
const (
	MetricNameConstantLookups   = "constant_lookups_total"
	MetricNameRatingConversions = "rating_conversions_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextConstantLookups      = "Total number of mechanics constant lookups"
	HelpTextRatingConversions    = "Total number of rating to percent conversions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelConstant = "constant"
	LabelResult   = "result"
	LabelStat     = "stat"
)

// Label values
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultOK       = "ok"
	ResultError    = "error"

	// unmatchedPath keeps unrouted 404s from creating one series per URL
	unmatchedPath = "unmatched"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
