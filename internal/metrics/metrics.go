package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Table Metrics
var (
	ConstantLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameConstantLookups,
			Help: HelpTextConstantLookups,
		},
		[]string{LabelConstant, LabelResult},
	)

	RatingConversions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRatingConversions,
			Help: HelpTextRatingConversions,
		},
		[]string{LabelStat, LabelResult},
	)
)

// RecordLookup counts a constant lookup. Unknown names share one label value.
func RecordLookup(name string, found bool) {
	if !found {
		ConstantLookups.WithLabelValues("", ResultNotFound).Inc()
		return
	}
	ConstantLookups.WithLabelValues(name, ResultFound).Inc()
}

// RecordConversion counts a rating conversion.
func RecordConversion(stat string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	RatingConversions.WithLabelValues(stat, result).Inc()
}
