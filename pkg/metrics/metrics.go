package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_auth_attempts_total",
			Help: "Authentication operations by kind and outcome",
		},
		[]string{"operation", "result"},
	)

	ApplicationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_applications_submitted_total",
			Help: "Job applications by outcome",
		},
		[]string{"result"},
	)

	ApplicationStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_application_status_changes_total",
			Help: "Application status updates by new status",
		},
		[]string{"status"},
	)

	JobSearches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_job_searches_total",
			Help: "Catalog list requests served through the filter engine",
		},
	)

	JobSearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobboard_job_search_results",
			Help:    "Number of jobs returned per catalog list request",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Result labels
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Outcome maps an error to a result label.
func Outcome(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
