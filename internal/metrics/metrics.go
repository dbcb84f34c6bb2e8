package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PromUpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_upstream_requests_total",
			Help: "Requests issued to the code-hosting platform by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	PromAggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dashboard_commit_aggregation_duration_seconds",
			Help: "Duration of a full commit aggregation in seconds",
			Buckets: []float64{
				0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
			},
		},
		[]string{"outcome"},
	)

	PromRepositoryFetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_repository_commit_fetch_failures_total",
			Help: "Per-repository commit fetches that failed and contributed no commits",
		},
	)
)

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordUpstream counts one request against the code-hosting platform.
func RecordUpstream(endpoint string, err error) {
	PromUpstreamRequests.WithLabelValues(endpoint, outcome(err)).Inc()
}

// ObserveAggregation records how long a commit aggregation took.
func ObserveAggregation(d time.Duration, err error) {
	PromAggregationDuration.WithLabelValues(outcome(err)).Observe(d.Seconds())
}

func RecordRepositoryFailure() {
	PromRepositoryFetchFailures.Inc()
}
