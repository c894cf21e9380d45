package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GovernorWait observes time spent waiting before an outbound API call, by quota class and reason
	GovernorWait = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "copycat_governor_wait_seconds",
		Help:    "Time spent waiting for the rate governor",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 16), // 10ms to ~5.5min
	}, []string{"class", "reason"})

	// GitHubCalls counts hosting API calls by operation and outcome
	GitHubCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "copycat_github_calls_total",
		Help: "Total hosting API calls by operation and outcome",
	}, []string{"operation", "outcome"})

	// QueueJobs counts processed scan jobs by result (completed, retried, failed)
	QueueJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "copycat_queue_jobs_total",
		Help: "Total scan jobs by result",
	}, []string{"result"})

	// QueueDepth is the number of waiting scan jobs
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "copycat_queue_depth",
		Help: "Number of waiting scan jobs",
	})

	// MatchesRecorded counts stored matches by confidence level
	MatchesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "copycat_matches_recorded_total",
		Help: "Total matches stored by confidence level",
	}, []string{"level"})

	// ProfileScans counts finished profile scans by outcome (completed, failed, recovered)
	ProfileScans = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "copycat_profile_scans_total",
		Help: "Total profile scans by outcome",
	}, []string{"outcome"})

	// HTTPRequests observes API latency by route pattern and status code
	HTTPRequests = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "copycat_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "status"})
)

// Outcome converts an error into a metric label
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
