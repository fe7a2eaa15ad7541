package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "release_goblin_api_requests_total",
		Help: "Total number of GitHub API lookups by resource and outcome",
	}, []string{"resource", "outcome"})

	BatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "release_goblin_fetch_batches_total",
		Help: "Total number of pull request batches fetched",
	})

	PullRequestsReferenced = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "release_goblin_pull_requests_referenced",
		Help: "Number of pull request numbers found in the commit range of the last run",
	})
)

// WriteTextfile dumps the default registry in the text exposition format,
// for the node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
