package catatanku

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	interrors "github.com/muhzarfan/catatanku/internal/errors"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catatanku_client",
			Name:      "requests_total",
			Help:      "API calls issued, by operation.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catatanku_client",
			Name:      "request_failures_total",
			Help:      "API calls that ended in an error, by operation and reason.",
		},
		[]string{"operation", "reason"},
	)
)

// instrument records one finished call. Validation failures count as
// failures too; they matter when watching a client misbehave.
func instrument(operation string, err error) {
	requestsTotal.WithLabelValues(operation).Inc()
	if err != nil {
		requestFailuresTotal.WithLabelValues(operation, interrors.Reason(err)).Inc()
	}
}
