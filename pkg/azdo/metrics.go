package azdo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	// requestsTotal counts remote calls by HTTP method and status ("error" for transport failures).
	requestsTotal *prometheus.CounterVec
	// requestDuration measures round-trip latency by HTTP method.
	requestDuration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "azdo",
			Name:      "requests_total",
			Help:      "Total Azure DevOps REST calls by method and status",
		}, []string{"method", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "azdo",
			Name:      "request_duration_seconds",
			Help:      "Azure DevOps REST call latency",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"method"}),
	}
}
