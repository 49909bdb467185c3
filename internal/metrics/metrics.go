package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "codecamp"

// Registry holds every metric exposed on /metrics.
var Registry = prometheus.NewRegistry()

// AuthorizationDenials counts mutating requests rejected by the edit guard, by entity.
var AuthorizationDenials = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denials_total",
		Help:      "Requests rejected by the authorization guard",
	},
	[]string{"entity"},
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}
