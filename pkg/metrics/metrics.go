// Package metrics exposes the Prometheus instrumentation for the
// footfall service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SamplesIngested = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "footfall",
		Name:      "samples_ingested_total",
		Help:      "Number of footfall samples durably written.",
	})

	AlertsSynthesized = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "footfall",
		Name:      "alerts_synthesized_total",
		Help:      "Number of alerts created or refreshed, by type and severity.",
	}, []string{"type", "severity"})

	AlertSynthesisFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "footfall",
		Name:      "alert_synthesis_failures_total",
		Help:      "Number of ingests whose best-effort alert synthesis failed.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
