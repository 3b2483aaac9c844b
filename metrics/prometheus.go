// Package metrics bridges observations to Prometheus. The handler derives an
// in-flight gauge, a duration histogram, and an error counter from each
// observation's lifecycle, labeled by the observation's technical name.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tailored-agentic-units/observation/observation"
)

// PrometheusHandler records observation lifecycles as Prometheus metrics.
type PrometheusHandler struct {
	inFlight  *prometheus.GaugeVec
	durations *prometheus.HistogramVec
	errors    *prometheus.CounterVec
}

// NewPrometheusHandler creates a handler whose collectors are registered with
// reg. Pass prometheus.DefaultRegisterer to expose them on the default
// /metrics endpoint.
func NewPrometheusHandler(reg prometheus.Registerer) *PrometheusHandler {
	factory := promauto.With(reg)
	return &PrometheusHandler{
		inFlight: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "observations_in_flight",
			Help: "Observations started but not yet stopped.",
		}, []string{"name"}),
		durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "observation_duration_seconds",
			Help:    "Duration of completed observations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"name"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "observation_errors_total",
			Help: "Errors recorded on observations.",
		}, []string{"name"}),
	}
}

func (h *PrometheusHandler) OnStart(c *observation.Context) {
	h.inFlight.WithLabelValues(c.Name).Inc()
}

func (h *PrometheusHandler) OnStop(c *observation.Context) {
	h.inFlight.WithLabelValues(c.Name).Dec()
	h.durations.WithLabelValues(c.Name).Observe(c.Duration.Seconds())
}

func (h *PrometheusHandler) OnError(c *observation.Context) {
	h.errors.WithLabelValues(c.Name).Inc()
}
