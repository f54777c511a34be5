package metrics

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/san-kum/quadlab/internal/quad"
)

// Collector exports per-method run statistics. It implements quad.Observer.
type Collector struct {
	runs     *prometheus.CounterVec
	evals    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	absError *prometheus.HistogramVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quadlab_integrations_total",
			Help: "Total number of completed integrations",
		}, []string{"method"}),
		evals: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quadlab_evaluations_total",
			Help: "Total number of integrand evaluations",
		}, []string{"method"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "quadlab_integration_duration_seconds",
			Help:    "Wall-clock duration of one integration",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"method"}),
		absError: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "quadlab_abs_error",
			Help:    "Absolute error against the exact value",
			Buckets: prometheus.ExponentialBuckets(1e-16, 100, 9),
		}, []string{"method"}),
	}
}

func (c *Collector) OnReport(r *quad.Report) {
	c.runs.WithLabelValues(r.Method).Inc()
	c.evals.WithLabelValues(r.Method).Add(float64(r.Evals))
	c.duration.WithLabelValues(r.Method).Observe(r.Elapsed().Seconds())
}

// ObserveError records an absolute error. NaN means no exact value and is skipped.
func (c *Collector) ObserveError(method string, err float64) {
	if math.IsNaN(err) {
		return
	}
	c.absError.WithLabelValues(method).Observe(err)
}
