package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/signalsfoundry/msaviz/model"
)

// ComputeCollector exposes wavelength-map computation metrics. It satisfies
// the evaluation recorder accepted by the MSA aggregator.
type ComputeCollector struct {
	gatherer prometheus.Gatherer

	Evaluations     *prometheus.CounterVec
	ComputeDuration *prometheus.HistogramVec
	LastShutters    prometheus.Gauge
}

// NewComputeCollector registers computation metrics against the provided registerer.
func NewComputeCollector(reg prometheus.Registerer) (*ComputeCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "msaviz_shutter_evaluations_total",
		Help: "Shutter trace evaluations, labeled by detector and outcome.",
	}, []string{"detector", "outcome"})
	evaluations, err := registerCounterVec(reg, evaluations, "msaviz_shutter_evaluations_total")
	if err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "msaviz_compute_duration_seconds",
		Help:    "Duration of full MSA wavelength-map computations.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
	}, []string{"instrument"})
	duration, err = registerHistogramVec(reg, duration, "msaviz_compute_duration_seconds")
	if err != nil {
		return nil, err
	}

	shutters, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "msaviz_compute_open_shutters",
		Help: "Number of open shutters in the most recent computation.",
	}), "msaviz_compute_open_shutters")
	if err != nil {
		return nil, err
	}

	return &ComputeCollector{
		gatherer:        gathererFor(reg),
		Evaluations:     evaluations,
		ComputeDuration: duration,
		LastShutters:    shutters,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *ComputeCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// ObserveEvaluation counts one side of one shutter.
func (c *ComputeCollector) ObserveEvaluation(side model.Side, outcome string) {
	if c == nil || c.Evaluations == nil {
		return
	}
	c.Evaluations.WithLabelValues(side.String(), outcome).Inc()
}

// ObserveCompute records a completed computation.
func (c *ComputeCollector) ObserveCompute(instrument string, shutters int, elapsed time.Duration) {
	if c == nil {
		return
	}
	if c.ComputeDuration != nil {
		c.ComputeDuration.WithLabelValues(instrument).Observe(elapsed.Seconds())
	}
	if c.LastShutters != nil {
		c.LastShutters.Set(float64(shutters))
	}
}
