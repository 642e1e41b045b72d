// Package telemetry records render outcomes for node_exporter's textfile collector.
package telemetry

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/landesfeind/procrec/src/plot"
)

// Recorder owns a private registry so tests and repeated runs never collide with the
// global default registry.
type Recorder struct {
	registry *prometheus.Registry
	renders  *prometheus.CounterVec
	duration prometheus.Histogram
	samples  prometheus.Gauge
}

// NewRecorder registers the procplot metrics on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "procplot_renders_total",
			Help: "Chart renders by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "procplot_render_duration_seconds",
			Help:    "Time spent composing and writing a chart.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		}),
		samples: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "procplot_samples",
			Help: "Number of samples in the last rendered chart.",
		}),
	}
	r.registry.MustRegister(r.renders, r.duration, r.samples)
	return r
}

// ObserveRender records one render attempt.
func (r *Recorder) ObserveRender(elapsed time.Duration, samples int, err error) {
	r.renders.WithLabelValues(Result(err)).Inc()
	r.duration.Observe(elapsed.Seconds())
	r.samples.Set(float64(samples))
}

// Result maps a render error to the result label value.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, plot.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, plot.ErrInvalidGeometry):
		return "invalid_geometry"
	case errors.Is(err, plot.ErrIO):
		return "io_failure"
	case errors.Is(err, plot.ErrEncoding):
		return "encoding_failure"
	default:
		return "error"
	}
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.registry }

// WriteTextfile writes the metrics in text exposition format to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
