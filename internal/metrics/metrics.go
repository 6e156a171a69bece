// Package metrics exposes render counters and timings for Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/srikarvechalapu/folio/internal/bootstrap"
)

// Recorder holds the folio metrics on its own registry. It is a
// bootstrap.Observer.
type Recorder struct {
	registry *prometheus.Registry

	sectionLoads    *prometheus.CounterVec
	sectionDuration *prometheus.HistogramVec
	builds          *prometheus.CounterVec
	lastBuild       prometheus.Gauge
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		sectionLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_section_loads_total",
			Help: "Section loads by section and outcome",
		}, []string{"section", "status"}),
		sectionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "folio_section_load_seconds",
			Help:    "Time to fetch and render one section",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"section"}),
		builds: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_builds_total",
			Help: "Completed page renders by result",
		}, []string{"result"}),
		lastBuild: factory.NewGauge(prometheus.GaugeOpts{
			Name: "folio_last_build_timestamp_seconds",
			Help: "Unix time of the latest completed render",
		}),
	}
}

// Started implements bootstrap.Observer.
func (r *Recorder) Started(int) {}

// SectionDone implements bootstrap.Observer.
func (r *Recorder) SectionDone(o bootstrap.Outcome, _ int) {
	r.sectionLoads.WithLabelValues(o.Section, string(o.Status)).Inc()
	r.sectionDuration.WithLabelValues(o.Section).Observe(o.Duration.Seconds())
}

// Finished implements bootstrap.Observer.
func (r *Recorder) Finished(rep *bootstrap.Report) {
	result := "complete"
	if len(rep.Failed()) > 0 {
		result = "partial"
	}
	r.builds.WithLabelValues(result).Inc()
	r.lastBuild.Set(float64(rep.StartedAt.Add(rep.Duration).Unix()))
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
