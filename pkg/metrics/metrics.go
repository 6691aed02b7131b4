// Package metrics provides Prometheus collectors for the plotting backend:
// charts built per kind and shape, and chart build latency. Metrics are
// registered on the default registry; serving them is the embedding
// application's concern, this module never opens a listener.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChartsBuilt counts chart descriptions built, labeled by kind, input
	// shape and outcome.
	ChartsBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vegaframe_charts_built_total",
			Help: "Total number of chart descriptions built",
		},
		[]string{"kind", "shape", "status"},
	)

	// BuildDuration tracks how long building a chart description takes.
	BuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vegaframe_chart_build_duration_seconds",
			Help:    "Chart description build latency",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"kind", "shape"},
	)
)

// ObserveBuild records one chart build.
func ObserveBuild(kind, shape string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ChartsBuilt.WithLabelValues(kind, shape, status).Inc()
	if err == nil {
		BuildDuration.WithLabelValues(kind, shape).Observe(d.Seconds())
	}
}
