package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transform metrics
var (
	ImagesProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallerygen_images_processed_total",
			Help: "Total number of source images examined, by phase",
		},
		[]string{"phase"},
	)

	DerivativesRebuiltTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallerygen_derivatives_rebuilt_total",
			Help: "Total number of derivative files written, by kind",
		},
		[]string{"kind"},
	)

	TransformFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gallerygen_transform_failures_total",
			Help: "Total number of source images dropped due to decode or encode failures",
		},
	)

	TransformDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gallerygen_transform_duration_seconds",
			Help:    "Time spent transforming one source image",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
)

// Build metrics
var (
	ProjectsIndexed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gallerygen_projects_indexed",
			Help: "Number of projects in the last written gallery index",
		},
	)

	VideosResolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallerygen_videos_resolved_total",
			Help: "Total number of video references emitted, by kind",
		},
		[]string{"kind"},
	)

	ConfigFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gallerygen_config_fallbacks_total",
			Help: "Total number of projects that fell back to a default config",
		},
	)

	BuildDurationSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gallerygen_build_duration_seconds",
			Help: "Wall-clock duration of the last build",
		},
	)

	BuildLastRunTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gallerygen_build_last_run_timestamp_seconds",
			Help: "Unix timestamp of the last completed build",
		},
	)
)
