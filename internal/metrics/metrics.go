package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "replydraft_generations_total",
		Help: "Reply generation attempts by scenario and outcome.",
	}, []string{"scenario", "outcome"})

	CompletionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "replydraft_completion_duration_seconds",
		Help:    "Time spent waiting on the completion service.",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30},
	}, []string{"provider"})

	Configured = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "replydraft_llm_configured",
		Help: "1 when an API key is loaded and generation is enabled.",
	})
)
