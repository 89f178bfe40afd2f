package mixer

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	MixerRecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixer_recommendations_total",
			Help: "Count of recommendation requests by outcome.",
		},
		[]string{"outcome"},
	)

	MixerRelaxationSteps = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mixer_relaxation_steps",
		Help:    "Catalog filter relaxations needed before candidates were found.",
		Buckets: prometheus.LinearBuckets(0, 1, 8),
	})

	MixerCombinationsScored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mixer_combinations_scored_total",
		Help: "Total combinations allocated and scored.",
	})

	MixerAnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixer_analyses_total",
			Help: "Count of mix and liquid analyses by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		MixerRecommendationsTotal,
		MixerRelaxationSteps,
		MixerCombinationsScored,
		MixerAnalysesTotal,
	)
}
