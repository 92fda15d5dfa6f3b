package ai

import "github.com/prometheus/client_golang/prometheus"

var (
	generatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitness_app",
		Subsystem: "ai",
		Name:      "recommendations_generated_total",
		Help:      "Number of recommendations built from a usable provider response.",
	})

	fallbackCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_app",
		Subsystem: "ai",
		Name:      "fallbacks_total",
		Help:      "Number of fallback recommendations served, labeled by failure cause.",
	}, []string{"cause"})
)

func init() {
	prometheus.MustRegister(generatedCounter, fallbackCounter)
}
