package events

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitness_app",
		Subsystem: "events",
		Name:      "activities_published_total",
		Help:      "Number of activity events successfully published to Kafka.",
	})

	publishFailedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitness_app",
		Subsystem: "events",
		Name:      "activities_publish_failed_total",
		Help:      "Number of activity events that failed to publish.",
	})

	consumedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitness_app",
		Subsystem: "events",
		Name:      "activities_consumed_total",
		Help:      "Number of activity events fetched and dispatched to a handler.",
	})

	handlerErrorCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitness_app",
		Subsystem: "events",
		Name:      "handler_errors_total",
		Help:      "Number of activity events whose handler returned an error.",
	})
)

func init() {
	prometheus.MustRegister(publishedCounter, publishFailedCounter, consumedCounter, handlerErrorCounter)
}
