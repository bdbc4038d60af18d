package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "checkout",
			Name:      "placements_total",
			Help:      "Total number of placement attempts by outcome",
		},
		[]string{"outcome"},
	)

	placementDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "checkout",
			Subsystem: "checkout",
			Name:      "placement_duration_seconds",
			Help:      "Histogram of placement durations in seconds, payment included",
			Buckets:   prometheus.DefBuckets,
		},
	)

	ordersTransitioned = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "lifecycle",
			Name:      "transitions_total",
			Help:      "Total number of status transition attempts",
		},
		[]string{"to", "outcome"},
	)

	compensationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "checkout",
			Name:      "compensation_failures_total",
			Help:      "Total number of undo runs that did not finish cleanly",
		},
	)

	sideEffectsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "lifecycle",
			Name:      "side_effects_dropped_total",
			Help:      "Events and notifications dropped because the worker queue was full",
		},
		[]string{"job"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersPlaced,
		placementDuration,
		ordersTransitioned,
		compensationFailures,
		sideEffectsDropped,
	)
}
