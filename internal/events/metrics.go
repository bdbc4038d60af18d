package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var eventsPublished = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "checkout",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Total number of order lifecycle events handed to the bus",
	},
	[]string{"type", "outcome"},
)
