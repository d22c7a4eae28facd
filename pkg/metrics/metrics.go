package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	MechanicTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mechanic_transitions_total",
			Help: "Accepted recommendation flow transitions by target stage",
		},
		[]string{"stage"},
	)

	MechanicRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mechanic_rejections_total",
			Help: "Rejected recommendation flow inputs by stage and reason",
		},
		[]string{"stage", "reason"},
	)

	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Catalog snapshot loads by source and result",
		},
		[]string{"source", "result"},
	)

	SearchQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "listing_search_queries_total",
			Help: "Total number of listing search queries",
		},
	)

	LeadsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_created_total",
			Help: "Total number of featured listing leads stored",
		},
	)
)
