package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventhub_events_created_total",
		Help: "Total number of events successfully created.",
	})

	CatalogQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventhub_catalog_queries_total",
		Help: "Total number of catalog reads, labelled by operation (list, get).",
	}, []string{"operation"})

	StoreFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventhub_store_failures_total",
		Help: "Total number of datastore operation failures, labelled by operation.",
	}, []string{"operation"})
)
