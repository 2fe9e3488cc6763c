package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slmetal",
			Subsystem: "catalog",
			Name:      "cache_hits_total",
			Help:      "Total number of catalog cache hits by lookup",
		},
		[]string{"lookup"},
	)

	cacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slmetal",
			Subsystem: "catalog",
			Name:      "cache_misses_total",
			Help:      "Total number of catalog cache misses by lookup",
		},
		[]string{"lookup"},
	)
)
