package softlayer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slmetal",
			Subsystem: "softlayer",
			Name:      "requests_total",
			Help:      "Total number of SoftLayer API requests by method and result",
		},
		[]string{"method", "result"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "slmetal",
			Subsystem: "softlayer",
			Name:      "request_duration_seconds",
			Help:      "Duration of SoftLayer API requests in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		},
		[]string{"method"},
	)
)

// observeRequest records one API call, retries included.
func observeRequest(method string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	requestsTotal.WithLabelValues(method, result).Inc()
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
