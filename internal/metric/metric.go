package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors for the check-in core. Registered on the default registry and
// served by promhttp on /metrics.
var (
	CheckIns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventcheckin_checkins_total",
		Help: "Total number of attendee check-ins, including bulk check-ins.",
	})

	CheckOuts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventcheckin_checkouts_total",
		Help: "Total number of attendee check-outs.",
	})

	ImportRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventcheckin_import_rows_total",
		Help: "Bulk import rows processed, partitioned by result.",
	}, []string{"result"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eventcheckin_http_request_duration_seconds",
		Help:    "HTTP request latency, partitioned by method and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)
