package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, path and status
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cards_http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"method", "path", "status"})

	// StoreCorruptionTotal counts local store blobs that failed to parse and
	// were replaced with the default roster. Corruption is degraded silently
	// toward callers, so this counter is the only durable signal.
	StoreCorruptionTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cards_local_store_corruption_total",
		Help: "Total number of corrupt local store blobs discarded",
	})

	// MemberWritesTotal counts member aggregate writes by operation
	MemberWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cards_member_writes_total",
		Help: "Total number of member create/update/delete operations",
	}, []string{"op"})
)
