package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ListRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "osshare", Name: "list_requests_total", Help: "Number of listing requests by document kind."},
		[]string{"kind"},
	)
	DocumentsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "osshare", Name: "documents_created_total", Help: "Number of documents created by kind."},
		[]string{"kind"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "osshare", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "osshare", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ListRequests)
	reg.MustRegister(DocumentsCreated)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
