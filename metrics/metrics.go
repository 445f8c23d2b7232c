// Package metrics holds the Prometheus collectors shared by the portal.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bank_portal",
		Name:      "upstream_requests_total",
		Help:      "Calls made to the banking REST services.",
	}, []string{"service", "method", "code"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bank_portal",
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of calls to the banking REST services.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "method"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bank_portal",
		Name:      "http_requests_total",
		Help:      "Requests served by the portal.",
	}, []string{"route", "method", "status"})

	NotificationsPushed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bank_portal",
		Name:      "notifications_pushed_total",
		Help:      "Toast notifications raised, by type.",
	}, []string{"type"})

	NotificationSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "bank_portal",
		Name:      "notification_sockets",
		Help:      "Open notification websockets.",
	})
)

// StatusClass collapses an HTTP status into 2xx/3xx/4xx/5xx. Zero means the call never got a response.
func StatusClass(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}
