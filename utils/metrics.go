package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	PushCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_push_notifications_total",
			Help: "Push notifications dispatched",
		},
		[]string{"kind"}, // "meal" | "water" | "chat"
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_ws_connections",
			Help: "Open websocket connections",
		},
	)
)

func InitMetrics() {
	prometheus.MustRegister(ReqCount, ReqDuration, PushCount, WSConnections)
}
