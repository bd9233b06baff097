package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecommerce_orders",
			Subsystem: "http",
			Name:      "orders_created_total",
			Help:      "Total number of order creation attempts by resulting status",
		},
		[]string{"status"},
	)

	ordersCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ecommerce_orders",
			Subsystem: "http",
			Name:      "orders_cancelled_total",
			Help:      "Total number of cancelled orders",
		},
	)

	statusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecommerce_orders",
			Subsystem: "http",
			Name:      "order_status_changes_total",
			Help:      "Total number of administrative status changes by target status",
		},
		[]string{"status"},
	)

	orderCreateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ecommerce_orders",
			Subsystem: "http",
			Name:      "order_create_duration_seconds",
			Help:      "Histogram of order creation durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecommerce_orders",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of requests to get order by UID",
		},
		[]string{"status"},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ecommerce_orders",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of request durations for get order by UID",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ecommerce_orders",
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress requests to get order by UID",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		ordersCancelled,
		statusChanges,
		orderCreateDuration,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,
	)
}
