// Package metrics holds the Prometheus collectors shared by ihavefood
// services. Collectors register on the default registry via promauto and are
// scraped by the metrics HTTP server each service runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GRPCMetrics observes the inbound gRPC surface.
type GRPCMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// BrokerMetrics observes messages crossing the event bus in both directions.
type BrokerMetrics struct {
	EventsConsumed  *prometheus.CounterVec
	EventsPublished *prometheus.CounterVec
}

// DeliveryMetrics counts the delivery-domain side effects.
type DeliveryMetrics struct {
	DeliveriesCreated prometheus.Counter
	RidersSynced      prometheus.Counter
	RidersNotified    prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	FeeQuotes         prometheus.Histogram
}

// NewGRPCMetrics creates gRPC metrics for a service.
func NewGRPCMetrics(serviceName string) *GRPCMetrics {
	return &GRPCMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_grpc_requests_total",
				Help: "Total number of gRPC requests",
			},
			[]string{"method", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    serviceName + "_grpc_request_duration_seconds",
				Help:    "gRPC request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// NewBrokerMetrics creates event-bus metrics for a service.
func NewBrokerMetrics(serviceName string) *BrokerMetrics {
	return &BrokerMetrics{
		EventsConsumed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_events_consumed_total",
				Help: "Messages consumed from the broker by routing key and outcome",
			},
			[]string{"key", "outcome"},
		),
		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_events_published_total",
				Help: "Messages published to the broker by routing key and outcome",
			},
			[]string{"key", "outcome"},
		),
	}
}

// NewDeliveryMetrics creates the delivery-domain metrics.
func NewDeliveryMetrics(serviceName string) *DeliveryMetrics {
	return &DeliveryMetrics{
		DeliveriesCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_deliveries_created_total",
				Help: "Total number of delivery records created",
			},
		),
		RidersSynced: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_riders_synced_total",
				Help: "Total number of riders synced from the directory",
			},
		),
		RidersNotified: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_riders_notified_total",
				Help: "Total number of rider notifications sent",
			},
		),
		StatusTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_status_transitions_total",
				Help: "Accepted delivery status transitions by target status",
			},
			[]string{"status"},
		),
		FeeQuotes: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    serviceName + "_delivery_fee_quotes",
				Help:    "Quoted delivery fees",
				Buckets: []float64{0, 50, 100},
			},
		),
	}
}

// RecordRequest records one finished gRPC request.
func (m *GRPCMetrics) RecordRequest(method, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, status).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordConsume records one consumed message and how it was settled.
func (m *BrokerMetrics) RecordConsume(key, outcome string) {
	m.EventsConsumed.WithLabelValues(key, outcome).Inc()
}

// RecordPublish records one publish attempt and its outcome.
func (m *BrokerMetrics) RecordPublish(key, outcome string) {
	m.EventsPublished.WithLabelValues(key, outcome).Inc()
}
