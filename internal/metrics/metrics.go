// Package metrics defines the Prometheus instruments of the service. Instruments are
// registered on the registry passed to New so tests can use a private one.
package metrics

import (
	"context"

	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	OrderEventsTotal    *prometheus.CounterVec
	AcceptConflicts     prometheus.Counter
	AvailableOrders     prometheus.Gauge
	RateLimitExceeded   prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		OrderEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_events_total",
				Help: "Order state changes committed, by event type",
			},
			[]string{"type"},
		),
		AcceptConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "order_accept_conflicts_total",
			Help: "Accept attempts rejected because the order was no longer available",
		}),
		AvailableOrders: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "available_orders",
			Help: "Pending orders without a traveller, as of the last refresh",
		}),
		RateLimitExceeded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rate_limit_exceeded_total",
			Help: "Total number of rejected HTTP requests due to rate limiting",
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.OrderEventsTotal,
		m.AcceptConflicts,
		m.AvailableOrders,
		m.RateLimitExceeded,
	)
	return m
}

// CountingPublisher counts committed order events before handing them on.
type CountingPublisher struct {
	next    ports.EventPublisher
	metrics *Metrics
}

func NewCountingPublisher(next ports.EventPublisher, m *Metrics) *CountingPublisher {
	return &CountingPublisher{next: next, metrics: m}
}

func (p *CountingPublisher) Publish(ctx context.Context, events ...order.Event) error {
	for _, e := range events {
		p.metrics.OrderEventsTotal.WithLabelValues(string(e.Type)).Inc()
	}
	return p.next.Publish(ctx, events...)
}
