package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	ordersCreated  prometheus.Counter
	ordersClosed   prometheus.Counter
	ordersDeleted  prometheus.Counter
	closeConflicts prometheus.Counter
	closedRevenue  prometheus.Counter
	overdueOrders  prometheus.Gauge
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New registers collectors with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers collectors with registerer, reusing any that
// are already registered under the same name.
func NewWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		ordersCreated: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toolrent_orders_created_total",
			Help: "Total number of rental orders created",
		})),
		ordersClosed: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toolrent_orders_closed_total",
			Help: "Total number of rental orders closed",
		})),
		ordersDeleted: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toolrent_orders_deleted_total",
			Help: "Total number of rental orders deleted",
		})),
		closeConflicts: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toolrent_order_close_conflicts_total",
			Help: "Close attempts rejected because the order was already closed",
		})),
		closedRevenue: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toolrent_closed_order_revenue_total",
			Help: "Sum of final prices of closed orders",
		})),
		overdueOrders: register(registerer, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "toolrent_overdue_open_orders",
			Help: "Open orders older than the overdue threshold at the last report",
		})),
		httpRequests: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "toolrent_http_requests_total",
			Help: "HTTP requests by route template, method and status code",
		}, []string{"route", "method", "code"})),
		httpDuration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "toolrent_http_request_duration_seconds",
			Help:    "HTTP request latency by route template and method",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"})),
	}
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) C {
	if err := registerer.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			existing, ok := already.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type: %T", already.ExistingCollector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}

// All recorders are safe on a nil receiver so callers may run without metrics.

func (m *Metrics) RecordOrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

func (m *Metrics) RecordOrderClosed(finalPrice float64) {
	if m == nil {
		return
	}
	m.ordersClosed.Inc()
	if finalPrice > 0 {
		m.closedRevenue.Add(finalPrice)
	}
}

func (m *Metrics) RecordOrderDeleted() {
	if m == nil {
		return
	}
	m.ordersDeleted.Inc()
}

func (m *Metrics) RecordCloseConflict() {
	if m == nil {
		return
	}
	m.closeConflicts.Inc()
}

func (m *Metrics) SetOverdueOrders(n int) {
	if m == nil {
		return
	}
	m.overdueOrders.Set(float64(n))
}

func (m *Metrics) RecordHTTPRequest(route, method string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, fmt.Sprintf("%d", code)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}
