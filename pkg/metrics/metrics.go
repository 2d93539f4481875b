package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор Prometheus метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration   *prometheus.HistogramVec
	DBConnections     *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec
	DBWaitDurationSec *prometheus.GaugeVec

	// Бизнес-метрики
	AvailabilityDecisions *prometheus.CounterVec
	BookingConflicts      *prometheus.CounterVec
	QuoteCacheRequests    *prometheus.CounterVec
	ExpiredHolds          *prometheus.CounterVec
}

// New создает коллектор и регистрирует метрики в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает коллектор с указанным registry (используется в тестах)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),

		DBConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{}),

		DBWaitDurationSec: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_wait_duration_seconds",
			Help:        "Total time blocked waiting for a new connection",
			ConstLabels: constLabels,
		}, []string{}),

		AvailabilityDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_decisions_total",
			Help:        "Availability checks by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		BookingConflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Booking attempts rejected because the slot filled up",
			ConstLabels: constLabels,
		}, []string{}),

		QuoteCacheRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "quote_cache_requests_total",
			Help:        "Price quote cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		ExpiredHolds: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "expired_holds_total",
			Help:        "Provisional holds released by the expiry worker",
			ConstLabels: constLabels,
		}, []string{}),
	}
}
