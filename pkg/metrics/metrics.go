package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Исходы выделения места в комнате
const (
	AllocationCreated  = "created"
	AllocationRoomFull = "room_full"
	AllocationNotFound = "not_found"
	AllocationFailed   = "error"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal    *prometheus.CounterVec
	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge

	ReservationAllocations   *prometheus.CounterVec
	ReservationCancellations prometheus.Counter
	ReservationsInvalidated  prometheus.Counter
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),
		DBInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		ReservationAllocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_allocations_total",
			Help:        "Reservation allocation attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		ReservationCancellations: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_cancellations_total",
			Help:        "Reservations cancelled by students",
			ConstLabels: constLabels,
		}),
		ReservationsInvalidated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_invalidated_total",
			Help:        "Reservations invalidated by the year-end sweep",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.ReservationAllocations,
		m.ReservationCancellations,
		m.ReservationsInvalidated,
	)

	return m
}

// IncAllocation учитывает попытку выделения места
func (m *Metrics) IncAllocation(outcome string) {
	if m == nil {
		return
	}
	m.ReservationAllocations.WithLabelValues(outcome).Inc()
}

// IncCancellation учитывает отмену бронирования студентом
func (m *Metrics) IncCancellation() {
	if m == nil {
		return
	}
	m.ReservationCancellations.Inc()
}

// AddInvalidated учитывает бронирования, закрытые по окончании учебного года
func (m *Metrics) AddInvalidated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ReservationsInvalidated.Add(float64(n))
}
