// Package metrics содержит prometheus-метрики сервиса: HTTP, база данных и бизнес-события бронирований
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	service string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec

	ReservationsCreated *prometheus.CounterVec
	Settlements         *prometheus.CounterVec
	Notifications       *prometheus.CounterVec
}

// New регистрирует метрики в переданном registerer.
// Для отключенных метрик передается приватный prometheus.NewRegistry(), чтобы вызовы оставались безопасными.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		service: serviceName,

		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency by operation.",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		DBQueryErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Database query errors by operation.",
		}, []string{"service", "operation"}),

		DBOpenConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Open connections in the pool.",
		}, []string{"service"}),

		DBInUse: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Connections currently in use.",
		}, []string{"service"}),

		DBIdle: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Idle connections in the pool.",
		}, []string{"service"}),

		DBWaitCount: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for.",
		}, []string{"service"}),

		ReservationsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "reservations_created_total",
			Help: "Reservations created in pending state.",
		}, []string{"service"}),

		Settlements: f.NewCounterVec(prometheus.CounterOpts{
			Name: "reservation_settlements_total",
			Help: "Settlement attempts by result.",
		}, []string{"service", "result"}),

		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "reservation_notifications_total",
			Help: "Notification dispatches by kind and result.",
		}, []string{"service", "kind", "result"}),
	}
}

// Service возвращает имя сервиса, под которым пишутся метрики
func (m *Metrics) Service() string {
	return m.service
}

// IncReservationCreated увеличивает счетчик созданных бронирований
func (m *Metrics) IncReservationCreated() {
	m.ReservationsCreated.WithLabelValues(m.service).Inc()
}

// IncSettlement увеличивает счетчик оплат: result = confirmed | insufficient_balance
func (m *Metrics) IncSettlement(result string) {
	m.Settlements.WithLabelValues(m.service, result).Inc()
}

// IncNotification увеличивает счетчик уведомлений: result = sent | failed
func (m *Metrics) IncNotification(kind, result string) {
	m.Notifications.WithLabelValues(m.service, kind, result).Inc()
}
