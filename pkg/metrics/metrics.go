package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus коллекторов сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueriesTotal     *prometheus.CounterVec
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	// Бизнес-метрики
	ReservationsCreated  *prometheus.CounterVec
	BlockQuotesTotal     *prometheus.CounterVec
	AvailabilitySearches *prometheus.CounterVec
	ReportsGenerated     *prometheus.CounterVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

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

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{}),

		ReservationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Number of created reservations",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		BlockQuotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "block_booking_quotes_total",
			Help:        "Number of block booking quotes by eligibility",
			ConstLabels: constLabels,
		}, []string{"eligible"}),

		AvailabilitySearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_searches_total",
			Help:        "Number of availability searches by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		ReportsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reports_generated_total",
			Help:        "Number of generated reports by kind and format",
			ConstLabels: constLabels,
		}, []string{"kind", "format"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.ReservationsCreated,
		m.BlockQuotesTotal,
		m.AvailabilitySearches,
		m.ReportsGenerated,
	)

	return m
}

// ObserveReservationCreated увеличивает счетчик созданных бронирований.
// Безопасен для nil (метрики выключены).
func (m *Metrics) ObserveReservationCreated(kind string, count int) {
	if m == nil {
		return
	}
	m.ReservationsCreated.WithLabelValues(kind).Add(float64(count))
}

// ObserveBlockQuote учитывает расчет групповой скидки
func (m *Metrics) ObserveBlockQuote(eligible bool) {
	if m == nil {
		return
	}
	label := "false"
	if eligible {
		label = "true"
	}
	m.BlockQuotesTotal.WithLabelValues(label).Inc()
}

// ObserveAvailabilitySearch учитывает поиск свободных номеров
func (m *Metrics) ObserveAvailabilitySearch(outcome string) {
	if m == nil {
		return
	}
	m.AvailabilitySearches.WithLabelValues(outcome).Inc()
}

// ObserveReport учитывает сформированный отчет
func (m *Metrics) ObserveReport(kind, format string) {
	if m == nil {
		return
	}
	m.ReportsGenerated.WithLabelValues(kind, format).Inc()
}
