package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionListRequests *prometheus.CounterVec
	transactionListDuration prometheus.Histogram
	storeReadFailures       *prometheus.CounterVec
	kycSubmissions          *prometheus.CounterVec
	circuitBreakerState     *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the collectors on the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWithRegisterer registers the collectors on reg
func NewPrometheusMetricsWithRegisterer(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionListRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_list_requests_total",
				Help: "Total number of transaction listing requests",
			},
			[]string{"status"},
		),
		transactionListDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_list_duration_milliseconds",
				Help:    "Transaction listing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		storeReadFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_read_failures_total",
				Help: "Total number of failed transaction store reads",
			},
			[]string{"operation"},
		),
		kycSubmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kyc_submissions_total",
				Help: "Total number of KYC submissions by resulting status",
			},
			[]string{"status"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transactions.list":
		if status := tags["status"]; status != "" {
			m.transactionListRequests.WithLabelValues(status).Inc()
		}
	case "store.read.failed":
		m.storeReadFailures.WithLabelValues(tags["operation"]).Inc()
	case "kyc.submission":
		if status := tags["status"]; status != "" {
			m.kycSubmissions.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transactions.list":
		m.transactionListDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
