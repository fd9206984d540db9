package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConversionMetrics holds all prometheus collectors for the conversion pipeline.
type ConversionMetrics struct {
	// Conversion outcomes
	TransactionsCreatedTotal *prometheus.CounterVec
	TransactionErrorsTotal   *prometheus.CounterVec

	// Rate resolution
	RateCacheHitsTotal    prometheus.Counter
	RateCacheMissesTotal  prometheus.Counter
	ProviderFetchesTotal  *prometheus.CounterVec
	ProviderFetchDuration prometheus.Histogram
}

// NewConversionMetrics registers and returns the pipeline collectors.
func NewConversionMetrics() *ConversionMetrics {
	return &ConversionMetrics{
		TransactionsCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_transactions_created_total",
				Help: "Total number of persisted conversion transactions",
			},
			[]string{"input_currency", "output_currency"},
		),
		TransactionErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_transaction_errors_total",
				Help: "Total number of failed conversion requests by error kind",
			},
			[]string{"error_type"},
		),
		RateCacheHitsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fx_rate_cache_hits_total",
				Help: "Total number of rate cache hits",
			},
		),
		RateCacheMissesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fx_rate_cache_misses_total",
				Help: "Total number of rate cache misses (including expired entries)",
			},
		),
		ProviderFetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_provider_fetches_total",
				Help: "Total number of rate provider fetches by outcome",
			},
			[]string{"outcome"},
		),
		ProviderFetchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fx_provider_fetch_duration_seconds",
				Help:    "Rate provider fetch latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 8),
			},
		),
	}
}

// RecordTransactionCreated records a persisted conversion.
func (m *ConversionMetrics) RecordTransactionCreated(inputCurrency, outputCurrency string) {
	m.TransactionsCreatedTotal.WithLabelValues(inputCurrency, outputCurrency).Inc()
}

// RecordTransactionError records a failed conversion request.
func (m *ConversionMetrics) RecordTransactionError(errorType string) {
	m.TransactionErrorsTotal.WithLabelValues(errorType).Inc()
}

// RecordCacheHit records a rate cache hit.
func (m *ConversionMetrics) RecordCacheHit() {
	m.RateCacheHitsTotal.Inc()
}

// RecordCacheMiss records a rate cache miss.
func (m *ConversionMetrics) RecordCacheMiss() {
	m.RateCacheMissesTotal.Inc()
}

// RecordProviderFetch records a provider fetch with its outcome and latency.
func (m *ConversionMetrics) RecordProviderFetch(outcome string, durationSeconds float64) {
	m.ProviderFetchesTotal.WithLabelValues(outcome).Inc()
	m.ProviderFetchDuration.Observe(durationSeconds)
}
