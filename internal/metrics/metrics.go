// Package metrics provides Prometheus metrics for tocd.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "toc"

// Metrics contains all Prometheus metrics for the server.
type Metrics struct {
	// Upload metrics
	UploadsActive      prometheus.Gauge
	UploadsTotal        prometheus.Counter
	UploadErrors         *prometheus.CounterVec
	UploadBytesTotal     prometheus.Counter
	UploadLatency        prometheus.Histogram

	// Download metrics
	DownloadsActive   prometheus.Gauge
	DownloadsTotal    prometheus.Counter
	DownloadErrors    *prometheus.CounterVec
	DownloadBytesTotal prometheus.Counter
	DownloadLatency   prometheus.Histogram

	// Storage metrics
	UploadsStored   prometheus.Gauge
	StorageBytes    prometheus.Gauge
	GCRuns          prometheus.Counter
	GCDeletions     prometheus.Counter

	// Auth metrics
	AuthFailures prometheus.Counter

	// CodecErrorsTotal counts wire-format failures the server
	// detects in an uploaded blob's unencrypted block header
	// (internal/codec can be validated without the passphrase),
	// vectored by the codec sentinel error it matched.
	CodecErrorsTotal *prometheus.CounterVec
}

var (
	defaultMetrics *Metrics
	metricsOnce    sync.Once
)

// Default returns the default metrics instance.
func Default() *Metrics {
	metricsOnce.Do(func() {
		defaultMetrics = NewMetrics()
	})
	return defaultMetrics
}

// NewMetrics creates a new Metrics instance registered against the
// default Prometheus registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates a new Metrics instance registered
// against reg, so tests can use their own registry instead of the
// global one.
func NewMetricsWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		UploadsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uploads_active",
			Help:      "Number of uploads currently in progress",
		}),
		UploadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Total number of uploads started",
		}),
		UploadErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_errors_total",
			Help:      "Total upload errors by type",
		}, []string{"error_type"}),
		UploadBytesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_bytes_total",
			Help:      "Total ciphertext bytes received from uploads",
		}),
		UploadLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_latency_seconds",
			Help:      "Histogram of upload completion latency",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}),

		DownloadsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "downloads_active",
			Help:      "Number of downloads currently in progress",
		}),
		DownloadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "downloads_total",
			Help:      "Total number of downloads started",
		}),
		DownloadErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "download_errors_total",
			Help:      "Total download errors by type",
		}, []string{"error_type"}),
		DownloadBytesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "download_bytes_total",
			Help:      "Total ciphertext bytes served to downloads",
		}),
		DownloadLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "download_latency_seconds",
			Help:      "Histogram of download completion latency",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}),

		UploadsStored: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uploads_stored",
			Help:      "Number of uploads currently on disk",
		}),
		StorageBytes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "storage_bytes",
			Help:      "Total bytes of blob storage currently in use",
		}),
		GCRuns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gc_runs_total",
			Help:      "Total number of garbage collection sweeps",
		}),
		GCDeletions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gc_deletions_total",
			Help:      "Total number of uploads deleted by garbage collection",
		}),

		AuthFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_failures_total",
			Help:      "Total number of rejected bearer tokens",
		}),

		CodecErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "codec_errors_total",
			Help:      "Total block-header validation failures on uploaded blobs, by codec error kind",
		}, []string{"kind"}),
	}
}

// RecordUploadStart records an upload beginning.
func (m *Metrics) RecordUploadStart() {
	m.UploadsActive.Inc()
	m.UploadsTotal.Inc()
}

// RecordUploadEnd records an upload finishing, successfully or not.
func (m *Metrics) RecordUploadEnd(bytes int64, latencySeconds float64, errType string) {
	m.UploadsActive.Dec()
	m.UploadBytesTotal.Add(float64(bytes))
	m.UploadLatency.Observe(latencySeconds)
	if errType != "" {
		m.UploadErrors.WithLabelValues(errType).Inc()
	}
}

// RecordDownloadStart records a download beginning.
func (m *Metrics) RecordDownloadStart() {
	m.DownloadsActive.Inc()
	m.DownloadsTotal.Inc()
}

// RecordDownloadEnd records a download finishing, successfully or
// not.
func (m *Metrics) RecordDownloadEnd(bytes int64, latencySeconds float64, errType string) {
	m.DownloadsActive.Dec()
	m.DownloadBytesTotal.Add(float64(bytes))
	m.DownloadLatency.Observe(latencySeconds)
	if errType != "" {
		m.DownloadErrors.WithLabelValues(errType).Inc()
	}
}

// SetStorageStats updates the gauges describing what's currently on
// disk.
func (m *Metrics) SetStorageStats(uploads int, bytes int64) {
	m.UploadsStored.Set(float64(uploads))
	m.StorageBytes.Set(float64(bytes))
}

// RecordGCSweep records one garbage collection pass and how many
// uploads it removed.
func (m *Metrics) RecordGCSweep(deleted int) {
	m.GCRuns.Inc()
	m.GCDeletions.Add(float64(deleted))
}

// RecordAuthFailure records a rejected bearer token.
func (m *Metrics) RecordAuthFailure() {
	m.AuthFailures.Inc()
}

// RecordCodecError records a block-header validation failure, kind
// being the short name of the codec sentinel error that matched
// (e.g. "invalid_header", "unsupported_variant").
func (m *Metrics) RecordCodecError(kind string) {
	m.CodecErrorsTotal.WithLabelValues(kind).Inc()
}
