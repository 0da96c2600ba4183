package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(reg)

	if m == nil {
		t.Fatal("NewMetricsWithRegistry returned nil")
	}
	if m.UploadsActive == nil {
		t.Error("UploadsActive metric is nil")
	}
	if m.DownloadsActive == nil {
		t.Error("DownloadsActive metric is nil")
	}
	if m.AuthFailures == nil {
		t.Error("AuthFailures metric is nil")
	}
}

func TestRecordUploadStartEnd(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(reg)

	m.RecordUploadStart()
	if got := testutil.ToFloat64(m.UploadsActive); got != 1 {
		t.Errorf("UploadsActive = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.UploadsTotal); got != 1 {
		t.Errorf("UploadsTotal = %v, want 1", got)
	}

	m.RecordUploadEnd(1024, 0.5, "")
	if got := testutil.ToFloat64(m.UploadsActive); got != 0 {
		t.Errorf("UploadsActive after end = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.UploadBytesTotal); got != 1024 {
		t.Errorf("UploadBytesTotal = %v, want 1024", got)
	}
}

func TestRecordUploadEndWithError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(reg)

	m.RecordUploadStart()
	m.RecordUploadEnd(0, 0.1, "auth_failed")

	if got := testutil.ToFloat64(m.UploadErrors.WithLabelValues("auth_failed")); got != 1 {
		t.Errorf("UploadErrors[auth_failed] = %v, want 1", got)
	}
}

func TestRecordDownloadStartEnd(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(reg)

	m.RecordDownloadStart()
	if got := testutil.ToFloat64(m.DownloadsActive); got != 1 {
		t.Errorf("DownloadsActive = %v, want 1", got)
	}

	m.RecordDownloadEnd(2048, 0.2, "")
	if got := testutil.ToFloat64(m.DownloadsActive); got != 0 {
		t.Errorf("DownloadsActive after end = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.DownloadBytesTotal); got != 2048 {
		t.Errorf("DownloadBytesTotal = %v, want 2048", got)
	}
}

func TestSetStorageStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(reg)

	m.SetStorageStats(5, 10240)
	if got := testutil.ToFloat64(m.UploadsStored); got != 5 {
		t.Errorf("UploadsStored = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.StorageBytes); got != 10240 {
		t.Errorf("StorageBytes = %v, want 10240", got)
	}
}

func TestRecordGCSweep(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(reg)

	m.RecordGCSweep(3)
	if got := testutil.ToFloat64(m.GCRuns); got != 1 {
		t.Errorf("GCRuns = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.GCDeletions); got != 3 {
		t.Errorf("GCDeletions = %v, want 3", got)
	}
}

func TestRecordAuthFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(reg)

	m.RecordAuthFailure()
	m.RecordAuthFailure()
	if got := testutil.ToFloat64(m.AuthFailures); got != 2 {
		t.Errorf("AuthFailures = %v, want 2", got)
	}
}

func TestRecordCodecError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(reg)

	m.RecordCodecError("invalid_header")
	m.RecordCodecError("invalid_header")
	m.RecordCodecError("unsupported_variant")

	if got := testutil.ToFloat64(m.CodecErrorsTotal.WithLabelValues("invalid_header")); got != 2 {
		t.Errorf("CodecErrorsTotal[invalid_header] = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.CodecErrorsTotal.WithLabelValues("unsupported_variant")); got != 1 {
		t.Errorf("CodecErrorsTotal[unsupported_variant] = %v, want 1", got)
	}
}

func TestDefaultMetrics(t *testing.T) {
	m1 := Default()
	m2 := Default()
	if m1 != m2 {
		t.Error("Default() returned different instances")
	}
}
