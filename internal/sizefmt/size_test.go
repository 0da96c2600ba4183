package sizefmt

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{"100B", 100, false},
		{"1KB", 1000, false},
		{"1MB", 1000 * 1000, false},
		{"1GB", 1000 * 1000 * 1000, false},

		{"1KiB", 1024, false},
		{"1MiB", 1024 * 1024, false},
		{"1GiB", 1024 * 1024 * 1024, false},

		{"100 KB", 100 * 1000, false},
		{"10 MiB", 10 * 1024 * 1024, false},

		{"100kb", 100 * 1000, false},
		{"1mb", 1000 * 1000, false},

		{"1024", 1024, false},
		{"0", 0, false},

		{"", 0, true},
		{"invalid", 0, true},
		{"-100KB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.0 KiB"},
		{1024 * 1024, "1.0 MiB"},
		{1024 * 1024 * 1024, "1.0 GiB"},
		{1536, "1.5 KiB"},
		{-100, "-100 B"},
	}

	for _, tt := range tests {
		got := Format(tt.input)
		if got != tt.expected {
			t.Errorf("Format(%d) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1000, "1.0 kB"},
		{1000 * 1000, "1.0 MB"},
		{1000 * 1000 * 1000, "1.0 GB"},
		{1500, "1.5 kB"},
	}

	for _, tt := range tests {
		got := FormatDecimal(tt.input)
		if got != tt.expected {
			t.Errorf("FormatDecimal(%d) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(0); got != "unlimited" {
		t.Errorf("FormatRate(0) = %q, want unlimited", got)
	}
	if got := FormatRate(-5); got != "unlimited" {
		t.Errorf("FormatRate(-5) = %q, want unlimited", got)
	}
	if got := FormatRate(1024 * 1024); got != "1.0 MiB/s" {
		t.Errorf("FormatRate(1MiB) = %q, want 1.0 MiB/s", got)
	}
}

func TestEstimateDuration(t *testing.T) {
	if got := EstimateDuration(1000, 0); got != 0 {
		t.Errorf("EstimateDuration with unlimited rate = %v, want 0", got)
	}
	if got := EstimateDuration(0, 1000); got != 0 {
		t.Errorf("EstimateDuration with zero size = %v, want 0", got)
	}
	got := EstimateDuration(2048, 1024)
	if got != 2*time.Second {
		t.Errorf("EstimateDuration(2048, 1024) = %v, want 2s", got)
	}
}
