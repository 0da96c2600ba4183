// Package sizefmt parses and formats human-readable byte sizes for
// CLI flags and progress output.
package sizefmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Parse parses a human-readable size string to bytes.
// Supported formats:
//   - Decimal units: 100B, 10KB, 1MB, 1GB, 1TB (1KB = 1000 bytes)
//   - Binary units: 10KiB, 1MiB, 1GiB, 1TiB (1KiB = 1024 bytes)
//   - Plain number: 1024 (interpreted as bytes)
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("sizefmt: empty size string")
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("sizefmt: invalid size %q: %w", s, err)
	}
	return int64(n), nil
}

// Format renders bytes using IEC binary units (KiB, MiB, ...).
func Format(bytes int64) string {
	if bytes < 0 {
		return fmt.Sprintf("%d B", bytes)
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatDecimal renders bytes using SI decimal units (KB, MB, ...).
func FormatDecimal(bytes int64) string {
	if bytes < 0 {
		return fmt.Sprintf("%d B", bytes)
	}
	return humanize.Bytes(uint64(bytes))
}

// FormatRate renders a bytes-per-second throughput, e.g. for
// reporting a configured internal/ratelimit ceiling back to an
// operator or user. Zero or negative is reported as unlimited rather
// than "0 B/s", since that's what internal/ratelimit treats it as.
func FormatRate(bytesPerSecond int64) string {
	if bytesPerSecond <= 0 {
		return "unlimited"
	}
	return Format(bytesPerSecond) + "/s"
}

// EstimateDuration returns how long a transfer of size bytes would
// take at bytesPerSecond, for progress estimates. It returns 0 when
// bytesPerSecond is unlimited (<= 0).
func EstimateDuration(size, bytesPerSecond int64) time.Duration {
	if bytesPerSecond <= 0 || size <= 0 {
		return 0
	}
	return time.Duration(size) * time.Second / time.Duration(bytesPerSecond)
}
