// Package ratelimit wraps an io.Reader or io.Writer with a token
// bucket so a single upload or download can't starve the rest of the
// server's bandwidth budget.
package ratelimit

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// minBurst and burstSeconds set the token bucket's burst size as a
// function of the configured rate: burstSeconds (a quarter second)
// of the rate's allowance, so a generous rate limit doesn't
// degenerate into no limiting at all for the first burst of a
// short-lived transfer, but never less than minBurst, so a single
// codec block (internal/codec.BlockSize) always fits in one burst.
const (
	minBurst     = 16 * 1024
	burstSeconds = 0.25
)

func burstFor(bytesPerSecond int64) int {
	b := int(float64(bytesPerSecond) * burstSeconds)
	if b < minBurst {
		return minBurst
	}
	return b
}

// limiter holds the token bucket and chunk size shared by Reader and
// Writer; both stream types wait for the same policy, just on
// opposite ends of the copy.
type limiter struct {
	bucket *rate.Limiter
	chunk  int
}

func newLimiter(bytesPerSecond int64) limiter {
	burst := burstFor(bytesPerSecond)
	return limiter{
		bucket: rate.NewLimiter(rate.Limit(bytesPerSecond), burst),
		chunk:  burst,
	}
}

// Reader wraps an io.Reader with a bytes-per-second token bucket.
type Reader struct {
	r   io.Reader
	lim limiter
	ctx context.Context
}

// NewReader returns a rate-limited reader throttled to
// bytesPerSecond. If bytesPerSecond is 0 or negative, r is returned
// unwrapped.
func NewReader(ctx context.Context, r io.Reader, bytesPerSecond int64) io.Reader {
	if bytesPerSecond <= 0 {
		return r
	}
	return &Reader{r: r, lim: newLimiter(bytesPerSecond), ctx: ctx}
}

func (r *Reader) Read(p []byte) (int, error) {
	select {
	case <-r.ctx.Done():
		return 0, r.ctx.Err()
	default:
	}
	if len(p) > r.lim.chunk {
		p = p[:r.lim.chunk]
	}

	n, err := r.r.Read(p)
	if n <= 0 {
		return n, err
	}
	if waitErr := r.lim.bucket.WaitN(r.ctx, n); waitErr != nil {
		return n, waitErr
	}
	return n, err
}

// Writer wraps an io.Writer with a bytes-per-second token bucket.
type Writer struct {
	w   io.Writer
	lim limiter
	ctx context.Context
}

// NewWriter returns a rate-limited writer throttled to
// bytesPerSecond. If bytesPerSecond is 0 or negative, w is returned
// unwrapped.
func NewWriter(ctx context.Context, w io.Writer, bytesPerSecond int64) io.Writer {
	if bytesPerSecond <= 0 {
		return w
	}
	return &Writer{w: w, lim: newLimiter(bytesPerSecond), ctx: ctx}
}

func (w *Writer) Write(p []byte) (int, error) {
	select {
	case <-w.ctx.Done():
		return 0, w.ctx.Err()
	default:
	}

	total := 0
	for len(p) > 0 {
		chunk := len(p)
		if chunk > w.lim.chunk {
			chunk = w.lim.chunk
		}
		if err := w.lim.bucket.WaitN(w.ctx, chunk); err != nil {
			return total, err
		}
		n, err := w.w.Write(p[:chunk])
		total += n
		if err != nil {
			return total, err
		}
		if n < chunk {
			return total, io.ErrShortWrite
		}
		p = p[chunk:]
	}
	return total, nil
}
