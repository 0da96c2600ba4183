package codec

import (
	"crypto/rand"
	"io"
	"math"
)

// Writer wraps an io.Writer, buffering plaintext into PayloadSize
// blocks and emitting one sealed BlockSize block to the underlying
// sink per buffer-full. A single Writer covers a single sub-stream:
// one salt, one derived key, a monotonically increasing counter.
//
// The zero value is not usable; construct with NewWriter.
type Writer struct {
	w      io.Writer
	key    [KeySize]byte
	header Header

	buf [PayloadSize]byte
	pos int

	exhausted bool
	closed    bool
}

// NewWriter draws a fresh random salt, derives a key from passphrase
// under that salt, and returns a Writer ready to accept plaintext.
func NewWriter(w io.Writer, passphrase []byte) (*Writer, error) {
	var salt [SaltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	h := Header{Version: Version, Variant: Variant, Counter: 0, Salt: salt}
	return &Writer{
		w:      w,
		key:    deriveKey(passphrase, h),
		header: h,
	}, nil
}

// Write buffers p into the current block, flushing full blocks to the
// underlying writer as they fill. It satisfies io.Writer.
func (ew *Writer) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		n := copy(ew.buf[ew.pos:PayloadSize], p)
		ew.pos += n
		p = p[n:]
		total += n
		if ew.pos == PayloadSize {
			if err := ew.flushBlock(); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

func (ew *Writer) flushBlock() error {
	if ew.exhausted {
		return ErrExhausted
	}
	block, err := encodeBlock(ew.header, ew.buf[:], ew.key)
	if err != nil {
		return err
	}
	if _, err := ew.w.Write(block[:]); err != nil {
		return err
	}
	if ew.header.Counter == math.MaxUint32 {
		ew.exhausted = true
	} else {
		ew.header.Counter++
	}
	ew.pos = 0
	return nil
}

// Flush flushes the underlying sink if it implements an explicit
// Flush() error method (e.g. *bufio.Writer). It never emits a partial
// block; use Close/Finish for that.
func (ew *Writer) Flush() error {
	if f, ok := ew.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Finish flushes any buffered partial block, zero-padding its tail,
// and marks the stream complete. It is idempotent: calling it again
// after a successful call is a no-op.
func (ew *Writer) Finish() error {
	if ew.closed {
		return nil
	}
	if ew.pos > 0 {
		for i := ew.pos; i < PayloadSize; i++ {
			ew.buf[i] = 0
		}
		if err := ew.flushBlock(); err != nil {
			return err
		}
	}
	ew.closed = true
	return nil
}

// Close calls Finish and, if the underlying writer implements
// io.Closer, closes it too.
func (ew *Writer) Close() error {
	if err := ew.Finish(); err != nil {
		return err
	}
	if c, ok := ew.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
