// Package codec implements the streaming authenticated-encryption
// container used to move a file between toc client and server without
// ever holding the whole thing in memory.
package codec

import "errors"

// Sentinel errors returned by block encode/decode and by the
// Reader/Writer wrappers around them. Callers should use errors.Is.
var (
	// ErrInvalidHeader is returned when a block's magic bytes don't
	// match, or the block is shorter than a header.
	ErrInvalidHeader = errors.New("codec: invalid block header")

	// ErrUnsupportedVariant is returned when a header parses but
	// declares a version/variant this build doesn't implement.
	ErrUnsupportedVariant = errors.New("codec: unsupported version or variant")

	// ErrInvalidChunk is returned when the source produced a
	// truncated, non-zero-length read where a full block was
	// expected.
	ErrInvalidChunk = errors.New("codec: truncated block")

	// ErrInvalidBlockCounter is returned when a block's counter is
	// inconsistent with the sub-stream it claims to belong to:
	// reordering, splicing, or resuming a salt after it was
	// superseded by another sub-stream.
	ErrInvalidBlockCounter = errors.New("codec: invalid block counter")

	// ErrAuthentication is returned when Poly1305 tag verification
	// fails: wrong passphrase, or the ciphertext was tampered with.
	ErrAuthentication = errors.New("codec: authentication failed")

	// ErrExhausted is returned by Writer.Write when the per-stream
	// block counter has already reached its maximum value and no
	// further block can be emitted under the current salt.
	ErrExhausted = errors.New("codec: stream block counter exhausted")

	// ErrSeekUnsupported is returned by Reader.Seek when the
	// underlying reader doesn't implement io.Seeker.
	ErrSeekUnsupported = errors.New("codec: underlying reader is not seekable")

	// ErrNegativeSeek is returned when a Seek would land before the
	// start of the stream.
	ErrNegativeSeek = errors.New("codec: seek before start of stream")
)
