package codec

import (
	"io"
)

// subStreamState tracks everything a Reader needs to validate blocks
// belonging to one salt, without trusting the counter a new block
// claims in isolation.
type subStreamState struct {
	key [KeySize]byte

	// firstBlock is the global block index at which this sub-stream's
	// counter-0 block was (or would have been) seen.
	firstBlock int64

	// nextBoundary is the global block index at which another
	// sub-stream was observed to interrupt this one. -1 means this
	// sub-stream has not yet been interrupted, and may still resume.
	nextBoundary int64
}

// Reader wraps an io.Reader carrying a concatenation of one or more
// sequential codec sub-streams, decrypting blocks as they are
// consumed and rejecting any block whose counter is inconsistent with
// where its salt was last seen. A sub-stream cannot resume once a
// different salt has appeared after it.
type Reader struct {
	r          io.Reader
	passphrase []byte

	states   map[[SaltSize]byte]*subStreamState
	lastSalt *[SaltSize]byte

	globalPos uint64

	block   [BlockSize]byte
	payload []byte
	cursor  int
}

// NewReader returns a Reader ready to decrypt blocks read from r using
// passphrase. Every distinct salt encountered is treated as its own
// sub-stream and keyed independently.
func NewReader(r io.Reader, passphrase []byte) *Reader {
	return &Reader{
		r:          r,
		passphrase: append([]byte(nil), passphrase...),
		states:     make(map[[SaltSize]byte]*subStreamState),
		cursor:     PayloadSize,
	}
}

// Read satisfies io.Reader, serving decrypted plaintext a block at a
// time.
func (dr *Reader) Read(p []byte) (int, error) {
	if dr.cursor == PayloadSize {
		ok, err := dr.readBlock()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, io.EOF
		}
	}
	n := copy(p, dr.payload[dr.cursor:])
	dr.cursor += n
	dr.globalPos += uint64(n)
	return n, nil
}

// readBlock reads and decrypts the next BlockSize block from the
// source, or reports false if the source is cleanly at EOF.
func (dr *Reader) readBlock() (bool, error) {
	n, err := io.ReadFull(dr.r, dr.block[:])
	if err == io.EOF {
		return false, nil
	}
	if err == io.ErrUnexpectedEOF {
		return false, ErrInvalidChunk
	}
	if err != nil {
		return false, err
	}
	if n != BlockSize {
		return false, ErrInvalidChunk
	}

	h, err := ParseHeader(dr.block[:HeaderSize])
	if err != nil {
		return false, err
	}

	st, err := dr.resolveState(h)
	if err != nil {
		return false, err
	}

	_, plaintext, err := decodeBlock(dr.block[:], st.key)
	if err != nil {
		return false, err
	}
	dr.payload = plaintext
	dr.cursor = 0
	return true, nil
}

// resolveState implements the sub-stream bookkeeping: it records a
// cross-stream transition against whichever salt was last active,
// then looks up (or creates) the state for h.Salt and validates h's
// counter against it.
func (dr *Reader) resolveState(h Header) (*subStreamState, error) {
	currentBlock := int64(dr.globalPos / PayloadSize)

	if dr.lastSalt != nil && *dr.lastSalt != h.Salt {
		if last, ok := dr.states[*dr.lastSalt]; ok {
			last.nextBoundary = currentBlock
		}
	}
	salt := h.Salt
	dr.lastSalt = &salt

	if st, ok := dr.states[h.Salt]; ok {
		if st.nextBoundary >= 0 && st.nextBoundary <= currentBlock {
			return nil, ErrInvalidBlockCounter
		}
		if currentBlock != st.firstBlock+int64(h.Counter) {
			return nil, ErrInvalidBlockCounter
		}
		return st, nil
	}

	firstBlock := currentBlock - int64(h.Counter)
	if firstBlock < 0 {
		return nil, ErrInvalidBlockCounter
	}
	st := &subStreamState{
		key:          deriveKey(dr.passphrase, h),
		firstBlock:   firstBlock,
		nextBoundary: -1,
	}
	dr.states[h.Salt] = st
	return st, nil
}
