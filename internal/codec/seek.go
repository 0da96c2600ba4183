package codec

import "io"

// Seek implements io.Seeker on top of Reader, provided the underlying
// source also implements io.Seeker. Seeking maps a plaintext offset to
// the containing block's ciphertext offset, re-reads that block, and
// positions the in-block cursor at the requested intra-block offset.
//
// Seeking forgets which salt was last active (so the next block read
// is never mistaken for a continuation of whatever sub-stream used to
// be at the old position) but does not discard the accumulated
// sub-stream state map: a sub-stream's counter history survives a
// seek away and back.
func (dr *Reader) Seek(offset int64, whence int) (int64, error) {
	seeker, ok := dr.r.(io.Seeker)
	if !ok {
		return 0, ErrSeekUnsupported
	}

	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(dr.globalPos) + offset
	case io.SeekEnd:
		end, err := seeker.Seek(0, io.SeekEnd)
		if err != nil {
			return 0, err
		}
		blocks := end / BlockSize
		abs = blocks*PayloadSize + offset
	default:
		return 0, ErrNegativeSeek
	}
	if abs < 0 {
		return 0, ErrNegativeSeek
	}

	block := abs / PayloadSize
	intra := abs % PayloadSize

	if _, err := seeker.Seek(block*BlockSize, io.SeekStart); err != nil {
		return 0, err
	}
	dr.lastSalt = nil
	dr.globalPos = uint64(block) * PayloadSize

	ok2, err := dr.readBlock()
	if err != nil {
		return 0, err
	}
	if ok2 {
		dr.cursor = int(intra)
		dr.globalPos += uint64(intra)
	} else {
		dr.cursor = PayloadSize
	}
	return abs, nil
}
