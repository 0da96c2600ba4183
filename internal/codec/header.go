package codec

import "fmt"

const (
	// PayloadSize is the number of plaintext bytes carried by a
	// single block.
	PayloadSize = 512

	// HeaderSize is the size in bytes of the unencrypted block
	// header that precedes the ciphertext.
	HeaderSize = 16

	// TagSize is the size of the Poly1305 authentication tag
	// appended after the ciphertext.
	TagSize = 16

	// BlockSize is the total on-wire size of one block:
	// header + ciphertext (== payload) + tag.
	BlockSize = HeaderSize + PayloadSize + TagSize

	// SaltSize is the number of random bytes drawn per sub-stream.
	SaltSize = 8

	// KeySize is the length in bytes of a derived ChaCha20-Poly1305
	// key.
	KeySize = 32

	// Version identifies the header layout. There is currently one
	// version.
	Version = 0

	// Variant identifies the KDF/AEAD pairing. There is currently
	// one variant: Argon2i + ChaCha20-Poly1305.
	Variant = 1
)

// Magic is the 3-byte tag at the start of every block header.
var Magic = [3]byte{'T', 'O', 'C'}

// Header is the 16-byte plaintext preamble of a block: it carries
// enough information for a reader to derive the block's key and
// place it within its sub-stream, without trusting anything the
// ciphertext itself claims.
type Header struct {
	Version uint8
	Variant uint8
	Counter uint32
	Salt    [SaltSize]byte
}

// Marshal encodes h into the 16-byte wire layout:
//
//	0:3   magic "TOC"
//	3:4   version (high nibble) | variant (low nibble)
//	4:8   counter, big-endian
//	8:16  salt
func (h Header) Marshal() [HeaderSize]byte {
	var b [HeaderSize]byte
	copy(b[0:3], Magic[:])
	b[3] = (h.Version << 4) | (h.Variant & 0x0f)
	b[4] = byte(h.Counter >> 24)
	b[5] = byte(h.Counter >> 16)
	b[6] = byte(h.Counter >> 8)
	b[7] = byte(h.Counter)
	copy(b[8:16], h.Salt[:])
	return b
}

// ParseHeader decodes and validates the 16-byte header at the front
// of b. b must be at least HeaderSize bytes.
func ParseHeader(b []byte) (Header, error) {
	var h Header
	if len(b) < HeaderSize {
		return h, fmt.Errorf("%w: short header (%d bytes)", ErrInvalidHeader, len(b))
	}
	if b[0] != Magic[0] || b[1] != Magic[1] || b[2] != Magic[2] {
		return h, ErrInvalidHeader
	}
	h.Version = b[3] >> 4
	h.Variant = b[3] & 0x0f
	if h.Version != Version || h.Variant != Variant {
		return h, fmt.Errorf("%w: version=%d variant=%d", ErrUnsupportedVariant, h.Version, h.Variant)
	}
	h.Counter = uint32(b[4])<<24 | uint32(b[5])<<16 | uint32(b[6])<<8 | uint32(b[7])
	copy(h.Salt[:], b[8:16])
	return h, nil
}

// kdfSalt returns the 16-byte salt fed to Argon2i to derive this
// header's key: the sub-stream salt concatenated with the magic and
// version/variant bytes, so that a passphrase reused across variants
// never collides on key material.
func (h Header) kdfSalt() []byte {
	s := make([]byte, 0, 16)
	s = append(s, h.Salt[:]...)
	s = append(s, Magic[:]...)
	s = append(s, h.Version)
	s = append(s, Magic[:]...)
	s = append(s, h.Variant)
	return s
}

// nonce returns the 12-byte ChaCha20-Poly1305 nonce for this header:
// the sub-stream salt followed by the big-endian block counter.
func (h Header) nonce() [12]byte {
	var n [12]byte
	copy(n[0:8], h.Salt[:])
	n[8] = byte(h.Counter >> 24)
	n[9] = byte(h.Counter >> 16)
	n[10] = byte(h.Counter >> 8)
	n[11] = byte(h.Counter)
	return n
}
