package codec

import "golang.org/x/crypto/argon2"

// Argon2i tuning. These match the original container format and are
// not configurable: changing them would silently break compatibility
// with every block already on disk.
const (
	argon2Time    = 3
	argon2MemoryKiB = 65536
	argon2Lanes   = 1
)

// deriveKey runs Argon2i over passphrase, salted with h's sub-stream
// salt and magic/version/variant bytes, producing the ChaCha20-Poly1305
// key for every block in h's sub-stream.
func deriveKey(passphrase []byte, h Header) [KeySize]byte {
	raw := argon2.Key(passphrase, h.kdfSalt(), argon2Time, argon2MemoryKiB, argon2Lanes, KeySize)
	var key [KeySize]byte
	copy(key[:], raw)
	return key
}
