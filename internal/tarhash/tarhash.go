// Package tarhash derives the storage key used to name a blob on disk
// from its public wordpass identifier, so the identifier typed into a
// URL never doubles as a filesystem path.
package tarhash

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	hashSize = 32

	argon2Time     = 3
	argon2MemoryKiB = 65536
	argon2Lanes    = 1
)

// Hash is an opaque, hex-displayable storage key.
type Hash [hashSize]byte

// Derive runs Argon2i over id's canonical string form, salted with
// salt, to produce the blob's storage key. salt is a deployment-wide
// constant, not a secret: it exists to keep this derivation distinct
// from the codec package's own KDF invocation over the same
// passphrase-shaped strings.
func Derive(id string, salt string) Hash {
	raw := argon2.Key([]byte(id), []byte(salt), argon2Time, argon2MemoryKiB, argon2Lanes, hashSize)
	var h Hash
	copy(h[:], raw)
	return h
}

// String renders h as lowercase hex.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Parse decodes a hex-encoded Hash previously produced by String.
func Parse(s string) (Hash, error) {
	var h Hash
	if len(s) != hashSize*2 {
		return h, fmt.Errorf("tarhash: invalid length %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("tarhash: %w", err)
	}
	copy(h[:], b)
	return h, nil
}
