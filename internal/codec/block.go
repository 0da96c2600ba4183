package codec

import "golang.org/x/crypto/chacha20poly1305"

// encodeBlock serializes h, then seals payload (which must be exactly
// PayloadSize bytes) in place under key, returning a full BlockSize
// wire block: header || ciphertext || tag.
func encodeBlock(h Header, payload []byte, key [KeySize]byte) ([BlockSize]byte, error) {
	var block [BlockSize]byte
	hb := h.Marshal()
	copy(block[:HeaderSize], hb[:])

	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return block, err
	}
	nonce := h.nonce()
	copy(block[HeaderSize:HeaderSize+PayloadSize], payload)
	sealed := aead.Seal(block[HeaderSize:HeaderSize], nonce[:], block[HeaderSize:HeaderSize+PayloadSize], nil)
	if len(sealed) != PayloadSize+TagSize {
		return block, ErrInvalidHeader
	}
	return block, nil
}

// decodeBlock parses the header embedded in block and opens its
// ciphertext under key, returning the header and a PayloadSize slice
// of plaintext backed by block itself.
func decodeBlock(block []byte, key [KeySize]byte) (Header, []byte, error) {
	h, err := ParseHeader(block)
	if err != nil {
		return h, nil, err
	}
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return h, nil, err
	}
	nonce := h.nonce()
	plaintext, err := aead.Open(block[HeaderSize:HeaderSize], nonce[:], block[HeaderSize:BlockSize], nil)
	if err != nil {
		return h, nil, ErrAuthentication
	}
	return h, plaintext, nil
}
