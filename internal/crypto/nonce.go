package crypto

import (
	"fmt"
	"io"
)

// NewNonce draws a fresh nonce from the random source.
func NewNonce() (*[NonceSize]byte, error) {
	var nonce [NonceSize]byte
	if _, err := io.ReadFull(random(), nonce[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return &nonce, nil
}
