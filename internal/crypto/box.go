package crypto

import (
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// Seal encrypts and authenticates message for the owner of peersPublicKey.
// Returns: ciphertext (len(message) + Overhead) || nonce (24 bytes)
func Seal(message []byte, nonce *[NonceSize]byte, peersPublicKey, privateKey *[KeySize]byte) []byte {
	out := make([]byte, 0, len(message)+MinEnvelopeSize)
	out = box.Seal(out, message, nonce, peersPublicKey, privateKey)
	return append(out, nonce[:]...)
}

// Open authenticates and decrypts an envelope produced by Seal.
// The envelope format is: ciphertext || nonce (24 bytes)
func Open(envelope []byte, peersPublicKey, privateKey *[KeySize]byte) ([]byte, error) {
	ciphertext, nonce, err := SplitEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	plaintext, ok := box.Open(nil, ciphertext, nonce, peersPublicKey, privateKey)
	if !ok {
		return nil, ErrDecryptionFailed
	}

	return nonNil(plaintext), nil
}

// Precompute computes the shared key between the two parties so that many
// messages can be sealed or opened without repeating the key agreement.
func Precompute(peersPublicKey, privateKey *[KeySize]byte) *[KeySize]byte {
	sharedKey := new([KeySize]byte)
	box.Precompute(sharedKey, peersPublicKey, privateKey)
	return sharedKey
}

// SealAfterPrecomputation is Seal with a shared key from Precompute.
// Its output is identical to Seal for the same keys, nonce and message.
func SealAfterPrecomputation(message []byte, nonce *[NonceSize]byte, sharedKey *[KeySize]byte) []byte {
	out := make([]byte, 0, len(message)+MinEnvelopeSize)
	out = box.SealAfterPrecomputation(out, message, nonce, sharedKey)
	return append(out, nonce[:]...)
}

// OpenAfterPrecomputation is Open with a shared key from Precompute.
func OpenAfterPrecomputation(envelope []byte, sharedKey *[KeySize]byte) ([]byte, error) {
	ciphertext, nonce, err := SplitEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	plaintext, ok := box.OpenAfterPrecomputation(nil, ciphertext, nonce, sharedKey)
	if !ok {
		return nil, ErrDecryptionFailed
	}

	return nonNil(plaintext), nil
}

// SplitEnvelope separates the trailing nonce from the ciphertext. The
// returned ciphertext aliases envelope.
func SplitEnvelope(envelope []byte) ([]byte, *[NonceSize]byte, error) {
	if len(envelope) <= NonceSize {
		return nil, nil, fmt.Errorf("%w: got %d bytes, need more than %d", ErrEnvelopeTooShort, len(envelope), NonceSize)
	}

	split := len(envelope) - NonceSize
	var nonce [NonceSize]byte
	copy(nonce[:], envelope[split:])

	return envelope[:split], &nonce, nil
}

// box.Open returns nil for an empty message.
func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
