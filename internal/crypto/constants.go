package crypto

import "golang.org/x/crypto/nacl/box"

const (
	// KeySize is the size of a Curve25519 public or private key in bytes.
	KeySize = 32

	// NonceSize is the size of an XSalsa20-Poly1305 nonce in bytes.
	NonceSize = 24

	// Overhead is the number of bytes a sealed box adds to the message
	// (the Poly1305 authentication tag).
	Overhead = box.Overhead

	// MinEnvelopeSize is the size of an envelope carrying an empty message.
	MinEnvelopeSize = Overhead + NonceSize
)

// Ciphersuite is the canonical string representation of the algorithm suite.
const Ciphersuite = "X25519:XSalsa20-Poly1305"
