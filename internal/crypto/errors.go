package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when a public or private key is not
	// KeySize bytes long.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrEnvelopeTooShort is returned when a sealed envelope is too short to
	// hold a nonce and any ciphertext.
	ErrEnvelopeTooShort = errors.New("envelope too short")

	// ErrDecryptionFailed is returned when authentication of a box fails.
	// It is returned for wrong keys and tampered data alike.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrRandomSource is returned when the random source cannot supply bytes.
	ErrRandomSource = errors.New("random source unavailable")

	// ErrSelfTest is returned when the startup self-check fails.
	ErrSelfTest = errors.New("self-test failed")
)
