package keycodec

import "errors"

var (
	// ErrMnemonicMalformed is returned when the text is not a valid mnemonic:
	// an unknown word, an unsupported word count, or a checksum mismatch.
	ErrMnemonicMalformed = errors.New("malformed mnemonic")

	// ErrHexMalformed is returned when the text contains non-hex characters or
	// has an odd length.
	ErrHexMalformed = errors.New("malformed hex")

	// ErrInvalidLength is returned when decoded text does not yield exactly
	// KeySize bytes.
	ErrInvalidLength = errors.New("invalid key length")

	// ErrEncode is returned when raw bytes cannot be represented as a mnemonic.
	ErrEncode = errors.New("cannot encode key")
)
