package passthesalt

import (
	"errors"
	"fmt"

	"github.com/icasdri/passthesalt/internal/crypto"
	"github.com/icasdri/passthesalt/internal/keycodec"
)

// KeySize is the size of a raw public or private key in bytes.
const KeySize = crypto.KeySize

// Ciphersuite names the key agreement and authenticated cipher used for
// envelopes.
const Ciphersuite = crypto.Ciphersuite

// PublicKey is a raw Curve25519 public key. It is safe to share.
type PublicKey [KeySize]byte

// PrivateKey is a raw Curve25519 private key. Formatting it with the fmt
// package never prints the key bytes; use EncodePrivateKey to serialize it.
type PrivateKey [KeySize]byte

// String returns the mnemonic form of the key.
func (k PublicKey) String() string {
	text, err := EncodePublicKey(k)
	if err != nil {
		return "PublicKey(invalid)"
	}
	return text
}

// String hides the key material.
func (k PrivateKey) String() string {
	return "PrivateKey(redacted)"
}

// GoString hides the key material from %#v.
func (k PrivateKey) GoString() string {
	return k.String()
}

// Format hides the key material from every fmt verb, including %x.
func (k PrivateKey) Format(f fmt.State, _ rune) {
	fmt.Fprint(f, k.String())
}

// Wipe zeroes the key in place.
func (k *PrivateKey) Wipe() {
	crypto.Wipe(k[:])
}

// EncodePublicKey returns the 24-word lowercase mnemonic of k.
func EncodePublicKey(k PublicKey) (string, error) {
	return encodePublicKey(k[:])
}

func encodePublicKey(raw []byte) (string, error) {
	text, err := keycodec.EncodeMnemonic(raw)
	if err != nil {
		return "", newError(KindFatalEncode, err)
	}
	return text, nil
}

// DecodePublicKey parses mnemonic text into a PublicKey. Case and surrounding
// whitespace are ignored.
//
// Errors are KindPublicKeyParse for an unknown word, word count or checksum
// and KindPublicKeyLength for a well-formed mnemonic of the wrong size.
func DecodePublicKey(text string) (PublicKey, error) {
	var k PublicKey

	raw, err := keycodec.DecodeMnemonic(text)
	switch {
	case errors.Is(err, keycodec.ErrInvalidLength):
		return k, newError(KindPublicKeyLength, err)
	case err != nil:
		return k, newError(KindPublicKeyParse, err)
	}

	copy(k[:], raw)
	return k, nil
}

// EncodePrivateKey returns k as 64 lowercase hex characters.
func EncodePrivateKey(k PrivateKey) string {
	return keycodec.EncodeHex(k[:])
}

// DecodePrivateKey parses hex text into a PrivateKey. Case and surrounding
// whitespace are ignored.
//
// Errors are KindPrivateKeyParse for non-hex text or an odd length and
// KindPrivateKeyLength for any size other than 32 bytes. Error messages never
// contain the input.
func DecodePrivateKey(text string) (PrivateKey, error) {
	var k PrivateKey

	raw, err := keycodec.DecodeHex(text)
	switch {
	case errors.Is(err, keycodec.ErrInvalidLength):
		return k, newError(KindPrivateKeyLength, err)
	case err != nil:
		return k, newError(KindPrivateKeyParse, nil)
	}

	copy(k[:], raw)
	crypto.Wipe(raw)
	return k, nil
}

// decodeKeys decodes the peer's public key and the caller's private key, in
// that order, so that a bad public key is reported first.
func decodeKeys(publicText, privateText string) (*[KeySize]byte, *[KeySize]byte, error) {
	pub, err := DecodePublicKey(publicText)
	if err != nil {
		return nil, nil, err
	}

	priv, err := DecodePrivateKey(privateText)
	if err != nil {
		return nil, nil, err
	}

	return (*[KeySize]byte)(&pub), (*[KeySize]byte)(&priv), nil
}
