package passthesalt

import (
	"errors"
	"strings"

	"github.com/icasdri/passthesalt/internal/crypto"
)

// Encrypt seals plaintext from the owner of senderPrivate to the owner of
// recipientPublic and returns the envelope text.
//
// Each call draws a new random nonce, so encrypting the same message twice
// yields different envelopes. An empty plaintext is valid. The only errors
// are the key decoding kinds (and KindFatalInit before Initialize).
func Encrypt(recipientPublic, senderPrivate string, plaintext []byte) (string, error) {
	if err := requireInitialized(); err != nil {
		return "", err
	}

	pub, priv, err := decodeKeys(recipientPublic, senderPrivate)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(priv[:])

	nonce, err := crypto.NewNonce()
	if err != nil {
		return "", newError(KindFatalInit, err)
	}

	return crypto.ToBase64URL(crypto.Seal(plaintext, nonce, pub, priv)), nil
}

// Decrypt opens an envelope sealed by the owner of senderPublic for the owner
// of recipientPrivate and returns the original plaintext bytes.
//
// Any authentication failure, whether from wrong keys or altered data, is
// reported as KindDecryptPhase with no further detail.
func Decrypt(senderPublic, recipientPrivate, envelope string) ([]byte, error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}

	pub, priv, err := decodeKeys(senderPublic, recipientPrivate)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(priv[:])

	sealed, err := decodeEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.Open(sealed, pub, priv)
	if err != nil {
		return nil, openError(err)
	}

	return plaintext, nil
}

func decodeEnvelope(envelope string) ([]byte, error) {
	sealed, err := crypto.FromBase64URL(strings.TrimSpace(envelope))
	if err != nil {
		return nil, newError(KindDecryptParse, err)
	}

	if len(sealed) <= crypto.NonceSize {
		return nil, newError(KindDecryptLength, crypto.ErrEnvelopeTooShort)
	}

	return sealed, nil
}

func openError(err error) error {
	if errors.Is(err, crypto.ErrEnvelopeTooShort) {
		return newError(KindDecryptLength, err)
	}
	return newError(KindDecryptPhase, nil)
}
