package passthesalt

import (
	"sync"

	"github.com/icasdri/passthesalt/internal/crypto"
)

// Session exchanges messages with a single peer using a precomputed shared
// key, which saves one Curve25519 operation per message. Envelopes are
// identical in format to those of Encrypt and Decrypt, so either side may use
// a Session or the one-shot functions.
//
// A Session is safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	sharedKey *[KeySize]byte
}

// NewSession decodes the peer's public key and the caller's private key and
// derives their shared key. The decoded private key is wiped before
// NewSession returns.
func NewSession(peerPublic, ownPrivate string) (*Session, error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}

	pub, priv, err := decodeKeys(peerPublic, ownPrivate)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(priv[:])

	return &Session{sharedKey: crypto.Precompute(pub, priv)}, nil
}

// Encrypt seals plaintext for the peer under a fresh random nonce.
func (s *Session) Encrypt(plaintext []byte) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sharedKey == nil {
		return "", ErrSessionClosed
	}

	nonce, err := crypto.NewNonce()
	if err != nil {
		return "", newError(KindFatalInit, err)
	}

	return crypto.ToBase64URL(crypto.SealAfterPrecomputation(plaintext, nonce, s.sharedKey)), nil
}

// Decrypt opens an envelope sealed by the peer.
func (s *Session) Decrypt(envelope string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sharedKey == nil {
		return nil, ErrSessionClosed
	}

	sealed, err := decodeEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.OpenAfterPrecomputation(sealed, s.sharedKey)
	if err != nil {
		return nil, openError(err)
	}

	return plaintext, nil
}

// Close wipes the shared key. Further calls return ErrSessionClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sharedKey != nil {
		crypto.Wipe(s.sharedKey[:])
		s.sharedKey = nil
	}
	return nil
}
