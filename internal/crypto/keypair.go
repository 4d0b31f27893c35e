package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/cloudflare/circl/dh/x25519"
	"golang.org/x/crypto/nacl/box"
)

// randReader is the random source used for key generation and nonces.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func random() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// Keypair represents a Curve25519 keypair for use with Seal and Open.
type Keypair struct {
	// PublicKey is the raw Curve25519 public key.
	PublicKey [KeySize]byte
	// PrivateKey is the raw Curve25519 private scalar.
	PrivateKey [KeySize]byte
}

// GenerateKeypair creates a new Curve25519 keypair from the random source.
func GenerateKeypair() (*Keypair, error) {
	pub, priv, err := box.GenerateKey(random())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	kp := &Keypair{PublicKey: *pub, PrivateKey: *priv}
	Wipe(priv[:])
	return kp, nil
}

// KeypairFromPrivateKey reconstructs a keypair from the raw private key.
// The public key is recomputed from the private scalar.
func KeypairFromPrivateKey(privateKey []byte) (*Keypair, error) {
	if len(privateKey) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(privateKey), KeySize)
	}

	kp := &Keypair{}
	copy(kp.PrivateKey[:], privateKey)
	kp.PublicKey = PublicKeyFromPrivate(&kp.PrivateKey)
	return kp, nil
}

// PublicKeyFromPrivate derives the public key belonging to privateKey by
// X25519 base-point multiplication. Clamping is applied internally, so the
// result matches the public key returned by box.GenerateKey for the same
// private key.
func PublicKeyFromPrivate(privateKey *[KeySize]byte) [KeySize]byte {
	var secret, public x25519.Key
	copy(secret[:], privateKey[:])
	x25519.KeyGen(&public, &secret)
	Wipe(secret[:])
	return [KeySize]byte(public)
}

// Wipe zeroes the private half of the keypair.
func (k *Keypair) Wipe() {
	Wipe(k.PrivateKey[:])
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	clear(b)
}
