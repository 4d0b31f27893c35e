package passthesalt

import (
	"github.com/icasdri/passthesalt/internal/crypto"
)

// GenerateKeypair creates a fresh key pair from the secure random source and
// returns its public half as a mnemonic and its private half as hex.
//
// A KindFatalEncode error means the public key could not be encoded; it
// indicates a broken invariant and the caller must abort.
func GenerateKeypair() (publicText, privateText string, err error) {
	if err := requireInitialized(); err != nil {
		return "", "", err
	}

	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return "", "", newError(KindFatalInit, err)
	}
	defer kp.Wipe()

	publicText, err = encodePublicKey(kp.PublicKey[:])
	if err != nil {
		return "", "", err
	}

	return publicText, EncodePrivateKey(PrivateKey(kp.PrivateKey)), nil
}

// PublicKeyFromPrivate returns the mnemonic of the public key that belongs to
// the given private key text.
func PublicKeyFromPrivate(privateText string) (string, error) {
	if err := requireInitialized(); err != nil {
		return "", err
	}

	priv, err := DecodePrivateKey(privateText)
	if err != nil {
		return "", err
	}
	defer priv.Wipe()

	kp, err := crypto.KeypairFromPrivateKey(priv[:])
	if err != nil {
		return "", newError(KindPrivateKeyLength, err)
	}
	defer kp.Wipe()

	return EncodePublicKey(PublicKey(kp.PublicKey))
}
