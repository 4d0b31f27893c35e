package crypto

import (
	"bytes"
	"fmt"
	"io"
)

// SelfTest checks that the random source delivers bytes and that key
// generation, key derivation, Seal and Open agree with each other. It touches
// no global state besides reading from the random source.
func SelfTest() error {
	probe := make([]byte, KeySize)
	if _, err := io.ReadFull(random(), probe); err != nil {
		return fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	if bytes.Equal(probe, make([]byte, KeySize)) {
		return fmt.Errorf("%w: random source returned only zeros", ErrSelfTest)
	}

	alice, err := GenerateKeypair()
	if err != nil {
		return err
	}
	defer alice.Wipe()

	bob, err := GenerateKeypair()
	if err != nil {
		return err
	}
	defer bob.Wipe()

	if PublicKeyFromPrivate(&alice.PrivateKey) != alice.PublicKey {
		return fmt.Errorf("%w: derived public key mismatch", ErrSelfTest)
	}

	nonce, err := NewNonce()
	if err != nil {
		return err
	}

	sealed := Seal(probe, nonce, &bob.PublicKey, &alice.PrivateKey)

	opened, err := Open(sealed, &alice.PublicKey, &bob.PrivateKey)
	if err != nil || !bytes.Equal(opened, probe) {
		return fmt.Errorf("%w: seal/open round trip", ErrSelfTest)
	}

	shared := Precompute(&alice.PublicKey, &bob.PrivateKey)
	defer Wipe(shared[:])
	opened, err = OpenAfterPrecomputation(sealed, shared)
	if err != nil || !bytes.Equal(opened, probe) {
		return fmt.Errorf("%w: precomputed open", ErrSelfTest)
	}

	sealed[0] ^= 0x01
	if _, err := Open(sealed, &alice.PublicKey, &bob.PrivateKey); err == nil {
		return fmt.Errorf("%w: tampered box accepted", ErrSelfTest)
	}

	return nil
}
