// Package passthesalt lets two parties exchange authenticated, confidential
// messages identified only by long-term Curve25519 key pairs.
//
// Public keys travel as 24-word mnemonics that can be read aloud; private keys
// are stored as 64 hex characters. A message is sealed into an envelope: the
// XSalsa20-Poly1305 ciphertext followed by its 24-byte nonce, encoded as
// URL-safe base64 without padding.
//
// Basic usage:
//
//	if err := passthesalt.Initialize(); err != nil {
//	    log.Fatal(err) // unrecoverable
//	}
//
//	alicePub, alicePriv, err := passthesalt.GenerateKeypair()
//	bobPub, bobPriv, err := passthesalt.GenerateKeypair()
//
//	envelope, err := passthesalt.Encrypt(bobPub, alicePriv, []byte("hello"))
//	plaintext, err := passthesalt.Decrypt(alicePub, bobPriv, envelope)
//
// Every failure is an [*Error] whose [Kind] tells the caller what went wrong
// and whether it can be corrected. Use [errors.Is] with the Err* sentinels or
// [KindOf] to branch on it. Authentication failures are always reported as
// [KindDecryptPhase], without saying whether the key or the data was wrong.
//
// [Initialize] must succeed once per process before keys are generated or
// messages are sealed or opened.
package passthesalt
