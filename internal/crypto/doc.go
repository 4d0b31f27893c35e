// Package crypto provides the low-level primitives behind the passthesalt
// envelope format.
//
// # Algorithm Suite
//
//   - Curve25519 (X25519): key agreement between the sender's private key and
//     the recipient's public key. Public keys are derived from private keys by
//     base-point multiplication.
//
//   - XSalsa20-Poly1305: authenticated encryption of the message under the
//     shared key, as specified by NaCl crypto_box. Every ciphertext carries a
//     16-byte Poly1305 tag.
//
// # Envelope Layout
//
// A sealed envelope is the box ciphertext followed by the 24-byte nonce:
//
//	ciphertext (len(message) + Overhead) || nonce (24)
//
// [Seal] and [Open] build and take apart this layout. Text encoding is done
// with [ToBase64URL]/[FromBase64URL] (URL-safe alphabet, no padding).
//
// # Critical Security Notes
//
// A nonce MUST never repeat for the same pair of keys. Reuse leaks the XOR of
// plaintexts and lets an attacker forge Poly1305 tags. [NewNonce] draws every
// nonce from the secure random source; callers never supply their own.
//
// [Open] reports every authentication failure as [ErrDecryptionFailed] and
// nothing else, so wrong keys and tampered data are indistinguishable.
//
// # Key Management
//
// Private keys should be wiped with [Wipe] as soon as they are no longer
// needed. They should never be logged, transmitted in plaintext, or stored in
// version control.
package crypto
