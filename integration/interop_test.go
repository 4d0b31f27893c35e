//go:build integration

package integration

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/icasdri/passthesalt"
	"golang.org/x/crypto/nacl/box"
)

// TestInterop_NaClBox verifies that envelopes are plain NaCl boxes with the
// nonce appended, so any NaCl implementation can produce and consume them.
func TestInterop_NaClBox(t *testing.T) {
	alicePub, alicePriv := mustKeypair(t)
	bobPub, bobPriv := mustKeypair(t)

	rawAlicePub, err := passthesalt.DecodePublicKey(alicePub)
	if err != nil {
		t.Fatalf("DecodePublicKey() error = %v", err)
	}
	rawBobPub, err := passthesalt.DecodePublicKey(bobPub)
	if err != nil {
		t.Fatalf("DecodePublicKey() error = %v", err)
	}
	rawBobPriv, err := hex.DecodeString(bobPriv)
	if err != nil {
		t.Fatalf("hex.DecodeString() error = %v", err)
	}
	rawAlicePriv, err := hex.DecodeString(alicePriv)
	if err != nil {
		t.Fatalf("hex.DecodeString() error = %v", err)
	}

	t.Run("library to nacl", func(t *testing.T) {
		envelope, err := passthesalt.Encrypt(bobPub, alicePriv, []byte("to nacl"))
		if err != nil {
			t.Fatalf("Encrypt() error = %v", err)
		}
		raw, err := base64.RawURLEncoding.DecodeString(envelope)
		if err != nil {
			t.Fatalf("decode envelope: %v", err)
		}

		split := len(raw) - 24
		var nonce [24]byte
		copy(nonce[:], raw[split:])

		pub := [32]byte(rawAlicePub)
		priv := [32]byte(rawBobPriv)
		plaintext, ok := box.Open(nil, raw[:split], &nonce, &pub, &priv)
		if !ok {
			t.Fatal("box.Open failed")
		}
		if string(plaintext) != "to nacl" {
			t.Errorf("box.Open() = %q, want %q", plaintext, "to nacl")
		}
	})

	t.Run("nacl to library", func(t *testing.T) {
		var nonce [24]byte
		if _, err := rand.Read(nonce[:]); err != nil {
			t.Fatalf("rand.Read() error = %v", err)
		}

		pub := [32]byte(rawBobPub)
		priv := [32]byte(rawAlicePriv)
		sealed := box.Seal(nil, []byte("from nacl"), &nonce, &pub, &priv)
		envelope := base64.RawURLEncoding.EncodeToString(append(sealed, nonce[:]...))

		plaintext, err := passthesalt.Decrypt(alicePub, bobPriv, envelope)
		if err != nil {
			t.Fatalf("Decrypt() error = %v", err)
		}
		if string(plaintext) != "from nacl" {
			t.Errorf("Decrypt() = %q, want %q", plaintext, "from nacl")
		}
	})
}

// TestInterop_CLI checks that the CLI and the library read each other's
// keys and envelopes.
func TestInterop_CLI(t *testing.T) {
	requireBinary(t)
	dir := t.TempDir()

	alicePub, alicePriv := mustKeypair(t)
	aliceKey := filepath.Join(dir, "alice.key")
	if err := os.WriteFile(aliceKey, []byte(alicePriv+"\n"), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}

	bobKey := filepath.Join(dir, "bob.key")
	out, code := runCLI(t, nil, "key", "--new", "-o", bobKey)
	if code != 0 {
		t.Fatalf("key --new exit code = %d", code)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	bobPub := lines[len(lines)-1]

	bobPriv, err := os.ReadFile(bobKey)
	if err != nil {
		t.Fatalf("read key: %v", err)
	}

	derived, err := passthesalt.PublicKeyFromPrivate(string(bobPriv))
	if err != nil {
		t.Fatalf("PublicKeyFromPrivate() error = %v", err)
	}
	if derived != bobPub {
		t.Fatalf("CLI public key %q does not match derived %q", bobPub, derived)
	}

	envelope, code := runCLI(t, []byte("cli to library"), "encrypt", "-i", bobKey, "-t", alicePub)
	if code != 0 {
		t.Fatalf("encrypt exit code = %d", code)
	}
	plaintext, err := passthesalt.Decrypt(bobPub, alicePriv, string(envelope))
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if string(plaintext) != "cli to library" {
		t.Errorf("Decrypt() = %q, want %q", plaintext, "cli to library")
	}

	sealed, err := passthesalt.Encrypt(bobPub, alicePriv, []byte("library to cli"))
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	out, code = runCLI(t, []byte(sealed), "decrypt", "-i", bobKey, "-t", alicePub)
	if code != 0 {
		t.Fatalf("decrypt exit code = %d", code)
	}
	if !bytes.Equal(out, []byte("library to cli")) {
		t.Errorf("decrypt output = %q, want %q", out, "library to cli")
	}

	// Tampering is reported with the DecryptPhase exit code.
	tampered := []byte(sealed)
	if tampered[0] == 'A' {
		tampered[0] = 'B'
	} else {
		tampered[0] = 'A'
	}
	if _, code := runCLI(t, tampered, "decrypt", "-i", bobKey, "-t", alicePub); code != 32 {
		t.Errorf("tampered decrypt exit code = %d, want 32", code)
	}
}
