package passthesalt

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/icasdri/passthesalt/internal/crypto"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

// resetInit clears the ready flag for the duration of the test and
// re-initializes afterwards.
func resetInit(t *testing.T) {
	t.Helper()
	ready.Store(false)
	t.Cleanup(func() {
		if err := Initialize(); err != nil {
			t.Fatalf("re-initialize: %v", err)
		}
	})
}

func TestInitialize_Idempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		if err := Initialize(); err != nil {
			t.Fatalf("Initialize() call %d error = %v", i, err)
		}
	}
	if !Initialized() {
		t.Error("Initialized() = false after Initialize")
	}
}

func TestInitialize_Concurrent(t *testing.T) {
	resetInit(t)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- Initialize()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("Initialize() error = %v", err)
		}
	}
	if !Initialized() {
		t.Error("Initialized() = false after concurrent Initialize")
	}
}

func TestInitialize_BrokenRandomSource(t *testing.T) {
	resetInit(t)

	restore := crypto.SetRandReaderForTesting(failingReader{})
	err := Initialize()
	restore()

	assertKind(t, err, KindFatalInit)
	if !errors.Is(err, crypto.ErrRandomSource) {
		t.Errorf("expected cause %v, got %v", crypto.ErrRandomSource, err)
	}
	if Initialized() {
		t.Error("Initialized() = true after failed Initialize")
	}
}

func TestOperations_RequireInitialize(t *testing.T) {
	pub, priv := mustKeypair(t)
	resetInit(t)

	ops := []struct {
		name string
		call func() error
	}{
		{"GenerateKeypair", func() error {
			_, _, err := GenerateKeypair()
			return err
		}},
		{"PublicKeyFromPrivate", func() error {
			_, err := PublicKeyFromPrivate(priv)
			return err
		}},
		{"Encrypt", func() error {
			_, err := Encrypt(pub, priv, []byte("hello"))
			return err
		}},
		{"Decrypt", func() error {
			_, err := Decrypt(pub, priv, "AAAA")
			return err
		}},
		{"NewSession", func() error {
			_, err := NewSession(pub, priv)
			return err
		}},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			err := op.call()
			assertKind(t, err, KindFatalInit)
			if !errors.Is(err, ErrNotInitialized) {
				t.Errorf("expected ErrNotInitialized, got %v", err)
			}
		})
	}
}

func TestCodecs_DoNotRequireInitialize(t *testing.T) {
	pub, priv := mustKeypair(t)
	resetInit(t)

	if _, err := DecodePublicKey(pub); err != nil {
		t.Errorf("DecodePublicKey() error = %v", err)
	}
	if _, err := DecodePrivateKey(priv); err != nil {
		t.Errorf("DecodePrivateKey() error = %v", err)
	}
}
