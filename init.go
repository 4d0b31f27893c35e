package passthesalt

import (
	"sync"
	"sync/atomic"

	"github.com/icasdri/passthesalt/internal/crypto"
)

var (
	initMu sync.Mutex
	ready  atomic.Bool
)

// Initialize prepares the crypto subsystem. It must succeed once before
// GenerateKeypair, Encrypt, Decrypt, NewSession or PublicKeyFromPrivate are
// used. Calling it again after success is a no-op, and concurrent callers
// are serialized.
//
// On failure it returns a KindFatalInit error. There is no degraded mode:
// the caller must abort.
func Initialize() error {
	if ready.Load() {
		return nil
	}

	initMu.Lock()
	defer initMu.Unlock()

	if ready.Load() {
		return nil
	}

	if err := crypto.SelfTest(); err != nil {
		return newError(KindFatalInit, err)
	}

	ready.Store(true)
	return nil
}

// Initialized reports whether Initialize has succeeded.
func Initialized() bool {
	return ready.Load()
}

func requireInitialized() error {
	if !ready.Load() {
		return newError(KindFatalInit, ErrNotInitialized)
	}
	return nil
}
