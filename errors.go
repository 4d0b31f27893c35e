package passthesalt

import (
	"errors"
	"fmt"
)

// Kind classifies every error returned by this package.
type Kind int

const (
	// KindFatalInit means the crypto subsystem failed to initialize or was
	// used before Initialize succeeded. Not recoverable.
	KindFatalInit Kind = iota + 1
	// KindFatalEncode means a freshly generated public key could not be
	// encoded. Not recoverable.
	KindFatalEncode
	// KindPublicKeyParse means the public key text is not a valid mnemonic.
	KindPublicKeyParse
	// KindPublicKeyLength means the public key text decoded to the wrong
	// number of bytes.
	KindPublicKeyLength
	// KindPrivateKeyParse means the private key text is not valid hex.
	KindPrivateKeyParse
	// KindPrivateKeyLength means the private key text decoded to the wrong
	// number of bytes.
	KindPrivateKeyLength
	// KindDecryptParse means the envelope text is not valid base64.
	KindDecryptParse
	// KindDecryptLength means the envelope is too short to hold a nonce.
	KindDecryptLength
	// KindDecryptPhase means the envelope failed authentication.
	KindDecryptPhase
)

// Sentinel errors for errors.Is() checks, one per Kind.
var (
	ErrFatalInit        = errors.New("failed to initialize encryption facilities")
	ErrFatalEncode      = errors.New("failed to encode public key")
	ErrPublicKeyParse   = errors.New("public key is not a valid mnemonic")
	ErrPublicKeyLength  = errors.New("public key has the wrong length")
	ErrPrivateKeyParse  = errors.New("private key is not valid hex")
	ErrPrivateKeyLength = errors.New("private key has the wrong length")
	ErrDecryptParse     = errors.New("encrypted message is not valid base64")
	ErrDecryptLength    = errors.New("encrypted message is too short")
	ErrDecryptPhase     = errors.New("decryption failed")
)

var (
	// ErrNotInitialized is wrapped by KindFatalInit errors returned from
	// operations called before Initialize succeeded.
	ErrNotInitialized = errors.New("encryption facilities not initialized")

	// ErrSessionClosed is returned by a Session after Close.
	ErrSessionClosed = errors.New("session has been closed")
)

var kindNames = map[Kind]string{
	KindFatalInit:        "FatalInit",
	KindFatalEncode:      "FatalEncode",
	KindPublicKeyParse:   "PublicKeyParse",
	KindPublicKeyLength:  "PublicKeyLength",
	KindPrivateKeyParse:  "PrivateKeyParse",
	KindPrivateKeyLength: "PrivateKeyLength",
	KindDecryptParse:     "DecryptParse",
	KindDecryptLength:    "DecryptLength",
	KindDecryptPhase:     "DecryptPhase",
}

var kindSentinels = map[Kind]error{
	KindFatalInit:        ErrFatalInit,
	KindFatalEncode:      ErrFatalEncode,
	KindPublicKeyParse:   ErrPublicKeyParse,
	KindPublicKeyLength:  ErrPublicKeyLength,
	KindPrivateKeyParse:  ErrPrivateKeyParse,
	KindPrivateKeyLength: ErrPrivateKeyLength,
	KindDecryptParse:     ErrDecryptParse,
	KindDecryptLength:    ErrDecryptLength,
	KindDecryptPhase:     ErrDecryptPhase,
}

// Kinds lists every Kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindFatalInit,
		KindFatalEncode,
		KindPublicKeyParse,
		KindPublicKeyLength,
		KindPrivateKeyParse,
		KindPrivateKeyLength,
		KindDecryptParse,
		KindDecryptLength,
		KindDecryptPhase,
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Fatal reports whether the caller must abort instead of correcting input.
func (k Kind) Fatal() bool {
	return k == KindFatalInit || k == KindFatalEncode
}

// Message returns the human-readable description of the kind.
func (k Kind) Message() string {
	if err, ok := kindSentinels[k]; ok {
		return err.Error()
	}
	return "unknown error"
}

// Error is the error type returned by every operation in this package.
type Error struct {
	Kind Kind
	// Err is the underlying cause, if any. It is always nil for
	// KindDecryptPhase and never holds private key material.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind.Message(), e.Err)
	}
	return e.Kind.Message()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
