package commands

import (
	"github.com/icasdri/passthesalt"
)

// Exit codes. Every passthesalt error kind has its own code so scripts can
// tell a bad key from a tampered message.
const (
	ExitOK      = 0
	ExitFailure = 1

	ExitFatalInit        = 10
	ExitFatalEncode      = 11
	ExitPublicKeyParse   = 20
	ExitPublicKeyLength  = 21
	ExitPrivateKeyParse  = 22
	ExitPrivateKeyLength = 23
	ExitDecryptParse     = 30
	ExitDecryptLength    = 31
	ExitDecryptPhase     = 32
)

var exitCodes = map[passthesalt.Kind]int{
	passthesalt.KindFatalInit:        ExitFatalInit,
	passthesalt.KindFatalEncode:      ExitFatalEncode,
	passthesalt.KindPublicKeyParse:   ExitPublicKeyParse,
	passthesalt.KindPublicKeyLength:  ExitPublicKeyLength,
	passthesalt.KindPrivateKeyParse:  ExitPrivateKeyParse,
	passthesalt.KindPrivateKeyLength: ExitPrivateKeyLength,
	passthesalt.KindDecryptParse:     ExitDecryptParse,
	passthesalt.KindDecryptLength:    ExitDecryptLength,
	passthesalt.KindDecryptPhase:     ExitDecryptPhase,
}

// ExitCode maps err to a process exit code. Errors without a passthesalt
// kind, such as usage and I/O errors, map to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if code, ok := exitCodes[passthesalt.KindOf(err)]; ok {
		return code
	}
	return ExitFailure
}
