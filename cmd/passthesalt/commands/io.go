package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/icasdri/passthesalt"
)

// maxPrivateKeyFileSize bounds a private key file before it is decoded. A
// hex key with a trailing newline is 65 bytes.
const maxPrivateKeyFileSize = 100

// maxPublicKeyFileSize bounds a file passed to --them.
const maxPublicKeyFileSize = 4096

var (
	errKeyFileTooLarge = fmt.Errorf("private key file exceeds %d bytes", maxPrivateKeyFileSize)
	errMissingMe       = errors.New("a private key file is required (--me or PASSTHESALT_ME)")
	errMissingThem     = errors.New("their public key is required (--them or PASSTHESALT_THEM)")
)

// readPrivateKeyFile returns the contents of the private key file at path.
// Oversized files are reported as KindPrivateKeyLength.
func readPrivateKeyFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxPrivateKeyFileSize+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxPrivateKeyFileSize {
		return "", &passthesalt.Error{Kind: passthesalt.KindPrivateKeyLength, Err: errKeyFileTooLarge}
	}

	return string(data), nil
}

// resolvePublicKey returns key itself, or the contents of the file it names.
func resolvePublicKey(key string) (string, bool, error) {
	info, err := os.Stat(key)
	if err != nil || !info.Mode().IsRegular() {
		return key, false, nil
	}

	f, err := os.Open(key)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxPublicKeyFileSize))
	if err != nil {
		return "", false, err
	}

	return strings.TrimSpace(string(data)), true, nil
}

func (c *cli) readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(c.io.Stdin)
	}
	return os.ReadFile(args[0])
}

func (c *cli) writeOutput(data []byte) error {
	if c.conf.OutputFile == "" || c.conf.OutputFile == "-" {
		_, err := c.io.Stdout.Write(data)
		return err
	}
	return os.WriteFile(c.conf.OutputFile, data, 0o600)
}

// writeNewFile writes data to path with owner-only permissions and fails if
// path already exists.
func writeNewFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
