package keycodec

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// KeySize is the size of a raw key in bytes.
const KeySize = 32

// MnemonicWords is the number of words in the text form of a KeySize key.
const MnemonicWords = 24

// EncodeMnemonic returns the mnemonic for raw. Words are lowercase and
// separated by single spaces.
func EncodeMnemonic(raw []byte) (string, error) {
	if len(raw) != KeySize {
		return "", fmt.Errorf("%w: got %d bytes, want %d", ErrEncode, len(raw), KeySize)
	}

	mnemonic, err := bip39.NewMnemonic(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return mnemonic, nil
}

// DecodeMnemonic parses a mnemonic into KeySize raw bytes. Surrounding and
// repeated whitespace is ignored and words may be in any case.
//
// A well-formed mnemonic of a different length (12, 15, 18 or 21 words)
// decodes without a checksum error but yields ErrInvalidLength.
func DecodeMnemonic(text string) ([]byte, error) {
	// The dictionary is lowercase; word lookup is case-sensitive.
	normalized := strings.ToLower(strings.Join(strings.Fields(text), " "))

	raw, err := bip39.EntropyFromMnemonic(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMnemonicMalformed, err)
	}

	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(raw), KeySize)
	}

	return raw, nil
}
