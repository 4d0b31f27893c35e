package keycodec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// EncodeHex returns raw as lowercase hex without separators.
func EncodeHex(raw []byte) string {
	return hex.EncodeToString(raw)
}

// DecodeHex parses hex text into KeySize raw bytes. Surrounding whitespace is
// ignored and letters may be in any case.
//
// Errors never quote the input, because the input is secret.
func DecodeHex(text string) ([]byte, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	raw, err := hex.DecodeString(normalized)
	if err != nil {
		return nil, ErrHexMalformed
	}

	if len(raw) != KeySize {
		clear(raw)
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(raw), KeySize)
	}

	return raw, nil
}
