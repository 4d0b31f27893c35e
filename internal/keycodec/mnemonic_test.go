package keycodec

import (
	"bytes"
	"crypto/rand"
	"errors"
	"strings"
	"testing"
)

var (
	allZeroMnemonic = strings.Repeat("abandon ", 23) + "art"
	allOnesMnemonic = strings.Repeat("zoo ", 23) + "vote"
	sevenFMnemonic  = strings.Repeat("legal winner thank year wave sausage worth useful ", 2) +
		"legal winner thank year wave sausage worth title"
)

func TestEncodeMnemonic_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{"zeros", make([]byte, KeySize), allZeroMnemonic},
		{"ones", bytes.Repeat([]byte{0xff}, KeySize), allOnesMnemonic},
		{"7f", bytes.Repeat([]byte{0x7f}, KeySize), sevenFMnemonic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeMnemonic(tt.raw)
			if err != nil {
				t.Fatalf("EncodeMnemonic() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("EncodeMnemonic() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMnemonicRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		raw := make([]byte, KeySize)
		if _, err := rand.Read(raw); err != nil {
			t.Fatal(err)
		}

		text, err := EncodeMnemonic(raw)
		if err != nil {
			t.Fatalf("EncodeMnemonic() error = %v", err)
		}

		if n := len(strings.Fields(text)); n != MnemonicWords {
			t.Fatalf("mnemonic has %d words, want %d", n, MnemonicWords)
		}
		if text != strings.ToLower(text) {
			t.Fatalf("mnemonic is not lowercase: %q", text)
		}

		decoded, err := DecodeMnemonic(text)
		if err != nil {
			t.Fatalf("DecodeMnemonic() error = %v", err)
		}
		if !bytes.Equal(decoded, raw) {
			t.Fatalf("round trip failed: got %x, want %x", decoded, raw)
		}
	}
}

func TestEncodeMnemonic_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33} {
		_, err := EncodeMnemonic(make([]byte, n))
		if !errors.Is(err, ErrEncode) {
			t.Errorf("len %d: expected ErrEncode, got %v", n, err)
		}
	}
}

func TestDecodeMnemonic_CaseAndWhitespace(t *testing.T) {
	want := bytes.Repeat([]byte{0x7f}, KeySize)

	tests := []struct {
		name string
		text string
	}{
		{"lowercase", sevenFMnemonic},
		{"uppercase", strings.ToUpper(sevenFMnemonic)},
		{"mixed case", mixedCase(sevenFMnemonic)},
		{"surrounding whitespace", "  \t" + sevenFMnemonic + "\n"},
		{"repeated spaces", strings.ReplaceAll(sevenFMnemonic, " ", "   ")},
		{"newline separated", strings.ReplaceAll(sevenFMnemonic, " ", "\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeMnemonic(tt.text)
			if err != nil {
				t.Fatalf("DecodeMnemonic() error = %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("DecodeMnemonic() = %x, want %x", got, want)
			}
		})
	}
}

func TestDecodeMnemonic_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"not a mnemonic", "not a real mnemonic"},
		{"unknown word", strings.Replace(allZeroMnemonic, "art", "xyzzy", 1)},
		{"bad checksum", strings.Repeat("abandon ", 24)},
		{"too many words", allZeroMnemonic + " abandon abandon abandon"},
		{"too few words", strings.Repeat("abandon ", 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMnemonic(tt.text)
			if !errors.Is(err, ErrMnemonicMalformed) {
				t.Errorf("expected ErrMnemonicMalformed, got %v", err)
			}
		})
	}
}

func TestDecodeMnemonic_WrongLength(t *testing.T) {
	// Valid 12-word mnemonic for 16 zero bytes
	text := strings.Repeat("abandon ", 11) + "about"

	_, err := DecodeMnemonic(text)
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("expected ErrInvalidLength, got %v", err)
	}
}

func BenchmarkDecodeMnemonic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = DecodeMnemonic(sevenFMnemonic)
	}
}

func mixedCase(s string) string {
	out := []rune(s)
	for i, r := range out {
		if i%2 == 0 {
			out[i] = []rune(strings.ToUpper(string(r)))[0]
		}
	}
	return string(out)
}
