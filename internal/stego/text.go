package stego

import (
	"strings"

	"github.com/faanross/simulacra_img/internal/spec"
)

// EncodeString hides text. Every character is stored as the low 8 bits of
// its code point, so anything outside Latin-1 does not survive. The string
// must not contain bytes outside [32,126] or DecodeString stops early.
func (c *Codec) EncodeString(text string) (*PixelBuffer, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}
	return c.Encode(CharBytes(text))
}

// DecodeString returns the characters up to the first byte outside the
// printable ASCII range.
func (c *Codec) DecodeString() string {
	raw := c.Decode()

	var sb strings.Builder
	for _, b := range raw {
		if !printable(b) {
			break
		}
		sb.WriteByte(b)
	}
	return sb.String()
}

func printable(b byte) bool {
	return b >= spec.PRINTABLE_MIN && b <= spec.PRINTABLE_MAX
}

// CharBytes returns the bytes stored for s, the low 8 bits of each rune.
// Invalid UTF-8 comes through as U+FFFD and ends up as 0xFD.
func CharBytes(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, byte(r))
	}
	return out
}

// charsFromBytes maps each byte back to the code point with the same value,
// the inverse of CharBytes for Latin-1 input.
func charsFromBytes(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}
