package stego

import (
	"errors"
	"math/rand"
	"testing"
)

func TestEncodeStringRejectsEmpty(t *testing.T) {
	c := mustCodec(t, blackBuffer(4, 4))
	enc, err := c.EncodeString("")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if enc != nil {
		t.Fatalf("got a buffer on failure")
	}
}

func TestStringRoundTripPrintable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, w := range []int{1, 2, 4, 8} {
		for i := 0; i < 20; i++ {
			src := randomBuffer(rng, 20, 20)
			c := mustCodec(t, src, WithBitWidth(w))

			n := 1 + rng.Intn(c.MaxPayloadBytes())
			b := make([]byte, n)
			for j := range b {
				b[j] = byte(32 + rng.Intn(95))
			}
			s := string(b)

			enc, err := c.EncodeString(s)
			if err != nil {
				t.Fatalf("width %d: EncodeString: %v", w, err)
			}
			got := mustCodec(t, enc, WithBitWidth(w)).DecodeString()
			// Random carrier bits after the string may still look printable.
			if len(got) < len(s) || got[:len(s)] != s {
				t.Fatalf("width %d: got %q want prefix %q", w, got, s)
			}
		}
	}
}

func TestDecodeStringStopsAtUnprintable(t *testing.T) {
	c := mustCodec(t, blackBuffer(16, 16))
	for _, stop := range []byte{0, 10, 31, 127, 200, 255} {
		enc, err := c.Encode([]byte{'h', 'i', stop, 'x', 'y'})
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if got := mustCodec(t, enc).DecodeString(); got != "hi" {
			t.Fatalf("stop byte %d: got %q want \"hi\"", stop, got)
		}
	}
}

func TestTruncateChars(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{"abc", []byte("abc")},
		{"é", []byte{0xE9}},
		{"Ā", []byte{0x00}},
		{"€", []byte{0xAC}},
	}
	for _, tc := range cases {
		got := CharBytes(tc.in)
		if string(got) != string(tc.want) {
			t.Fatalf("%q: got %x want %x", tc.in, got, tc.want)
		}
	}
	if charsFromBytes([]byte{0xE9}) != "é" {
		t.Fatalf("charsFromBytes did not restore Latin-1")
	}
}
