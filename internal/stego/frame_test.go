package stego

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"testing"
)

// headerImage hides a raw frame header with the given lengths.
func headerImage(t *testing.T, w, h, bitWidth int, nameLen, fileLen uint32) *Codec {
	t.Helper()
	c := mustCodec(t, blackBuffer(w, h), WithBitWidth(bitWidth))
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[0:4], nameLen)
	binary.BigEndian.PutUint32(hdr[4:8], fileLen)
	enc, err := c.Encode(hdr[:])
	if err != nil {
		t.Fatalf("Encode header: %v", err)
	}
	return mustCodec(t, enc, WithBitWidth(bitWidth))
}

func TestMarshalFrameLayout(t *testing.T) {
	got := MarshalFrame("a.txt", []byte{1, 2, 3})
	want := []byte{0, 0, 0, 5, 0, 0, 0, 3, 'a', '.', 't', 'x', 't', 1, 2, 3}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x want %x", got, want)
	}
}

func TestFileRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	names := []string{"a", "beforeTestFile.txt", "café.bin"}
	for _, w := range []int{1, 2, 4, 8} {
		for _, name := range names {
			src := randomBuffer(rng, 32, 32)
			c := mustCodec(t, src, WithBitWidth(w))

			sizes := []int{0, 1, c.MaxFileBytes() - len(CharBytes(name))}
			for _, n := range sizes {
				content := make([]byte, n)
				rng.Read(content)

				enc, err := c.EncodeFile(content, name)
				if err != nil {
					t.Fatalf("width %d name %q size %d: EncodeFile: %v", w, name, n, err)
				}
				f, err := mustCodec(t, enc, WithBitWidth(w)).DecodeFile()
				if err != nil {
					t.Fatalf("width %d name %q size %d: DecodeFile: %v", w, name, n, err)
				}
				if f.Name != name {
					t.Fatalf("name: got %q want %q", f.Name, name)
				}
				if !bytes.Equal(f.Content, content) {
					t.Fatalf("width %d name %q size %d: content mismatch", w, name, n)
				}
			}
		}
	}
}

func TestEncodeFileRejectsEmptyName(t *testing.T) {
	c := mustCodec(t, blackBuffer(16, 16))
	if _, err := c.EncodeFile([]byte("x"), ""); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestEncodeFileCapacity(t *testing.T) {
	c := mustCodec(t, blackBuffer(16, 16)) // capacity 192, file limit 48

	_, err := c.EncodeFile(make([]byte, 190), "n")
	var ce *CapacityExceededError
	if !errors.As(err, &ce) || ce.Requested != 199 || ce.Max != 192 || ce.Limit != LimitPayload {
		t.Fatalf("oversized frame: got %v", err)
	}

	_, err = c.EncodeFile(make([]byte, 48), "n")
	if !errors.As(err, &ce) || ce.Requested != 49 || ce.Max != 48 || ce.Limit != LimitFileBody {
		t.Fatalf("undecodable frame: got %v", err)
	}
	if want := "stego: file body of 49 bytes too big, max no of bytes: 48"; err.Error() != want {
		t.Fatalf("message: got %q want %q", err.Error(), want)
	}

	if _, err := c.EncodeFile(make([]byte, 47), "n"); err != nil {
		t.Fatalf("frame at the limit: %v", err)
	}
}

func TestDecodeFileCorruption(t *testing.T) {
	cases := []struct {
		name      string
		nameLen   uint32
		fileLen   uint32
		wantField string
		wantValue int64
	}{
		{"name too long", 200, 0, FieldNameLength, 200},
		{"empty name", 0, 5, FieldNameLength, 0},
		{"high bit name", 0x80000000, 0, FieldNameLength, 0x80000000},
		{"file too long", 1, 49, FieldFileLength, 49},
		{"sum too long", 30, 30, FieldTotalLength, 60},
	}
	for _, tc := range cases {
		c := headerImage(t, 16, 16, 2, tc.nameLen, tc.fileLen)
		_, err := c.DecodeFile()

		var fe *FrameCorruptedError
		if !errors.As(err, &fe) {
			t.Fatalf("%s: expected FrameCorruptedError, got %v", tc.name, err)
		}
		if fe.Field != tc.wantField || fe.Value != tc.wantValue {
			t.Fatalf("%s: got {%s %d} want {%s %d}", tc.name, fe.Field, fe.Value, tc.wantField, tc.wantValue)
		}
		if !errors.Is(err, ErrFrameCorrupted) {
			t.Fatalf("%s: expected errors.Is ErrFrameCorrupted", tc.name)
		}
	}
}

func TestDecodeFileTinyCapacity(t *testing.T) {
	// 2 pixels at width 8 hold 6 bytes, less than a header.
	c := mustCodec(t, blackBuffer(2, 1), WithBitWidth(8))
	_, err := c.DecodeFile()
	var fe *FrameCorruptedError
	if !errors.As(err, &fe) || fe.Field != FieldCapacity || fe.Value != 6 {
		t.Fatalf("got %v", err)
	}

	// 9 bytes: lengths fit capacity/4 but not the bytes after the header.
	c = headerImage(t, 3, 1, 8, 2, 0)
	_, err = c.DecodeFile()
	if !errors.As(err, &fe) || fe.Field != FieldTotalLength || fe.Value != 2 {
		t.Fatalf("got %v", err)
	}
}

func TestDecodeFileWrongBitWidth(t *testing.T) {
	c := mustCodec(t, blackBuffer(32, 32), WithBitWidth(1))
	enc, err := c.EncodeFile([]byte("hello"), "h.txt")
	if err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
	if _, err := mustCodec(t, enc, WithBitWidth(4)).DecodeFile(); !errors.Is(err, ErrFrameCorrupted) {
		t.Fatalf("expected ErrFrameCorrupted with the wrong bit width, got %v", err)
	}
}

func TestFrameCorruptedMessage(t *testing.T) {
	err := &FrameCorruptedError{Field: FieldNameLength, Value: 200}
	want := "stego: error while decoding, nameLength has invalid value of: 200"
	if err.Error() != want {
		t.Fatalf("got %q want %q", err.Error(), want)
	}
}

func TestDecodedName(t *testing.T) {
	if got := DecodedName("notes.txt"); got != "decoded_notes.txt" {
		t.Fatalf("got %q", got)
	}
}

func TestFileCapacity(t *testing.T) {
	cases := []struct {
		pixels, width, want int
	}{
		{256, 2, 48},
		{3, 8, 1},
		{2, 8, 0},
		{0, 1, 0},
		{1024, 8, 768},
	}
	for _, tc := range cases {
		if got := FileCapacity(tc.pixels, tc.width); got != tc.want {
			t.Fatalf("FileCapacity(%d, %d): got %d want %d", tc.pixels, tc.width, got, tc.want)
		}
	}
}
