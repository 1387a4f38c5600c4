package analysis

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/faanross/simulacra_img/internal/stego"
)

func TestEntropy(t *testing.T) {
	if e := Entropy(nil); e != 0 {
		t.Fatalf("empty: %f", e)
	}
	if e := Entropy(bytes.Repeat([]byte{7}, 100)); e != 0 {
		t.Fatalf("constant: %f", e)
	}
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	if e := Entropy(all); math.Abs(e-8) > 1e-9 {
		t.Fatalf("uniform: %f", e)
	}
}

func TestAnalyzeBlankImage(t *testing.T) {
	buf := stego.NewPixelBuffer(16, 16)
	buf.Fill(0xFF000000)
	c, err := stego.NewCodec(buf)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	s := Analyze(c)
	if s.Pixels != 256 || s.BitWidth != 2 {
		t.Fatalf("unexpected %+v", s)
	}
	if s.Ones != 0 || s.Zeros != 256*3*2 || s.ZeroRatio != 100 {
		t.Fatalf("bit counts: %+v", s)
	}
	if s.FrameValid || s.TextPrefix != 0 || s.Entropy != 0 {
		t.Fatalf("blank image reported a payload: %+v", s)
	}
}

func TestAnalyzeEncodedImage(t *testing.T) {
	buf := stego.NewPixelBuffer(16, 16)
	buf.Fill(0xFF808080)
	c, err := stego.NewCodec(buf)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	enc, err := c.EncodeFile([]byte("hello"), "h.txt")
	if err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
	c, err = stego.NewCodec(enc)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	s := Analyze(c)
	if !s.FrameValid {
		t.Fatalf("frame not detected: %+v", s)
	}
	if s.Ones == 0 {
		t.Fatalf("no carrier bits set")
	}

	var out strings.Builder
	Print(&out, s)
	if !strings.Contains(out.String(), "Valid file frame found") {
		t.Fatalf("summary: %s", out.String())
	}
}

func TestAnalyzeChannelMeans(t *testing.T) {
	buf := &stego.PixelBuffer{Width: 2, Height: 1, Pix: []uint32{0xFF102030, 0xFF304050}}
	c, err := stego.NewCodec(buf, stego.WithBitWidth(8))
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	s := Analyze(c)
	want := [3]float64{0x20, 0x30, 0x40}
	if s.ChannelMeans != want {
		t.Fatalf("means: got %v want %v", s.ChannelMeans, want)
	}
}
