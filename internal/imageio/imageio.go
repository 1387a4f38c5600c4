// Package imageio moves images between files and stego.PixelBuffer.
//
// Any format registered with image.Decode can be read: PNG, JPEG and GIF from
// the standard library, BMP, TIFF and WebP from golang.org/x/image. Only
// lossless formats can be written, since re-quantizing the pixels would
// destroy the hidden bits. BMP carries no alpha, so it only accepts fully
// opaque buffers.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/faanross/simulacra_img/internal/stego"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

var (
	ErrLossyFormat       = errors.New("imageio: lossy output format would destroy hidden data")
	ErrUnsupportedFormat = errors.New("imageio: unsupported output format")
	ErrAlphaDropped      = errors.New("imageio: output format cannot store translucent pixels")
)

// Load decodes the image at path.
func Load(path string) (*stego.PixelBuffer, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads an image from r and returns its pixels and format name.
func Decode(r io.Reader) (*stego.PixelBuffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img), format, nil
}

// Save writes buf to path in the format implied by its extension. Paths
// without a known extension are written as PNG.
func Save(path string, buf *stego.PixelBuffer) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, format, buf); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// FormatFor maps a file extension to an output format.
func FormatFor(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", "":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".jpg", ".jpeg", ".gif", ".webp":
		return "", fmt.Errorf("%w: %s", ErrLossyFormat, ext)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Encode writes buf to w in format.
func Encode(w io.Writer, format string, buf *stego.PixelBuffer) error {
	img := ToImage(buf)
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		if i, ok := firstTranslucent(buf); ok {
			return fmt.Errorf("%w: bmp, pixel %d has alpha %d", ErrAlphaDropped, i, buf.Pix[i]>>24)
		}
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func firstTranslucent(buf *stego.PixelBuffer) (int, bool) {
	for i, v := range buf.Pix {
		if v>>24 != 0xFF {
			return i, true
		}
	}
	return 0, false
}

// FromImage copies src into a packed 0xAARRGGBB buffer using straight
// (non-premultiplied) alpha.
func FromImage(src image.Image) *stego.PixelBuffer {
	n := ImageToNRGBA(src)
	w, h := n.Rect.Dx(), n.Rect.Dy()
	buf := stego.NewPixelBuffer(w, h)

	for y := 0; y < h; y++ {
		row := n.Pix[y*n.Stride : y*n.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			buf.Pix[y*w+x] = uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		}
	}
	return buf
}

// ToImage unpacks buf into an *image.NRGBA.
func ToImage(buf *stego.PixelBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+buf.Width*4]
		for x := 0; x < buf.Width; x++ {
			v := buf.Pix[y*buf.Width+x]
			p := row[x*4 : x*4+4]
			p[0] = byte(v >> 16)
			p[1] = byte(v >> 8)
			p[2] = byte(v)
			p[3] = byte(v >> 24)
		}
	}
	return img
}

// ImageToNRGBA copies any image.Image into an *image.NRGBA with bounds
// starting at (0,0).
func ImageToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
