package stego

// PixelBuffer is a row-major slice of packed 0xAARRGGBB values.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewPixelBuffer allocates a zeroed width x height buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// PixelCount returns Width*Height.
func (b *PixelBuffer) PixelCount() int {
	return b.Width * b.Height
}

// Clone returns a deep copy of b.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]uint32, len(b.Pix))
	copy(pix, b.Pix)
	return &PixelBuffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// Fill sets every pixel to argb.
func (b *PixelBuffer) Fill(argb uint32) {
	for i := range b.Pix {
		b.Pix[i] = argb
	}
}

func (b *PixelBuffer) valid() bool {
	return b != nil && b.Width >= 0 && b.Height >= 0 && len(b.Pix) == b.Width*b.Height
}
