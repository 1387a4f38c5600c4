package stego

import "github.com/faanross/simulacra_img/internal/spec"

// config is immutable once built. SetBitWidth swaps in a new one so mask,
// width and capacity never disagree during a call.
type config struct {
	bitWidth int
	low      uint32 // 2^bitWidth - 1
	mask     uint32 // clears the low bitWidth bits of channels 2, 1 and 0
	capacity int
}

func newConfig(bitWidth, pixels int) (*config, error) {
	if !ValidBitWidth(bitWidth) {
		return nil, &ConfigurationError{BitWidth: bitWidth}
	}
	low := uint32(1)<<bitWidth - 1
	return &config{
		bitWidth: bitWidth,
		low:      low,
		mask:     ChannelMask(bitWidth),
		capacity: Capacity(pixels, bitWidth),
	}, nil
}

// ValidBitWidth reports whether n is one of 1, 2, 4 or 8.
func ValidBitWidth(n int) bool {
	for _, w := range spec.VALID_BIT_WIDTHS {
		if n == w {
			return true
		}
	}
	return false
}

// ChannelMask returns the mask clearing the low bitWidth bits of the three
// color channels. The alpha byte is left set.
func ChannelMask(bitWidth int) uint32 {
	low := uint32(1)<<bitWidth - 1
	var m uint32
	for i := 0; i < spec.CHANNELS; i++ {
		m <<= 8
		m |= low
	}
	return ^m
}

// Capacity returns floor(pixels * bitWidth * 3 / 8), the number of payload
// bytes a buffer of that many pixels can carry.
func Capacity(pixels, bitWidth int) int {
	if pixels <= 0 || bitWidth <= 0 {
		return 0
	}
	return pixels * bitWidth * spec.CHANNELS / spec.BITS_PER_BYTE
}
