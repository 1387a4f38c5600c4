package stego

import "github.com/faanross/simulacra_img/internal/spec"

// slot is one bitWidth-sized position in the carrier.
type slot struct {
	pixel        int
	channelShift uint // 16, 8 or 0
	bitShift     uint // position of the group inside the payload byte
	fresh        bool // first slot in a pixel other than pixel 0
	lastInByte   bool
}

// bitCursor walks pixels, channels 2 -> 1 -> 0, and bit offsets inside the
// current payload byte. Encode and decode share it so the order is identical.
type bitCursor struct {
	width   int
	pixel   int
	channel int
	offset  int
}

func newBitCursor(bitWidth int) *bitCursor {
	return &bitCursor{width: bitWidth, channel: spec.CHANNELS - 1}
}

func (c *bitCursor) next() slot {
	var s slot
	if c.channel < 0 {
		c.channel = spec.CHANNELS - 1
		c.pixel++
		s.fresh = true
	}
	s.pixel = c.pixel
	s.channelShift = uint(c.channel * 8)
	s.bitShift = uint(spec.BITS_PER_BYTE - c.width - c.offset)

	c.offset += c.width
	c.channel--
	if c.offset == spec.BITS_PER_BYTE {
		c.offset = 0
		s.lastInByte = true
	}
	return s
}
