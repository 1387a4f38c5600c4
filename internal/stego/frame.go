package stego

import (
	"encoding/binary"

	"github.com/faanross/simulacra_img/internal/spec"
)

// File is a named payload carried in file mode.
type File struct {
	Name    string
	Content []byte
}

// DecodedName is the name the decoder tools give a recovered file.
func DecodedName(name string) string {
	return spec.DECODED_PREFIX + name
}

// MarshalFrame lays out a file-mode frame:
//
//	nameLength(u32 be) | fileLength(u32 be) | name | content
//
// Name characters are truncated to one byte each, as in string mode.
func MarshalFrame(name string, content []byte) []byte {
	nameBytes := CharBytes(name)

	out := make([]byte, spec.FRAME_HEADER_SIZE, spec.FRAME_HEADER_SIZE+len(nameBytes)+len(content))
	binary.BigEndian.PutUint32(out[0:4], uint32(len(nameBytes)))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(content)))
	out = append(out, nameBytes...)
	out = append(out, content...)
	return out
}

// ParseFrame reads a frame out of raw, the full decoded capacity. Lengths are
// bounded by capacity/4; the first violated bound is reported.
func ParseFrame(raw []byte, capacity int) (*File, error) {
	if len(raw) < spec.FRAME_HEADER_SIZE {
		return nil, &FrameCorruptedError{Field: FieldCapacity, Value: int64(len(raw))}
	}
	limit := int64(capacity / 4)

	nameLen := int64(binary.BigEndian.Uint32(raw[0:4]))
	if nameLen <= 0 || nameLen > limit {
		return nil, &FrameCorruptedError{Field: FieldNameLength, Value: nameLen}
	}
	fileLen := int64(binary.BigEndian.Uint32(raw[4:8]))
	if fileLen > limit {
		return nil, &FrameCorruptedError{Field: FieldFileLength, Value: fileLen}
	}
	total := nameLen + fileLen
	if total > limit || spec.FRAME_HEADER_SIZE+total > int64(len(raw)) {
		return nil, &FrameCorruptedError{Field: FieldTotalLength, Value: total}
	}

	off := int64(spec.FRAME_HEADER_SIZE)
	name := raw[off : off+nameLen]
	off += nameLen
	content := make([]byte, fileLen)
	copy(content, raw[off:off+fileLen])

	return &File{Name: charsFromBytes(name), Content: content}, nil
}

// MaxFileBytes is the largest name+content size that EncodeFile writes and
// DecodeFile accepts back.
func (c *Codec) MaxFileBytes() int {
	return FileCapacity(c.buf.PixelCount(), c.BitWidth())
}

// FileCapacity returns the name+content budget of file mode: a quarter of
// the capacity, and never more than what is left after the header.
func FileCapacity(pixels, bitWidth int) int {
	capacity := Capacity(pixels, bitWidth)
	n := min(capacity/4, capacity-spec.FRAME_HEADER_SIZE)
	return max(n, 0)
}

// EncodeFile hides content and its name. The frame header and name count
// toward capacity, and name+content must also fit in MaxFileBytes so the
// result can be decoded again.
func (c *Codec) EncodeFile(content []byte, name string) (*PixelBuffer, error) {
	if len(name) == 0 {
		return nil, ErrEmptyInput
	}
	cfg := c.cfg.Load()
	frame := MarshalFrame(name, content)
	if len(frame) > cfg.capacity {
		return nil, &CapacityExceededError{Requested: len(frame), Max: cfg.capacity, Limit: LimitPayload}
	}
	if body := len(frame) - spec.FRAME_HEADER_SIZE; body > cfg.capacity/4 {
		return nil, &CapacityExceededError{Requested: body, Max: cfg.capacity / 4, Limit: LimitFileBody}
	}
	return c.encode(cfg, frame)
}

// DecodeFile recovers a file hidden by EncodeFile. Writing it anywhere is up
// to the caller.
func (c *Codec) DecodeFile() (*File, error) {
	cfg := c.cfg.Load()
	raw := c.decode(cfg)

	f, err := ParseFrame(raw, cfg.capacity)
	if err != nil {
		c.logger.Warn("frame rejected", Fields{
			"error":     err.Error(),
			"bit_width": cfg.bitWidth,
			"capacity":  cfg.capacity,
		})
		return nil, err
	}
	return f, nil
}
