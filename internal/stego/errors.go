package stego

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration    = errors.New("stego: invalid configuration")
	ErrEmptyInput       = errors.New("stego: message can not be empty")
	ErrCapacityExceeded = errors.New("stego: payload exceeds capacity")
	ErrFrameCorrupted   = errors.New("stego: corrupt frame")
	ErrInvalidBuffer    = errors.New("stego: invalid pixel buffer")
)

// Frame fields reported by FrameCorruptedError.
const (
	FieldNameLength  = "nameLength"
	FieldFileLength  = "fileLength"
	FieldTotalLength = "nameLength+fileLength"
	FieldCapacity    = "capacity"
)

type ConfigurationError struct {
	BitWidth int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("stego: bit width %d not in set {1,2,4,8}", e.BitWidth)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// Limits reported by CapacityExceededError.
const (
	// LimitPayload is the raw capacity; Requested counts every byte written,
	// the file frame header included.
	LimitPayload = "payload"
	// LimitFileBody is the name+content budget of file mode (capacity/4);
	// Requested counts name and content only.
	LimitFileBody = "file body"
)

// CapacityExceededError reports which limit was hit. Requested and Max are
// measured the way Limit describes; an empty Limit means LimitPayload.
type CapacityExceededError struct {
	Requested int
	Max       int
	Limit     string
}

func (e *CapacityExceededError) Error() string {
	limit := e.Limit
	if limit == "" {
		limit = LimitPayload
	}
	return fmt.Sprintf("stego: %s of %d bytes too big, max no of bytes: %d", limit, e.Requested, e.Max)
}

func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }

// FrameCorruptedError names the first frame invariant that failed and the
// value read from the image. A wrong bit width on decode, or an image without
// a hidden file, usually ends up here.
type FrameCorruptedError struct {
	Field string
	Value int64
}

func (e *FrameCorruptedError) Error() string {
	return fmt.Sprintf("stego: error while decoding, %s has invalid value of: %d", e.Field, e.Value)
}

func (e *FrameCorruptedError) Unwrap() error { return ErrFrameCorrupted }
