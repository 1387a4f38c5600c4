package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	FormatJSON    = "json"
	FormatCBOR    = "cbor"
	FormatMsgpack = "msgpack"
)

// Codec turns a report value into the bytes of a report file and back.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// JSON writes indented, newline-terminated documents meant to be read by
// people. Decoding rejects fields this build does not know.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	err := dec.Decode(&v)
	return v, err
}

// CBOR uses Core Deterministic encoding so equal reports produce equal
// bytes, with RFC3339Nano timestamps. Build it with NewCBOR.
type CBOR[V any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCBOR[V any]() (CBOR[V], error) {
	eo := cbor.CoreDetEncOptions()
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{enc: em, dec: dm}, nil
}

func (c CBOR[V]) Encode(v V) ([]byte, error) { return c.enc.Marshal(v) }
func (c CBOR[V]) Decode(b []byte) (V, error) {
	var v V
	err := c.dec.Unmarshal(b, &v)
	return v, err
}

// Msgpack writes compact integers with sorted map keys, so it is stable
// across runs like CBOR.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	enc.UseCompactInts(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.NewDecoder(bytes.NewReader(b)).Decode(&v)
	return v, err
}

// CodecFor returns the codec for a -report-format value. An empty format
// means JSON.
func CodecFor[V any](format string) (Codec[V], error) {
	switch format {
	case FormatJSON, "":
		return JSON[V]{}, nil
	case FormatCBOR:
		c, err := NewCBOR[V]()
		if err != nil {
			return nil, err
		}
		return c, nil
	case FormatMsgpack:
		return Msgpack[V]{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}
