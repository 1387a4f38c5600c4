package stego

import (
	"sync/atomic"

	"github.com/faanross/simulacra_img/internal/spec"
)

// Codec encodes payloads into, and decodes them from, a borrowed PixelBuffer.
// The buffer is never modified: Encode returns a new one.
//
// A Codec may be shared between goroutines; SetBitWidth swaps the whole
// configuration at once and each call works on the configuration it loaded.
type Codec struct {
	buf    *PixelBuffer
	cfg    atomic.Pointer[config]
	logger Logger
}

type Option func(*options)

type options struct {
	bitWidth int
	logger   Logger
}

// WithBitWidth sets the number of low bits used per channel. Default 2.
func WithBitWidth(n int) Option {
	return func(o *options) { o.bitWidth = n }
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewCodec binds a codec to buf.
func NewCodec(buf *PixelBuffer, opts ...Option) (*Codec, error) {
	o := options{bitWidth: spec.DEFAULT_BIT_WIDTH}
	for _, opt := range opts {
		opt(&o)
	}
	if !buf.valid() {
		return nil, ErrInvalidBuffer
	}
	cfg, err := newConfig(o.bitWidth, buf.PixelCount())
	if err != nil {
		return nil, err
	}
	if o.logger == nil {
		o.logger = NopLogger{}
	}

	c := &Codec{buf: buf, logger: o.logger}
	c.cfg.Store(cfg)
	return c, nil
}

// Buffer returns the buffer the codec reads from.
func (c *Codec) Buffer() *PixelBuffer { return c.buf }

func (c *Codec) BitWidth() int { return c.cfg.Load().bitWidth }

// MaxPayloadBytes is the capacity of the buffer at the current bit width.
func (c *Codec) MaxPayloadBytes() int { return c.cfg.Load().capacity }

// SetBitWidth re-validates n and recomputes mask and capacity. On error the
// previous configuration stays in place.
func (c *Codec) SetBitWidth(n int) error {
	cfg, err := newConfig(n, c.buf.PixelCount())
	if err != nil {
		return err
	}
	c.cfg.Store(cfg)
	return nil
}

// Encode hides payload in a copy of the buffer. Pixels that receive at least
// one group of bits have their carrier bits cleared first; the remaining
// pixels are copied as is.
func (c *Codec) Encode(payload []byte) (*PixelBuffer, error) {
	cfg := c.cfg.Load()
	return c.encode(cfg, payload)
}

func (c *Codec) encode(cfg *config, payload []byte) (*PixelBuffer, error) {
	if len(payload) > cfg.capacity {
		return nil, &CapacityExceededError{Requested: len(payload), Max: cfg.capacity, Limit: LimitPayload}
	}

	out := c.buf.Clone()
	if len(out.Pix) > 0 {
		out.Pix[0] &= cfg.mask
	}

	cur := newBitCursor(cfg.bitWidth)
	for _, b := range payload {
		for {
			s := cur.next()
			if s.fresh {
				out.Pix[s.pixel] &= cfg.mask
			}
			group := uint32(b) >> s.bitShift & cfg.low
			out.Pix[s.pixel] |= group << s.channelShift
			if s.lastInByte {
				break
			}
		}
	}

	c.logger.Debug("payload encoded", Fields{
		"bytes":     len(payload),
		"capacity":  cfg.capacity,
		"bit_width": cfg.bitWidth,
	})
	return out, nil
}

// Decode reads the whole capacity back out of the buffer. Callers interpret
// a prefix of the result.
func (c *Codec) Decode() []byte {
	return c.decode(c.cfg.Load())
}

func (c *Codec) decode(cfg *config) []byte {
	out := make([]byte, cfg.capacity)
	pix := c.buf.Pix

	cur := newBitCursor(cfg.bitWidth)
	for i := range out {
		var v byte
		for {
			s := cur.next()
			group := pix[s.pixel] >> s.channelShift & cfg.low
			v |= byte(group) << s.bitShift
			if s.lastInByte {
				break
			}
		}
		out[i] = v
	}

	c.logger.Debug("capacity decoded", Fields{
		"bytes":     len(out),
		"bit_width": cfg.bitWidth,
	})
	return out
}
