// Package report records what an encode or decode run did, for auditing
// or scripting around the command line tools.
package report

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/faanross/simulacra_img/internal/analysis"
	"golang.org/x/crypto/blake2b"
)

const (
	OpEncode = "encode"
	OpDecode = "decode"

	ModeString = "string"
	ModeFile   = "file"
)

type Image struct {
	Path   string `json:"path" cbor:"path" msgpack:"path"`
	Format string `json:"format" cbor:"format" msgpack:"format"`
	Width  int    `json:"width" cbor:"width" msgpack:"width"`
	Height int    `json:"height" cbor:"height" msgpack:"height"`
}

type Report struct {
	Operation    string          `json:"operation" cbor:"operation" msgpack:"operation"`
	Mode         string          `json:"mode" cbor:"mode" msgpack:"mode"`
	Input        Image           `json:"input" cbor:"input" msgpack:"input"`
	Output       string          `json:"output,omitempty" cbor:"output,omitempty" msgpack:"output,omitempty"`
	BitWidth     int             `json:"bit_width" cbor:"bit_width" msgpack:"bit_width"`
	Capacity     int             `json:"capacity" cbor:"capacity" msgpack:"capacity"`
	PayloadBytes int             `json:"payload_bytes" cbor:"payload_bytes" msgpack:"payload_bytes"`
	FileName     string          `json:"file_name,omitempty" cbor:"file_name,omitempty" msgpack:"file_name,omitempty"`
	Fingerprint  string          `json:"fingerprint" cbor:"fingerprint" msgpack:"fingerprint"`
	Analysis     *analysis.Stats `json:"analysis,omitempty" cbor:"analysis,omitempty" msgpack:"analysis,omitempty"`
	CreatedAt    time.Time       `json:"created_at" cbor:"created_at" msgpack:"created_at"`
}

// Utilization returns the share of capacity used by the payload, in percent.
func (r *Report) Utilization() float64 {
	if r.Capacity == 0 {
		return 0
	}
	return float64(r.PayloadBytes) * 100 / float64(r.Capacity)
}

// Fingerprint returns the BLAKE2b-256 digest of payload as hex.
func Fingerprint(payload []byte) string {
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Marshal encodes r in format.
func Marshal(format string, r *Report) ([]byte, error) {
	c, err := CodecFor[*Report](format)
	if err != nil {
		return nil, err
	}
	return c.Encode(r)
}

// Write encodes r in format and writes it to path.
func Write(path, format string, r *Report) error {
	b, err := Marshal(format, r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Read loads a report written by Write.
func Read(path, format string) (*Report, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := CodecFor[*Report](format)
	if err != nil {
		return nil, err
	}
	return c.Decode(b)
}
