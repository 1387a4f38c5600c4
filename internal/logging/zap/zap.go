// Package zap writes codec events through a *zap.Logger.
package zap

import (
	"sort"

	"github.com/faanross/simulacra_img/internal/stego"
	"go.uber.org/zap"
)

var _ stego.Logger = Logger{}

// Logger sends codec events to a zap logger named "stego".
type Logger struct{ l *zap.Logger }

func New(l *zap.Logger) Logger { return Logger{l: l.Named("stego")} }

func (z Logger) Debug(msg string, f stego.Fields) { z.l.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f stego.Fields)  { z.l.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f stego.Fields)  { z.l.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f stego.Fields) { z.l.Error(msg, fields(f)...) }

// Sync flushes buffered entries.
func (z Logger) Sync() error { return z.l.Sync() }

// fields orders keys so console output reads the same on every run.
func fields(f stego.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		if err, ok := f[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
