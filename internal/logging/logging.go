// Package logging builds the stego.Logger used by the command line tools.
package logging

import (
	"fmt"
	"os"

	"github.com/faanross/simulacra_img/internal/stego"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	logruslog "github.com/faanross/simulacra_img/internal/logging/logrus"
	zaplog "github.com/faanross/simulacra_img/internal/logging/zap"
)

const (
	KindZap    = "zap"
	KindLogrus = "logrus"
	KindNone   = "none"
)

// New returns a logger of the given kind writing to stderr, and a function
// flushing it. debug lowers the level to Debug, otherwise only warnings and
// errors are written.
func New(kind string, debug bool) (stego.Logger, func(), error) {
	switch kind {
	case KindZap, "":
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if debug {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		cfg.OutputPaths = []string{"stderr"}
		l, err := cfg.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("zap logger: %w", err)
		}
		z := zaplog.New(l)
		return z, func() { _ = z.Sync() }, nil

	case KindLogrus:
		l := logrus.New()
		l.SetOutput(os.Stderr)
		l.SetLevel(logrus.WarnLevel)
		if debug {
			l.SetLevel(logrus.DebugLevel)
		}
		return logruslog.New(l), func() {}, nil

	case KindNone:
		return stego.NopLogger{}, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown logger %q (want %s, %s or %s)", kind, KindZap, KindLogrus, KindNone)
	}
}
