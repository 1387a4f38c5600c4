// Package logrus writes codec events through logrus.
package logrus

import (
	"github.com/faanross/simulacra_img/internal/stego"
	"github.com/sirupsen/logrus"
)

var _ stego.Logger = Logger{}

// Logger tags every codec event with component=stego.
type Logger struct{ e *logrus.Entry }

func New(l *logrus.Logger) Logger {
	return Logger{e: l.WithField("component", "stego")}
}

func (l Logger) with(f stego.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.e
	}
	return l.e.WithFields(logrus.Fields(f))
}

func (l Logger) Debug(msg string, f stego.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f stego.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f stego.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f stego.Fields) { l.with(f).Error(msg) }
