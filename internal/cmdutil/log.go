// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the diagnostics logger for a tool: plain text on dst,
// no colors or timestamps. quiet keeps only warnings and errors.
func NewLogger(dst io.Writer, quiet bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(dst)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	log.SetLevel(logrus.InfoLevel)
	if quiet {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// Warnf logs a warning unless quiet is set.
func Warnf(log logrus.FieldLogger, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	log.Warnf(format, a...)
}
