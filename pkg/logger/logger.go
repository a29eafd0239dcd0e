// Package logger constructs the structured loggers threaded through every
// other package's Config struct.
package logger

import (
	"go.uber.org/zap"
)

// New builds a production-mode sugared logger scoped to service, the
// convention every internal Config struct expects.
func New(service string) *zap.SugaredLogger {
	base, err := zap.NewProduction()
	if err != nil {
		// Logging can't initialize itself with logging, fall back to a no-op
		// core rather than panicking the whole store open.
		base = zap.NewNop()
	}
	return base.Named(service).Sugar()
}

// NewDevelopment builds a development-mode sugared logger with human
// readable, colorized output, used by the server's --dev mode.
func NewDevelopment(service string) *zap.SugaredLogger {
	base, err := zap.NewDevelopment()
	if err != nil {
		base = zap.NewNop()
	}
	return base.Named(service).Sugar()
}

// Nop returns a logger that discards everything, used in tests.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
