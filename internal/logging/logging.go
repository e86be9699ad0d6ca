package logging

import (
	"github.com/pion/logging"
)

var loggerFactory logging.LoggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger creates a leveled logger scoped under yuvproc.
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scope)
}

// Factory returns the package-wide default factory.
func Factory() logging.LoggerFactory {
	return loggerFactory
}
