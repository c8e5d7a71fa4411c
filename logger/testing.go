package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewObservedLogger returns a logger that writes to the given core, which is useful to capture log output in tests.
func NewObservedLogger(core zapcore.Core) *Logger {
	return zap.New(core).Sugar()
}
