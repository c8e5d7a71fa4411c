package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iotaledger/bstmap/ierrors"
)

func init() {
	defaultEncoderConfig.TimeKey = "" // no timestamps in tests
}

func TestNewRootLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expectRx string
	}{
		{
			name: "console",
			cfg: Config{
				Level:    "info",
				Encoding: "console",
			},
			expectRx: `INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "json",
			cfg: Config{
				Level:    "info",
				Encoding: "json",
			},
			expectRx: `{"level":"INFO","caller":"logger/logger_test.go:\d+","msg":"info"}\n` +
				`{"level":"WARN","caller":"logger/logger_test.go:\d+","msg":"warn"}`,
		},
		{
			name: "debug",
			cfg: Config{
				Level: "debug",
			},
			expectRx: `DEBUG\tlogger/logger_test.go:\d+\tdebug\n` +
				`INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "noCaller",
			cfg: Config{
				DisableCaller: true,
			},
			expectRx: "INFO\tinfo\n" +
				"WARN\twarn\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "bstmap.log")
			tt.cfg.OutputPaths = []string{logFile}

			logger, err := NewRootLogger(tt.cfg)
			require.NoError(t, err, "Unexpected error constructing logger.")

			logger.Debug("debug")
			logger.Info("info")
			logger.Warn("warn")
			require.NoError(t, logger.Sync())

			content, err := os.ReadFile(logFile)
			require.NoError(t, err)
			assert.Regexp(t, tt.expectRx, string(content), "Unexpected log output.")
		})
	}
}

func TestNewRootLoggerInvalidLevel(t *testing.T) {
	_, err := NewRootLogger(Config{Level: "chatty"})
	require.Error(t, err)
	require.True(t, ierrors.Is(err, ErrInvalidLevel))
}

func TestWrappedLogger(t *testing.T) {
	infoCore, infoLogs := observer.New(zapcore.InfoLevel)
	wrapped := NewWrappedLogger(NewObservedLogger(infoCore))
	wrapped.LogDebugf("dropped %d", 1)
	require.Zero(t, infoLogs.Len())

	core, logs := observer.New(zapcore.DebugLevel)
	wrapped = NewWrappedLogger(NewObservedLogger(core))
	wrapped.LogDebugf("debug %d", 1)
	wrapped.LogInfof("info %d", 2)
	wrapped.LogWarnf("warn %d", 3)
	wrapped.LogErrorf("error %d", 4)

	require.Equal(t, 4, logs.Len())
	require.Equal(t, "warn 3", logs.All()[2].Message)
	require.Equal(t, zapcore.ErrorLevel, logs.All()[3].Level)
}

func TestWrappedLoggerWithoutLogger(t *testing.T) {
	wrapped := NewWrappedLogger(nil)

	require.NotPanics(t, func() {
		wrapped.LogDebugf("debug")
		wrapped.LogInfof("info")
		wrapped.LogWarnf("warn")
		wrapped.LogErrorf("error")
	})
}
