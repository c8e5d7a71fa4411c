package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/bstmap/ierrors"
)

// ErrInvalidLevel is returned if the configured log level can not be parsed.
var ErrInvalidLevel = ierrors.New("invalid log level")

// Logger is the underlying logger used by all components of this module.
type Logger = zap.SugaredLogger

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, ierrors.Wrapf(ErrInvalidLevel, "failed to parse %q", cfg.Level)
		}
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = DefaultCfg.Encoding
	}

	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = DefaultCfg.OutputPaths
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       outputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to build zap logger")
	}

	return logger.Sugar(), nil
}
