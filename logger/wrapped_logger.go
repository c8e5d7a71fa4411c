package logger

// WrappedLogger is a wrapper to call logging functions in case a logger was passed.
type WrappedLogger struct {
	logger *Logger
}

// NewWrappedLogger creates a new WrappedLogger.
func NewWrappedLogger(logger *Logger) *WrappedLogger {
	return &WrappedLogger{logger: logger}
}

// LogDebugf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogDebugf(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Debugf(template, args...)
	}
}

// LogInfof uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogInfof(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Infof(template, args...)
	}
}

// LogWarnf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogWarnf(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Warnf(template, args...)
	}
}

// LogErrorf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogErrorf(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Errorf(template, args...)
	}
}
