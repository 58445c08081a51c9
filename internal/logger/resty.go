package logger

// Errorf, Warnf and Debugf make *Logger satisfy resty.Logger, so the HTTP
// client's own diagnostics end up in the same log file.

func (l *Logger) Errorf(format string, v ...any) {
	l.Error().CallerSkipFrame(1).Msgf(format, v...)
}

func (l *Logger) Warnf(format string, v ...any) {
	l.Warn().CallerSkipFrame(1).Msgf(format, v...)
}

func (l *Logger) Debugf(format string, v ...any) {
	l.Debug().CallerSkipFrame(1).Msgf(format, v...)
}
