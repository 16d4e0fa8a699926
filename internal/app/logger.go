package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Logger is the component logger shared by every layer of the engine.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes "<RFC3339> [LEVEL] component: message" lines to w.
type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}

func ResolveLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

// SlogLogger forwards component logs to a structured logger, with the
// component as an attribute.
type SlogLogger struct{ l *slog.Logger }

func NewSlogLogger(w io.Writer, level string) (SlogLogger, error) {
	logLevel, err := ResolveLogLevel(level)
	if err != nil {
		return SlogLogger{}, err
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return SlogLogger{l: slog.New(handler)}, nil
}

func (l SlogLogger) Infof(component string, format string, args ...interface{}) {
	l.l.Info(fmt.Sprintf(format, args...), "component", component)
}

func (l SlogLogger) Errorf(component string, format string, args ...interface{}) {
	l.l.Error(fmt.Sprintf(format, args...), "component", component)
}
