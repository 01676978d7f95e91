// Package log is the application-wide structured logger. It writes to stderr
// until a log file is configured, since stdout belongs to the viewer.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger pairs a slog logger with the file it writes to, if any.
type Logger struct {
	logger *slog.Logger
	file   *os.File
}

var (
	globalLogger *Logger
	level        = new(slog.LevelVar)
)

func init() {
	level.Set(slog.LevelWarn)
	globalLogger = &Logger{logger: slog.New(newHandler(os.Stderr))}
}

func newHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   slog.TimeKey,
					Value: slog.StringValue(a.Value.Time().Format("2006/01/02 15:04:05.000000")),
				}
			}
			return a
		},
	})
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// SetLevel changes the minimum level of the global logger.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetOutput sends log records to w.
func SetOutput(w io.Writer) {
	closeFile()
	globalLogger = &Logger{logger: slog.New(newHandler(w))}
}

// SetFileOutput appends log records to the named file.
func SetFileOutput(filename string) error {
	logger, err := NewLogger(filename)
	if err != nil {
		return err
	}
	closeFile()
	globalLogger = logger
	return nil
}

// NewLogger creates a logger that appends to filename.
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	return &Logger{logger: slog.New(newHandler(file)), file: file}, nil
}

func Debug(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Warn(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Error(msg, args...)
	}
}

// Close closes the log file, if one is open, and falls back to stderr.
func Close() {
	if globalLogger != nil && globalLogger.file != nil {
		closeFile()
		globalLogger = &Logger{logger: slog.New(newHandler(os.Stderr))}
	}
}

func closeFile() {
	if globalLogger != nil && globalLogger.file != nil {
		globalLogger.file.Close()
		globalLogger.file = nil
	}
}
