// ABOUTME: Process-wide logger backed by zap; printf helpers plus key/value variants
// ABOUTME: Global level via SetLevel; writes to stderr so stdout stays clean for results

package log

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the logging threshold.
type Level = zapcore.Level

// Level constants.
const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

var (
	level = zap.NewAtomicLevelAt(LevelInfo)

	mu     sync.RWMutex
	sugar  *zap.SugaredLogger
	output io.Writer
)

func init() {
	SetOutput(os.Stderr)
}

// SetLevel sets the global log level.
func SetLevel(l Level) {
	level.SetLevel(l)
}

// GetLevel returns the current log level.
func GetLevel() Level {
	return level.Level()
}

// ParseLevel maps "debug", "info", "warn" or "error" to a Level.
func ParseLevel(s string) (Level, error) {
	return zapcore.ParseLevel(s)
}

// SetOutput redirects all log output to w. The level is preserved.
func SetOutput(w io.Writer) {
	encCfg := zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)

	mu.Lock()
	sugar = zap.New(core).Sugar()
	output = w
	mu.Unlock()
}

// Output returns the writer logs currently go to.
func Output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return output
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) { current().Debugf(format, args...) }

// Info logs an info message if the level allows it.
func Info(format string, args ...any) { current().Infof(format, args...) }

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) { current().Warnf(format, args...) }

// Error logs an error message.
func Error(format string, args ...any) { current().Errorf(format, args...) }

// Debugw logs a message with structured key/value pairs at debug level.
func Debugw(msg string, keysAndValues ...any) { current().Debugw(msg, keysAndValues...) }

// Infow logs a message with structured key/value pairs at info level.
func Infow(msg string, keysAndValues ...any) { current().Infow(msg, keysAndValues...) }

// Warnw logs a message with structured key/value pairs at warn level.
func Warnw(msg string, keysAndValues ...any) { current().Warnw(msg, keysAndValues...) }

// Sync flushes buffered entries.
func Sync() error {
	return current().Sync()
}
