package logger

import (
	"sync"

	"github.com/jbaxter/emlog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// The default logger gives the zero-configuration behavior:
	// everything from TraceLevel up to stdout, serialized with a
	// blocking mutex, timestamped with milliseconds of process
	// uptime. Its callback registry has capacity 0, so package-level
	// RegisterCallback fails until a logger built with
	// WithCallbackCapacity is installed via SetDefault.
	defaultLogger = NewBuilder().
		WithLocker(&core.Mutex{}).
		WithClock(core.Uptime()).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...any) {
	Default().logf(core.TraceLevel, format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...any) {
	Default().logf(core.DebugLevel, format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...any) {
	Default().logf(core.InfoLevel, format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...any) {
	Default().logf(core.WarnLevel, format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...any) {
	Default().logf(core.ErrorLevel, format, args...)
}

// Fatalf logs a formatted fatal message using the default logger.
// Like Logger.Fatalf it does not terminate the process.
func Fatalf(format string, args ...any) {
	Default().logf(core.FatalLevel, format, args...)
}

// SetLevel sets the minimum console level on the default logger
func SetLevel(level core.Level) {
	Default().SetLevel(level)
}

// EnableConsole re-enables console output on the default logger
func EnableConsole() {
	Default().EnableConsole()
}

// DisableConsole suppresses console output on the default logger
func DisableConsole() {
	Default().DisableConsole()
}

// RegisterCallback registers a callback on the default logger
func RegisterCallback(fn core.Callback, data any, minLevel core.Level) bool {
	return Default().RegisterCallback(fn, data, minLevel)
}

// UnregisterCallback unregisters a callback on the default logger
func UnregisterCallback(fn core.Callback, data any) {
	Default().UnregisterCallback(fn, data)
}
