package logger

import (
	"io"
	"os"

	"github.com/jbaxter/emlog/core"
	"github.com/jbaxter/emlog/formatter"
)

// callerSkip is the stack depth from core.Caller up to the user's
// call site through the leveled convenience methods.
const callerSkip = 3

// Logger is the event dispatch engine. It filters events by
// severity, renders them to the console writer, and fans them out to
// registered callbacks, all inside the critical section guarded by
// the configured Locker.
type Logger struct {
	w               io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	level           core.Level
	consoleOff      bool
	locker          core.Locker
	clock           core.Clock
	callbacks       *callbackRegistry
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	w         io.Writer
	formatter formatter.Formatter
	level     core.Level
	locker    core.Locker
	clock     core.Clock
	capacity  int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		w:     os.Stdout,
		level: core.TraceLevel, // Default level
	}
}

// WithWriter sets the console sink (default: os.Stdout)
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.w = w
	return b
}

// WithFormatter sets the console formatter (default: monochrome text)
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithLevel sets the minimum level for console output
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithLocker sets the lock provider guarding the dispatch critical
// section. Without one, concurrent dispatches may interleave.
func (b *Builder) WithLocker(locker core.Locker) *Builder {
	b.locker = locker
	return b
}

// WithClock sets the timestamp provider. Without one, every event is
// stamped with 0.
func (b *Builder) WithClock(clock core.Clock) *Builder {
	b.clock = clock
	return b
}

// WithCallbackCapacity sets the size of the callback registry. The
// default is 0, in which case every registration attempt fails.
func (b *Builder) WithCallbackCapacity(capacity int) *Builder {
	b.capacity = capacity
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	f := b.formatter
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	l := &Logger{
		w:         b.w,
		formatter: f,
		level:     b.level,
		locker:    b.locker,
		clock:     b.clock,
		callbacks: newCallbackRegistry(b.capacity),
	}
	// Cache WriterFormatter for the byte-counting direct-write path
	l.writerFormatter, _ = f.(formatter.WriterFormatter)
	return l
}

// SetLevel sets the minimum level for console output. Like the other
// configuration mutators it is intended for startup, before
// concurrent dispatch begins; it is not guarded by the Locker.
func (l *Logger) SetLevel(level core.Level) {
	l.level = level
}

// DisableConsole suppresses console output. Callback fan-out is
// unaffected.
func (l *Logger) DisableConsole() {
	l.consoleOff = true
}

// EnableConsole re-enables console output (the initial state).
func (l *Logger) EnableConsole() {
	l.consoleOff = false
}

// SetLocker replaces the lock provider. nil removes it, making every
// acquisition succeed.
func (l *Logger) SetLocker(locker core.Locker) {
	l.locker = locker
}

// SetClock replaces the timestamp provider. nil removes it, stamping
// every event with 0.
func (l *Logger) SetClock(clock core.Clock) {
	l.clock = clock
}

// RegisterCallback installs fn so it is invoked for every event at or
// above minLevel, with data passed back on each invocation. The
// (fn, data) pair is the registration identity: registering the same
// pair again updates its threshold in place without consuming a
// second slot. It returns false, with the registry unchanged, when
// the registry is full — an unrelated entry is never overwritten to
// make room. data takes part in identity matching and must be
// comparable; a pointer is the intended shape.
func (l *Logger) RegisterCallback(fn core.Callback, data any, minLevel core.Level) bool {
	return l.callbacks.register(fn, data, minLevel)
}

// UnregisterCallback removes the entry matching the (fn, data)
// identity exactly. Removing an identity that was never registered
// is a no-op.
func (l *Logger) UnregisterCallback(fn core.Callback, data any) {
	l.callbacks.unregister(fn, data)
}

// Output dispatches one event with an explicit origin. It returns
// the number of bytes written to the console: 0 when the event was
// dropped, filtered or the console is disabled, and -1 when the
// console write failed. A failed console write never blocks the
// callback fan-out.
func (l *Logger) Output(level core.Level, file string, line int, format string, args ...any) int {
	ev := core.GetEvent()
	ev.Time = l.timestamp()
	ev.Level = level
	ev.File = file
	ev.Line = line
	ev.Format = format
	ev.Args = args

	n := l.dispatch(ev)
	core.PutEvent(ev)
	return n
}

// Logf dispatches at an arbitrary level, capturing the caller's file
// and line.
func (l *Logger) Logf(level core.Level, format string, args ...any) {
	l.logf(level, format, args...)
}

// Tracef logs a formatted message at TraceLevel
func (l *Logger) Tracef(format string, args ...any) {
	l.logf(core.TraceLevel, format, args...)
}

// Debugf logs a formatted message at DebugLevel
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(core.DebugLevel, format, args...)
}

// Infof logs a formatted message at InfoLevel
func (l *Logger) Infof(format string, args ...any) {
	l.logf(core.InfoLevel, format, args...)
}

// Warnf logs a formatted message at WarnLevel
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(core.WarnLevel, format, args...)
}

// Errorf logs a formatted message at ErrorLevel
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(core.ErrorLevel, format, args...)
}

// Fatalf logs a formatted message at FatalLevel. It does not
// terminate the process; the worst case in this core is lost
// telemetry, never termination.
func (l *Logger) Fatalf(format string, args ...any) {
	l.logf(core.FatalLevel, format, args...)
}

// logf captures the caller at a fixed depth and dispatches. Every
// exported leveled method must sit exactly one frame above it.
func (l *Logger) logf(level core.Level, format string, args ...any) {
	file, line := core.Caller(callerSkip)
	l.Output(level, file, line, format, args...)
}

// dispatch runs the critical section: acquire, console write,
// callback fan-out, release. A denied acquisition drops the event
// before any sink is touched.
func (l *Logger) dispatch(ev *core.Event) int {
	if !l.acquire() {
		return 0
	}
	defer l.release()

	n := 0
	if !l.consoleOff && ev.Level.AtLeast(l.level) && l.w != nil {
		n = l.print(ev)
	}
	l.callbacks.dispatch(ev)
	return n
}

// print writes the event to the console writer and reports the byte
// count, or -1 on a write error.
func (l *Logger) print(ev *core.Event) int {
	if l.writerFormatter != nil {
		n, err := l.writerFormatter.FormatTo(ev, l.w)
		if err != nil {
			return -1
		}
		return n
	}
	b, err := l.formatter.Format(ev)
	if err != nil {
		return -1
	}
	n, err := l.w.Write(b)
	if err != nil {
		return -1
	}
	return n
}

func (l *Logger) timestamp() uint32 {
	if l.clock == nil {
		return 0
	}
	return l.clock.Now()
}

func (l *Logger) acquire() bool {
	if l.locker == nil {
		return true
	}
	return l.locker.Acquire()
}

func (l *Logger) release() {
	if l.locker != nil {
		l.locker.Release()
	}
}
