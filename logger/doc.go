// Package logger is the public API of emlog. Most users only need to
// import this package.
//
// A Logger dispatches one event at a time: it stamps the event with
// the configured Clock, enters the critical section guarded by the
// configured Locker, writes the formatted line to the console writer
// when the event's level meets the minimum, fans the event out to
// every registered callback whose own threshold is met, and releases
// the lock. A denied lock acquisition drops the event before any
// sink is touched; that is the documented exclusion mechanism, not
// an error.
//
// The console and the callbacks are filtered independently: the
// console uses the Logger's minimum level, each callback uses the
// threshold it was registered with. A callback can therefore fire at
// a level the console suppresses.
//
// The package initializes a default Logger (TraceLevel, text format
// to stdout, blocking mutex, uptime timestamps) in init(). The
// package-level functions Tracef, Infof, Errorf, etc. delegate to
// this default instance, so simple programs can log without setup:
//
//	logger.Infof("ready on port %d\n", port)
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithWriter(os.Stderr).
//	    WithLevel(logger.WarnLevel).
//	    WithLocker(&core.TryMutex{}).
//	    WithCallbackCapacity(4).
//	    Build()
//
// Configuration mutators (SetLevel, EnableConsole, DisableConsole,
// SetLocker, SetClock) are intended for startup, before concurrent
// dispatch begins; they are not guarded by the Locker.
package logger
