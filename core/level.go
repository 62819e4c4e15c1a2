package core

// Level represents the severity of a log event
type Level int8

const (
	// TraceLevel for fine-grained tracing output (default minimum)
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable error messages
	FatalLevel
)

// String returns the display name of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// AtLeast reports whether l meets the given threshold. The comparison
// is purely ordinal.
func (l Level) AtLeast(threshold Level) bool {
	return l >= threshold
}
