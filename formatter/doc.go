// Package formatter defines how log events are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer and reports
// the byte count. The Logger checks for WriterFormatter at
// construction time and prefers it when available, eliminating the
// intermediate byte slice allocation on the write path.
//
// The built-in TextFormatter implements both interfaces. It renders
// the fixed console prefix — an eight-character minimum timestamp
// field, the left-aligned level name, and the origin file:line —
// followed by the event body, byte for byte. With Config.Color set,
// the level name and origin are wrapped in ANSI escape sequences
// keyed by severity; coloring is purely cosmetic and has no effect
// on filtering.
//
// Formatting uses a pooled bytes.Buffer and strconv Append-style
// conversions to avoid per-call allocations. Buffers larger than
// 64 KiB are not returned to the pool to prevent a single large log
// line from permanently inflating memory usage.
package formatter
