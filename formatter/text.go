package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/jbaxter/emlog/core"
)

// Minimum field widths for the console prefix. Values that need more
// characters widen the field; nothing is ever truncated.
const (
	timestampWidth = 8
	levelWidth     = 5
)

// TextFormatter renders log events as a single prefixed console line:
//
//	{timestamp:>8} {level:<5} {file}:{line}: {body}
//
// The body is written verbatim, including any embedded control
// characters. A trailing newline is the caller's responsibility and
// is never added here, so the emitted length is always exactly
// prefix length + body length.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats an event as text
func (f *TextFormatter) Format(ev *core.Event) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(ev, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an event and writes it directly to the writer
func (f *TextFormatter) FormatTo(ev *core.Event, w io.Writer) (int, error) {
	buf := getBuffer()

	f.formatToBuffer(ev, buf)

	n, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return n, err
}

// formatToBuffer writes the formatted event into the given buffer
func (f *TextFormatter) formatToBuffer(ev *core.Event, buf *bytes.Buffer) {
	// Timestamp, right-aligned. Formatted into a stack scratch buffer
	// because the padding is written before the digits.
	var scratch [10]byte
	ts := strconv.AppendUint(scratch[:0], uint64(ev.Time), 10)
	for i := len(ts); i < timestampWidth; i++ {
		buf.WriteByte(' ')
	}
	buf.Write(ts)
	buf.WriteByte(' ')

	if f.Color {
		buf.WriteString(levelColor(ev.Level))
		writeLevelName(buf, ev.Level)
		buf.WriteString(colorReset)
		buf.WriteByte(' ')
		buf.WriteString(colorOrigin)
		writeOrigin(buf, ev)
		buf.WriteString(colorReset)
	} else {
		writeLevelName(buf, ev.Level)
		buf.WriteByte(' ')
		writeOrigin(buf, ev)
	}
	buf.WriteByte(' ')

	buf.WriteString(ev.Body())
}

// writeLevelName writes the level name, left-aligned
func writeLevelName(buf *bytes.Buffer, level core.Level) {
	name := level.String()
	buf.WriteString(name)
	for i := len(name); i < levelWidth; i++ {
		buf.WriteByte(' ')
	}
}

// writeOrigin writes the "file:line:" origin marker
func writeOrigin(buf *bytes.Buffer, ev *core.Event) {
	buf.WriteString(ev.File)
	buf.WriteByte(':')
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(ev.Line), 10))
	buf.WriteByte(':')
}
