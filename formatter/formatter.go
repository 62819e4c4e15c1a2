package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/jbaxter/emlog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log event into bytes
	Format(ev *core.Event) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can
// implement to write directly to a writer without an intermediate
// byte slice allocation. It reports the number of bytes written.
type WriterFormatter interface {
	// FormatTo formats a log event and writes it directly to the writer
	FormatTo(ev *core.Event, w io.Writer) (int, error)
}

// Config holds common formatter configuration
type Config struct {
	// Color wraps the level name and origin in ANSI escape sequences
	// keyed by severity
	Color bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
