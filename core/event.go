package core

import (
	"fmt"
	"sync"
)

// Event represents a single log emission with all its metadata. The
// File string is borrowed from the call site and the Args slice is
// owned only for the duration of dispatch; neither may be retained
// once dispatch returns.
type Event struct {
	Time   uint32 // producer-defined units; 0 when no Clock is configured
	Level  Level
	File   string
	Line   int
	Format string
	Args   []any

	body     string
	rendered bool
}

// Callback is invoked during dispatch for every event at or above
// the level it was registered with. data is the opaque value supplied
// at registration. Callbacks must not retain ev past their return.
type Callback func(ev *Event, data any)

// Body returns the formatted message body. The body is rendered at
// most once per event, so the console sink and every callback observe
// the identical string regardless of how often Body is called.
func (e *Event) Body() string {
	if !e.rendered {
		e.body = fmt.Sprintf(e.Format, e.Args...)
		e.rendered = true
	}
	return e.body
}

// eventPool is a pool of Event objects to reduce allocations
var eventPool = sync.Pool{
	New: func() interface{} {
		return &Event{}
	},
}

// GetEvent retrieves an Event from the pool. The caller is expected
// to assign every exported field before handing the event to a sink.
func GetEvent() *Event {
	return eventPool.Get().(*Event)
}

// PutEvent returns an Event to the pool
func PutEvent(e *Event) {
	if e == nil {
		return
	}
	e.Args = nil
	e.body = ""
	e.rendered = false
	eventPool.Put(e)
}
