package core

import (
	"time"

	"github.com/trickstertwo/xclock"
)

// Clock supplies event timestamps as an unsigned counter. The units
// are producer-defined; milliseconds since boot is the usual choice.
// A Logger without a Clock stamps every event with 0.
type Clock interface {
	Now() uint32
}

// ClockFunc adapts a plain function to the Clock interface
type ClockFunc func() uint32

// Now implements Clock
func (f ClockFunc) Now() uint32 { return f() }

// Uptime returns a Clock that reports whole milliseconds elapsed
// since the Uptime call. Time is read through xclock, so frozen or
// offset clocks installed with xclock.SetDefault are respected in
// timestamps.
func Uptime() Clock {
	start := xclock.Now()
	return ClockFunc(func() uint32 {
		return uint32(xclock.Now().Sub(start) / time.Millisecond)
	})
}
