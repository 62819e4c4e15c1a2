package logger

import (
	"reflect"

	"github.com/jbaxter/emlog/core"
)

// callbackEntry is one occupied registry slot. Identity for
// registration and removal is the (function pointer, data) pair; the
// minimum level is the slot's payload.
type callbackEntry struct {
	fn       core.Callback
	key      uintptr
	data     any
	minLevel core.Level
}

// callbackRegistry is a fixed-capacity slot table of callbacks. An
// empty slot holds a nil callback. Slot positions are stable:
// registration fills the first empty slot and entries never move
// afterwards, so fan-out order follows slot order.
type callbackRegistry struct {
	slots []callbackEntry
}

func newCallbackRegistry(capacity int) *callbackRegistry {
	if capacity < 0 {
		capacity = 0
	}
	return &callbackRegistry{slots: make([]callbackEntry, capacity)}
}

// callbackKey derives the identity pointer for a callback function.
// Closures built from the same function literal share a key and are
// told apart by their data value, the same way C function pointers
// are disambiguated by their void* argument.
func callbackKey(fn core.Callback) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// register installs fn with its data and minimum level. Any existing
// entry with the same identity is removed first, so re-registering
// updates the threshold in place instead of consuming a second slot.
// It returns false, with the registry unchanged, when every slot is
// occupied by a distinct identity.
func (r *callbackRegistry) register(fn core.Callback, data any, minLevel core.Level) bool {
	if fn == nil {
		return false
	}
	key := callbackKey(fn)
	r.remove(key, data)
	for i := range r.slots {
		if r.slots[i].fn == nil {
			r.slots[i] = callbackEntry{fn: fn, key: key, data: data, minLevel: minLevel}
			return true
		}
	}
	return false
}

// unregister removes at most one entry matching the (fn, data)
// identity exactly. Unknown identities are a silent no-op.
func (r *callbackRegistry) unregister(fn core.Callback, data any) {
	if fn == nil {
		return
	}
	r.remove(callbackKey(fn), data)
}

func (r *callbackRegistry) remove(key uintptr, data any) {
	for i := range r.slots {
		if r.slots[i].fn != nil && r.slots[i].key == key && r.slots[i].data == data {
			r.slots[i] = callbackEntry{}
			return
		}
	}
}

// dispatch invokes, in slot order, every registered callback whose
// threshold the event's level meets.
func (r *callbackRegistry) dispatch(ev *core.Event) {
	for i := range r.slots {
		cb := &r.slots[i]
		if cb.fn != nil && ev.Level.AtLeast(cb.minLevel) {
			cb.fn(ev, cb.data)
		}
	}
}
