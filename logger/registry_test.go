package logger

import (
	"bytes"
	"testing"

	"github.com/jbaxter/emlog/core"
)

// countingCallback increments the int its data points at. Sharing one
// function across registrations means identity is carried entirely by
// the data pointer, as with a C function pointer and its void*.
func countingCallback(ev *core.Event, data any) {
	*(data.(*int))++
}

func newCallbackLogger(capacity int) *Logger {
	return NewBuilder().
		WithWriter(&bytes.Buffer{}).
		WithCallbackCapacity(capacity).
		Build()
}

func TestRegisterCallback_ReRegisterUpdatesInPlace(t *testing.T) {
	log := newCallbackLogger(2)

	fired := 0
	if !log.RegisterCallback(countingCallback, &fired, ErrorLevel) {
		t.Fatal("first registration failed")
	}

	// Registered at Error: a Debug event must not reach it.
	log.Output(DebugLevel, "x.c", 1, "m\n")
	if fired != 0 {
		t.Fatalf("callback fired %d times below its threshold", fired)
	}

	// Re-registering the same identity lowers the threshold in place.
	if !log.RegisterCallback(countingCallback, &fired, TraceLevel) {
		t.Fatal("re-registration failed")
	}
	log.Output(DebugLevel, "x.c", 1, "m\n")
	if fired != 1 {
		t.Fatalf("callback fired %d times after threshold update, want 1", fired)
	}

	// The re-registration must not have consumed a second slot: a
	// capacity-2 registry still has room for one distinct identity.
	other := 0
	if !log.RegisterCallback(countingCallback, &other, TraceLevel) {
		t.Error("registry full after re-registering one identity twice")
	}
}

func TestRegisterCallback_CapacityExhausted(t *testing.T) {
	log := newCallbackLogger(2)

	a, b, c := 0, 0, 0
	if !log.RegisterCallback(countingCallback, &a, TraceLevel) {
		t.Fatal("registration 1 failed")
	}
	if !log.RegisterCallback(countingCallback, &b, TraceLevel) {
		t.Fatal("registration 2 failed")
	}

	// Third distinct identity: must fail without touching the others.
	if log.RegisterCallback(countingCallback, &c, TraceLevel) {
		t.Error("registration beyond capacity succeeded")
	}

	log.Output(InfoLevel, "x.c", 1, "m\n")
	if a != 1 || b != 1 {
		t.Errorf("existing callbacks fired %d/%d after failed registration, want 1/1", a, b)
	}
	if c != 0 {
		t.Errorf("rejected callback fired %d times, want 0", c)
	}
}

func TestRegisterCallback_ZeroCapacity(t *testing.T) {
	log := newCallbackLogger(0)

	fired := 0
	if log.RegisterCallback(countingCallback, &fired, TraceLevel) {
		t.Error("registration succeeded on a capacity-0 registry")
	}
}

func TestRegisterCallback_NilCallback(t *testing.T) {
	log := newCallbackLogger(1)

	if log.RegisterCallback(nil, nil, TraceLevel) {
		t.Error("nil callback registration succeeded")
	}
}

func TestUnregisterCallback(t *testing.T) {
	log := newCallbackLogger(2)

	a, b := 0, 0
	log.RegisterCallback(countingCallback, &a, TraceLevel)
	log.RegisterCallback(countingCallback, &b, TraceLevel)

	log.UnregisterCallback(countingCallback, &a)

	log.Output(InfoLevel, "x.c", 1, "m\n")
	if a != 0 {
		t.Errorf("unregistered callback fired %d times, want 0", a)
	}
	if b != 1 {
		t.Errorf("remaining callback fired %d times, want 1", b)
	}
}

func TestUnregisterCallback_UnknownIdentity(t *testing.T) {
	log := newCallbackLogger(1)

	a, b := 0, 0
	log.RegisterCallback(countingCallback, &a, TraceLevel)

	// Same function, different data: not the registered identity.
	log.UnregisterCallback(countingCallback, &b)

	log.Output(InfoLevel, "x.c", 1, "m\n")
	if a != 1 {
		t.Errorf("callback fired %d times after unrelated unregister, want 1", a)
	}
}

func TestUnregisterCallback_FreesSlot(t *testing.T) {
	log := newCallbackLogger(1)

	a, b := 0, 0
	log.RegisterCallback(countingCallback, &a, TraceLevel)
	log.UnregisterCallback(countingCallback, &a)

	if !log.RegisterCallback(countingCallback, &b, TraceLevel) {
		t.Error("slot not reusable after unregister")
	}
}

func TestCallbackFanoutOrder(t *testing.T) {
	log := newCallbackLogger(3)

	var order []string
	tagged := func(ev *core.Event, data any) {
		order = append(order, data.(string))
	}
	log.RegisterCallback(tagged, "first", TraceLevel)
	log.RegisterCallback(tagged, "second", TraceLevel)
	log.RegisterCallback(tagged, "third", TraceLevel)

	log.Output(InfoLevel, "x.c", 1, "m\n")

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("fan-out reached %d callbacks, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("fan-out order = %v, want %v", order, want)
			break
		}
	}
}

func TestCallbackThresholdsIndependent(t *testing.T) {
	log := newCallbackLogger(2)

	trace, errOnly := 0, 0
	log.RegisterCallback(countingCallback, &trace, TraceLevel)
	log.RegisterCallback(countingCallback, &errOnly, ErrorLevel)

	log.Output(InfoLevel, "x.c", 1, "m\n")

	if trace != 1 {
		t.Errorf("trace-threshold callback fired %d times, want 1", trace)
	}
	if errOnly != 0 {
		t.Errorf("error-threshold callback fired %d times on Info, want 0", errOnly)
	}
}
