package core

import "sync"

// Locker serializes the dispatch critical section. Acquire is
// attempted before any sink is touched; a false return drops the
// event with no output produced. Release is called exactly once for
// every successful Acquire, even when a sink fails.
//
// A Logger without a Locker treats both operations as always
// succeeding, which is only safe for single-threaded or cooperative
// deployments.
type Locker interface {
	Acquire() bool
	Release() bool
}

// LockFunc adapts a single acquire/release function to the Locker
// interface, for lock primitives that multiplex both operations
// through one entry point. Application state travels in the closure.
type LockFunc func(acquire bool) bool

// Acquire implements Locker
func (f LockFunc) Acquire() bool { return f(true) }

// Release implements Locker
func (f LockFunc) Release() bool { return f(false) }

// Mutex is a Locker that blocks until the critical section is
// available. Acquisition never fails, so no events are dropped.
type Mutex struct {
	mu sync.Mutex
}

// Acquire implements Locker
func (m *Mutex) Acquire() bool {
	m.mu.Lock()
	return true
}

// Release implements Locker
func (m *Mutex) Release() bool {
	m.mu.Unlock()
	return true
}

// TryMutex is a Locker that refuses acquisition instead of blocking
// when the critical section is contended. Dispatches that lose the
// race are dropped rather than delayed.
type TryMutex struct {
	mu sync.Mutex
}

// Acquire implements Locker
func (m *TryMutex) Acquire() bool { return m.mu.TryLock() }

// Release implements Locker
func (m *TryMutex) Release() bool {
	m.mu.Unlock()
	return true
}
