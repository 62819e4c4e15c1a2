// Package core defines the shared types used across the emlog module.
//
// It provides the Level type for severity filtering, the Event type
// that represents a single log emission, and the provider contracts
// the dispatch engine is parameterized with: Clock for timestamps,
// Locker for mutual exclusion, and Callback for observer fan-out.
//
// Event objects are pooled via sync.Pool to keep the hot path
// allocation-light. Callers get an Event with GetEvent and must
// return it with PutEvent once every sink has consumed it. The
// formatted body is rendered at most once per event and the same
// rendered string is shared by the console sink and every callback.
package core
