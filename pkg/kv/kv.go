// Package kv defines the uniform storage-engine capability (spec §4.6):
// the interface that both the log-structured engine (internal/engine) and
// the alternative ordered-store backend (internal/pebblestore) implement,
// so callers — the embedded API, the TCP server, tests — can be written
// against one contract regardless of which backend is running underneath.
package kv

import stdErrors "errors"

// ErrKeyNotFound is returned by Remove to signal that the key had no
// value, which per §4.6 is success, not failure — callers distinguish it
// from a "was removed" result, never treat it as an error condition to
// propagate.
var ErrKeyNotFound = stdErrors.New("key not found")

// KV is the storage-engine capability interface (§4.6). All three
// operations take text strings and return text strings; values larger
// than memory and typed values are out of scope (§1 Non-goals).
type KV interface {
	// Set inserts or overwrites the value for key.
	Set(key, value string) error

	// Get returns the current value for key and true, or ("", false) if
	// key has no value. A non-nil error indicates a genuine failure (I/O,
	// corruption), not a missing key.
	Get(key string) (value string, ok bool, err error)

	// Remove deletes key's value. It returns ErrKeyNotFound if key was
	// already absent; per §4.6 this is reported to the caller as a
	// distinguishable "no-op" outcome, not folded into a generic error.
	Remove(key string) error

	// Close releases all resources the backend holds (file handles,
	// embedded-store handles). After Close, no other method may be called.
	Close() error
}
