// Package index provides the in-memory key→location hash map for the
// ignitedb storage engine (spec §4.4). Every live key maps to the
// (segment_id, offset, length) of the Set record that last established its
// value; removed and overwritten keys have no entry. The index is rebuilt
// from segment replay on every open and is never itself persisted.
package index

import (
	stdErrors "errors"

	"github.com/iamNilotpal/ignitedb/pkg/errors"
)

var (
	ErrIndexClosed = stdErrors.New("operation failed: cannot access closed index")
)

// New creates an empty Index ready for concurrent use.
func New(config *Config) (*Index, error) {
	if config == nil || config.Logger == nil {
		return nil, errors.NewValidationError(
			nil, errors.ErrorCodeInvalidInput, "index configuration is required",
		).WithField("config").WithRule("required").WithProvided(config)
	}

	return &Index{
		log:     config.Logger,
		entries: make(map[string]Location, 1024),
	}, nil
}

// Insert records loc as the current location of key, returning the
// previously indexed location and true if one existed. Per §4.4, the
// caller is responsible for adding old.Length to the uncompacted-bytes
// counter when ok is true.
func (idx *Index) Insert(key string, loc Location) (old Location, ok bool, err error) {
	if idx.closed.Load() {
		return Location{}, false, ErrIndexClosed
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	old, ok = idx.entries[key]
	idx.entries[key] = loc
	return old, ok, nil
}

// Get returns the current location of key, if any.
func (idx *Index) Get(key string) (loc Location, ok bool, err error) {
	if idx.closed.Load() {
		return Location{}, false, ErrIndexClosed
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	loc, ok = idx.entries[key]
	return loc, ok, nil
}

// Remove deletes key from the index, returning its last location and true
// if it was present. Per §4.4, the caller adds old.Length to the
// uncompacted-bytes counter when ok is true.
func (idx *Index) Remove(key string) (old Location, ok bool, err error) {
	if idx.closed.Load() {
		return Location{}, false, ErrIndexClosed
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	old, ok = idx.entries[key]
	if ok {
		delete(idx.entries, key)
	}
	return old, ok, nil
}

// Len returns the number of live keys currently indexed.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Keys returns a snapshot of every live key. The returned slice is safe to
// range over without holding the index lock, since it does not alias the
// internal map.
func (idx *Index) Keys() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	keys := make([]string, 0, len(idx.entries))
	for k := range idx.entries {
		keys = append(keys, k)
	}
	return keys
}

// Close releases the index's memory and rejects further operations.
func (idx *Index) Close() error {
	if !idx.closed.CompareAndSwap(false, true) {
		return ErrIndexClosed
	}

	idx.log.Infow("closing index")

	idx.mu.Lock()
	defer idx.mu.Unlock()

	clear(idx.entries)
	idx.entries = nil

	idx.log.Infow("index closed")
	return nil
}
