// Package pebblestore adapts github.com/cockroachdb/pebble, an embedded
// ordered key-value store, to the pkg/kv.KV capability interface (spec
// §4.7). It is the Go analog of the original system's sled-backed engine:
// a conformance-tested drop-in alternative to the log-structured engine,
// not a performance-tuned configuration of pebble.
package pebblestore

import (
	stdErrors "errors"
	"unicode/utf8"

	"github.com/cockroachdb/pebble"
	"github.com/iamNilotpal/ignitedb/pkg/errors"
	"github.com/iamNilotpal/ignitedb/pkg/kv"
	"go.uber.org/zap"
)

// Store wraps a pebble.DB to satisfy kv.KV.
type Store struct {
	db     *pebble.DB
	log    *zap.SugaredLogger
	closed bool
}

var _ kv.KV = (*Store)(nil)

// Open opens (creating if absent) a pebble store rooted at dir.
func Open(dir string, log *zap.SugaredLogger) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.NewBackendError(err, "failed to open pebble store").WithDetail("dir", dir)
	}
	return &Store{db: db, log: log}, nil
}

// Set implements kv.KV.Set: insert-or-overwrite, flushed durable before
// returning (§4.7).
func (s *Store) Set(key, value string) error {
	if err := s.db.Set([]byte(key), []byte(value), pebble.Sync); err != nil {
		return errors.NewBackendError(err, "pebble set failed").WithDetail("key", key)
	}
	return nil
}

// Get implements kv.KV.Get. A missing key returns ("", false, nil); bytes
// that fail UTF-8 validation surface a Utf8Error, since the engine's
// contract is text values only (§3, §4.7).
func (s *Store) Get(key string) (string, bool, error) {
	value, closer, err := s.db.Get([]byte(key))
	if stdErrors.Is(err, pebble.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewBackendError(err, "pebble get failed").WithDetail("key", key)
	}
	defer closer.Close()

	if !utf8.Valid(value) {
		return "", false, errors.NewUtf8Error(nil, key)
	}

	// Copy out of pebble's internal buffer: value is only valid until closer.Close().
	return string(value), true, nil
}

// Remove implements kv.KV.Remove: kv.ErrKeyNotFound when key was absent,
// otherwise a flushed-durable delete (§4.7).
func (s *Store) Remove(key string) error {
	_, closer, err := s.db.Get([]byte(key))
	if stdErrors.Is(err, pebble.ErrNotFound) {
		return kv.ErrKeyNotFound
	}
	if err != nil {
		return errors.NewBackendError(err, "pebble lookup before remove failed").WithDetail("key", key)
	}
	if err := closer.Close(); err != nil {
		return errors.NewBackendError(err, "failed to release pebble read handle").WithDetail("key", key)
	}

	if err := s.db.Delete([]byte(key), pebble.Sync); err != nil {
		return errors.NewBackendError(err, "pebble delete failed").WithDetail("key", key)
	}
	return nil
}

// Close releases the underlying pebble database handle.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.db.Close(); err != nil {
		return errors.NewBackendError(err, "failed to close pebble store")
	}
	return nil
}
