// Package ignitedb is the embedded public API for the database: the
// entry point local processes use to open a store, pick its backend, and
// issue set/get/remove calls without reaching into the internal packages
// directly.
package ignitedb

import (
	stdErrors "errors"
	"path/filepath"

	"github.com/iamNilotpal/ignitedb/internal/engine"
	"github.com/iamNilotpal/ignitedb/internal/pebblestore"
	"github.com/iamNilotpal/ignitedb/pkg/errors"
	"github.com/iamNilotpal/ignitedb/pkg/filesys"
	"github.com/iamNilotpal/ignitedb/pkg/kv"
	"github.com/iamNilotpal/ignitedb/pkg/logger"
	"github.com/iamNilotpal/ignitedb/pkg/options"
	"go.uber.org/zap"
)

// engineMarkerFile records which backend a data directory was first opened
// with. Per the server CLI contract (§6.3) the chosen engine name must be
// persisted on first use and rejected on any later open with a different
// choice, since the kvs and pebble backends lay out incompatible file
// formats in the same directory.
const engineMarkerFile = "ENGINE"

// ErrEngineMismatch is returned when a data directory's persisted engine
// marker disagrees with the engine requested for this open.
var ErrEngineMismatch = stdErrors.New("data directory was initialized with a different engine")

// Instance is the primary entry point for interacting with the Ignite
// store: it wraps whichever backend (log engine or pebble) options.Engine
// selects behind the uniform kv.KV capability.
type Instance struct {
	store   kv.KV
	options options.Options
}

// Open creates or reopens an Instance at the configured data directory,
// selecting its storage backend from options.Engine ("kvs" or "pebble").
func Open(service string, opts ...options.OptionFunc) (*Instance, error) {
	log := logger.New(service)
	o := options.New(opts...)

	if err := filesys.CreateDir(o.DataDir, 0755, true); err != nil {
		return nil, errors.ClassifyDirectoryCreationError(err, o.DataDir)
	}

	if err := checkEngineMarker(o.DataDir, o.Engine); err != nil {
		return nil, err
	}

	store, err := openBackend(o, log)
	if err != nil {
		return nil, err
	}

	return &Instance{store: store, options: o}, nil
}

func openBackend(o options.Options, log *zap.SugaredLogger) (kv.KV, error) {
	switch o.Engine {
	case options.PebbleEngine:
		return pebblestore.Open(filepath.Join(o.DataDir, "pebble"), log)
	case options.DefaultEngine, "":
		return engine.Open(&engine.Config{Options: &o, Logger: log})
	default:
		return nil, errors.NewValidationError(
			nil, errors.ErrorCodeInvalidInput, "unknown engine",
		).WithField("engine").WithRule("oneof(kvs,pebble)").WithProvided(o.Engine)
	}
}

func checkEngineMarker(dir, chosen string) error {
	path := filepath.Join(dir, engineMarkerFile)

	exists, err := filesys.Exists(path)
	if err != nil {
		return errors.NewStorageError(err, errors.ErrorCodeIO, "failed to check engine marker").WithPath(path)
	}

	if !exists {
		return filesys.WriteFile(path, 0644, []byte(chosen))
	}

	contents, err := filesys.ReadFile(path)
	if err != nil {
		return errors.NewStorageError(err, errors.ErrorCodeIO, "failed to read engine marker").WithPath(path)
	}

	if string(contents) != chosen {
		return ErrEngineMismatch
	}
	return nil
}

// Set stores a key-value pair in the database. If the key already exists,
// its value is overwritten.
func (i *Instance) Set(key, value string) error {
	return i.store.Set(key, value)
}

// Get retrieves the value associated with key. ok is false when the key
// has no value.
func (i *Instance) Get(key string) (value string, ok bool, err error) {
	return i.store.Get(key)
}

// Remove deletes key's value. It returns kv.ErrKeyNotFound if key was
// already absent.
func (i *Instance) Remove(key string) error {
	return i.store.Remove(key)
}

// Close releases all resources held by the underlying backend.
func (i *Instance) Close() error {
	return i.store.Close()
}
