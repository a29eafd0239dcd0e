// Package options provides data structures and functions for configuring
// the Ignite database. It defines the parameters that control Ignite's
// storage behavior and maintenance operations, such as the data directory,
// compaction threshold, and choice of storage backend.
package options

import "strings"

// Options defines the configuration parameters for an Ignite database
// instance. It provides control over storage location, compaction
// behavior, and which engine backend services the capability interface.
type Options struct {
	// Specifies the directory where segment files (or, for the pebble
	// backend, the embedded store's own files) and the engine marker are
	// stored.
	//
	// Default: "/var/lib/ignitedb"
	DataDir string `json:"dataDir"`

	// CompactionThreshold is the uncompacted-bytes counter value (§4.4) at
	// which the engine runs compaction. A lower threshold compacts more
	// often, trading write-amplification for reclaimed space.
	//
	// Default: 1000
	CompactionThreshold uint64 `json:"compactionThreshold"`

	// Engine selects the storage backend: "kvs" for the log-structured
	// engine described in §4, or "pebble" for the alternative ordered-store
	// backend (§4.7).
	//
	// Default: "kvs"
	Engine string `json:"engine"`
}

// OptionFunc is a function type that modifies the Ignite system's configuration.
type OptionFunc func(*Options)

// WithDefaultOptions applies the package's default configuration values.
func WithDefaultOptions() OptionFunc {
	return func(o *Options) {
		opts := NewDefaultOptions()
		o.DataDir = opts.DataDir
		o.CompactionThreshold = opts.CompactionThreshold
		o.Engine = opts.Engine
	}
}

// WithDataDir sets the directory Ignite stores its files under.
func WithDataDir(directory string) OptionFunc {
	return func(o *Options) {
		directory = strings.TrimSpace(directory)
		if directory != "" {
			o.DataDir = directory
		}
	}
}

// WithCompactionThreshold sets the uncompacted-bytes threshold that triggers
// compaction.
func WithCompactionThreshold(threshold uint64) OptionFunc {
	return func(o *Options) {
		if threshold >= MinCompactionThreshold {
			o.CompactionThreshold = threshold
		}
	}
}

// WithEngine selects the storage backend by name ("kvs" or "pebble").
func WithEngine(engine string) OptionFunc {
	return func(o *Options) {
		engine = strings.TrimSpace(strings.ToLower(engine))
		if engine != "" {
			o.Engine = engine
		}
	}
}

// New builds an Options value from the package defaults overridden by the
// given functional options, in order.
func New(opts ...OptionFunc) Options {
	o := NewDefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
