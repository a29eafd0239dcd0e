package options

const (
	// Specifies the default base directory where IgniteDB will store its
	// segment files and engine marker.
	DefaultDataDir = "/var/lib/ignitedb"

	// Default compaction trigger (§4.4): once the uncompacted-bytes counter
	// reaches this many bytes, the engine runs compaction before returning
	// from the set/remove call that crossed the threshold.
	DefaultCompactionThreshold uint64 = 1000

	// MinCompactionThreshold guards against a pathological threshold of 0,
	// which would force compaction on every single write.
	MinCompactionThreshold uint64 = 1

	// DefaultEngine names the log-structured engine backend, as opposed to
	// the alternative ordered-store backend (§4.7).
	DefaultEngine = "kvs"

	// PebbleEngine names the alternative ordered-store backend.
	PebbleEngine = "pebble"
)

// Holds the default configuration settings for an IgniteDB instance.
var defaultOptions = Options{
	DataDir:             DefaultDataDir,
	CompactionThreshold: DefaultCompactionThreshold,
	Engine:              DefaultEngine,
}

// NewDefaultOptions returns a copy of the package's default configuration.
func NewDefaultOptions() Options {
	return defaultOptions
}
