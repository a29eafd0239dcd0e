package index

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Location identifies the exact bytes of the most recent Set record for a
// key: which segment holds it, the byte offset it starts at, and how many
// bytes it occupies (spec §3, §4.4). It is the sole payload the index
// stores per key — no timestamp, no cached value.
type Location struct {
	SegmentID uint64
	Offset    int64
	Length    int64
}

// Index is the in-memory hash map from key to Location (spec §4.4). It is
// never persisted: on open, the engine rebuilds it from segment replay.
// The map is guarded by a RWMutex so the future concurrency upgrade (§9)
// can permit concurrent Get alongside serialized Set/Remove without an
// API change.
type Index struct {
	log     *zap.SugaredLogger
	entries map[string]Location
	mu      sync.RWMutex
	closed  atomic.Bool
}

// Config encapsulates the configuration parameters required to initialize
// an Index.
type Config struct {
	Logger *zap.SugaredLogger
}
