// Package segment implements segment file naming, discovery, and the
// offset-tracking reader/writer wrappers the log engine appends to and
// replays from (spec §4.1, §4.2).
//
// Naming format: "<segment_id>.log", where segment_id is a decimal,
// non-negative integer with no leading zeros required. Segments live
// directly in the database directory and are numbered 0, 1, 2, ... in the
// order they were created; exactly one is active (the one with the
// largest id) at any time.
package segment

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Extension is the fixed suffix every segment file carries.
const Extension = ".log"

// Name returns the filename (not the full path) for the segment with the
// given id.
func Name(id uint64) string {
	return strconv.FormatUint(id, 10) + Extension
}

// Path joins dir with the filename for the segment with the given id.
func Path(dir string, id uint64) string {
	return filepath.Join(dir, Name(id))
}

// ParseID extracts the segment id from a filename, returning ok=false for
// anything that isn't a "<non-negative integer>.log" stem: wrong extension,
// a non-numeric stem, or a stem with a sign.
func ParseID(name string) (uint64, bool) {
	stem, ext := strings.TrimSuffix(name, Extension), filepath.Ext(name)
	if ext != Extension || stem == name {
		return 0, false
	}
	if stem == "" || strings.ContainsAny(stem, "+-") {
		return 0, false
	}
	id, err := strconv.ParseUint(stem, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Discover enumerates dir for regular files matching the segment naming
// convention and returns their ids sorted ascending. Anything else in the
// directory — subdirectories, the engine marker file, files with a
// different extension or a non-integer stem — is ignored.
func Discover(dir string) ([]uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if entry.Type()&os.ModeSymlink != 0 || !entry.Type().IsRegular() {
			continue
		}
		id, ok := ParseID(entry.Name())
		if !ok {
			continue
		}
		ids = append(ids, id)
	}

	slices.Sort(ids)
	return ids, nil
}

// NextID returns the id the next active segment should take: one past the
// largest existing id, or 0 if dir has no segments yet.
func NextID(existing []uint64) uint64 {
	if len(existing) == 0 {
		return 0
	}
	return existing[len(existing)-1] + 1
}
