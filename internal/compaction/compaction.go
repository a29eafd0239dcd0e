// Package compaction implements the log engine's online compaction
// procedure (spec §4.5.6): rewriting every live record into a fresh
// segment and retiring the segments it superseded.
//
// Compaction atomicity is achieved by producing the successor into a new
// segment id first and making segment deletion the last step (C2). A crash
// or error anywhere before the old segments are unlinked leaves the
// directory in a state replay can still reconstruct correctly from; the
// source this engine is modeled on deleted files by iterating an
// already-cleared reader map, which deleted nothing — this implementation
// snapshots the set of old segment ids before any reader is closed or any
// file is unlinked, and unlinks exactly that snapshot. Index entries are
// relocated to the new segment only once it is flushed and readable, so a
// failed Run leaves the index pointing at the prior segments.
package compaction

import (
	"os"

	"github.com/iamNilotpal/ignitedb/internal/index"
	"github.com/iamNilotpal/ignitedb/internal/record"
	"github.com/iamNilotpal/ignitedb/internal/segment"
	"github.com/iamNilotpal/ignitedb/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/multierr"
)

// Request bundles everything Run needs from the engine's live state.
type Request struct {
	Dir           string
	Index         *index.Index
	Readers       map[uint64]*segment.Reader // segment id -> reader, including the current active segment
	NextSegmentID uint64                     // id the new active segment will take
	Logger        *zap.SugaredLogger
}

// Result carries back the new engine state compaction installed.
type Result struct {
	SegmentID         uint64
	Writer            *segment.Writer
	Reader            *segment.Reader
	DeletedSegmentIDs []uint64
}

// Run executes one compaction pass and returns the new active segment's
// writer and reader. The caller (the engine) swaps these in for its prior
// writer/reader-map and resets its uncompacted counter to 0 only after Run
// returns successfully.
func Run(req Request) (*Result, error) {
	req.Logger.Infow("running compaction", "newSegmentID", req.NextSegmentID, "liveKeys", req.Index.Len())

	writer, err := segment.OpenWriter(req.Dir, req.NextSegmentID)
	if err != nil {
		return nil, err
	}

	keys := req.Index.Keys()
	moved := make(map[string]index.Location, len(keys))
	for _, key := range keys {
		loc, ok, err := req.Index.Get(key)
		if err != nil {
			_ = writer.Close()
			return nil, err
		}
		if !ok {
			continue
		}

		reader, ok := req.Readers[loc.SegmentID]
		if !ok {
			_ = writer.Close()
			return nil, errors.NewSegmentIDError(loc.SegmentID, key)
		}

		raw, err := reader.ReadAt(loc.Offset, loc.Length)
		if err != nil {
			_ = writer.Close()
			return nil, err
		}

		rec, err := record.Decode(raw)
		if err != nil {
			_ = writer.Close()
			return nil, err
		}
		if rec.Kind != record.KindSet {
			_ = writer.Close()
			return nil, errors.NewUnexpectedRecordError(string(record.KindSet), string(rec.Kind))
		}

		newOffset, n, err := writer.Append(raw)
		if err != nil {
			_ = writer.Close()
			return nil, err
		}

		moved[key] = index.Location{
			SegmentID: req.NextSegmentID,
			Offset:    newOffset,
			Length:    int64(n),
		}
	}

	if err := writer.Flush(); err != nil {
		_ = writer.Close()
		return nil, err
	}

	// Snapshot the old segment ids before anything is closed or unlinked.
	deleted := make([]uint64, 0, len(req.Readers))
	for id := range req.Readers {
		deleted = append(deleted, id)
	}

	reader, err := segment.OpenReader(req.Dir, req.NextSegmentID)
	if err != nil {
		_ = writer.Close()
		return nil, err
	}

	for key, loc := range moved {
		if _, _, err := req.Index.Insert(key, loc); err != nil {
			_ = writer.Close()
			_ = reader.Close()
			return nil, err
		}
	}

	var closeErr error
	for _, id := range deleted {
		closeErr = multierr.Append(closeErr, req.Readers[id].Close())
	}
	if closeErr != nil {
		req.Logger.Warnw("error closing superseded segment readers during compaction", "error", closeErr)
	}

	for _, id := range deleted {
		path := segment.Path(req.Dir, id)
		if err := os.Remove(path); err != nil {
			req.Logger.Warnw("failed to unlink superseded segment", "segmentID", id, "path", path, "error", err)
		}
	}

	req.Logger.Infow("compaction complete", "newSegmentID", req.NextSegmentID, "segmentsRemoved", len(deleted))

	return &Result{
		SegmentID:         req.NextSegmentID,
		Writer:            writer,
		Reader:            reader,
		DeletedSegmentIDs: deleted,
	}, nil
}
