// Package engine implements the log-structured storage engine (spec §4.5):
// open, set, get, remove, and compact, composed from the segment naming
// and offset-tracking I/O of internal/segment, the record codec of
// internal/record, the in-memory key index of internal/index, and the
// compaction procedure of internal/compaction.
//
// The engine is not safe for concurrent use from multiple goroutines
// (spec §5): it is single-writer, single-reader per instance. A caller
// that needs concurrent access must serialize externally — see
// internal/concurrent for the mutex-guarded wrapper used by the TCP
// server.
package engine

import (
	stdErrors "errors"
	"io"

	"github.com/iamNilotpal/ignitedb/internal/compaction"
	"github.com/iamNilotpal/ignitedb/internal/index"
	"github.com/iamNilotpal/ignitedb/internal/record"
	"github.com/iamNilotpal/ignitedb/internal/segment"
	"github.com/iamNilotpal/ignitedb/pkg/errors"
	"github.com/iamNilotpal/ignitedb/pkg/filesys"
	"github.com/iamNilotpal/ignitedb/pkg/kv"
	"github.com/iamNilotpal/ignitedb/pkg/options"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	// ErrEngineClosed is returned when attempting to perform operations on a closed engine.
	ErrEngineClosed = stdErrors.New("operation failed: cannot access closed engine")
)

// Engine is the log-structured key-value engine. It owns the active
// writer, one reader per segment holding reachable data, the in-memory
// index, and the uncompacted-bytes counter that drives compaction.
type Engine struct {
	dir       string
	threshold uint64
	log       *zap.SugaredLogger

	idx    *index.Index
	writer *segment.Writer
	// readers maps every segment id that still holds reachable data
	// (including the active segment) to an open reader for it.
	readers map[uint64]*segment.Reader

	activeSegmentID uint64
	uncompacted     uint64
	closed          bool
}

// Config holds the parameters needed to open an Engine.
type Config struct {
	Options *options.Options
	Logger  *zap.SugaredLogger
}

var _ kv.KV = (*Engine)(nil)

// Open implements §4.5.1: ensures dir exists, discovers and replays every
// existing segment into the index, then creates a fresh active segment.
func Open(config *Config) (*Engine, error) {
	if config == nil || config.Options == nil || config.Logger == nil {
		return nil, errors.NewValidationError(
			nil, errors.ErrorCodeInvalidInput, "engine configuration is required",
		).WithField("config").WithRule("required").WithProvided(config)
	}

	dir := config.Options.DataDir
	if err := filesys.CreateDir(dir, 0755, true); err != nil {
		return nil, errors.ClassifyDirectoryCreationError(err, dir)
	}

	idx, err := index.New(&index.Config{Logger: config.Logger})
	if err != nil {
		return nil, err
	}

	existing, err := segment.Discover(dir)
	if err != nil {
		return nil, errors.NewStorageError(err, errors.ErrorCodeIO, "failed to discover segments").WithPath(dir)
	}

	e := &Engine{
		dir:       dir,
		threshold: config.Options.CompactionThreshold,
		log:       config.Logger,
		idx:       idx,
		readers:   make(map[uint64]*segment.Reader, len(existing)+1),
	}

	for _, id := range existing {
		reader, err := segment.OpenReader(dir, id)
		if err != nil {
			return nil, err
		}
		e.readers[id] = reader

		if err := e.replay(id, reader); err != nil {
			return nil, err
		}
	}

	activeID := segment.NextID(existing)
	writer, err := segment.OpenWriter(dir, activeID)
	if err != nil {
		return nil, err
	}
	e.writer = writer
	e.activeSegmentID = activeID

	activeReader, err := segment.OpenReader(dir, activeID)
	if err != nil {
		return nil, err
	}
	e.readers[activeID] = activeReader

	config.Logger.Infow("engine opened", "dir", dir, "activeSegmentID", activeID, "liveKeys", idx.Len())
	return e, nil
}

// replay implements §4.5.5: decode every record in segment id front to
// back, folding each into the index and the uncompacted counter.
func (e *Engine) replay(id uint64, reader *segment.Reader) error {
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return errors.NewStorageError(err, errors.ErrorCodeIO, "failed to seek segment for replay").WithSegmentID(id)
	}

	dec := record.NewReader(reader, 0)
	for {
		rec, offset, length, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch rec.Kind {
		case record.KindSet:
			old, ok, err := e.idx.Insert(rec.Key, index.Location{SegmentID: id, Offset: offset, Length: length})
			if err != nil {
				return err
			}
			if ok {
				e.uncompacted += uint64(old.Length)
			}
		case record.KindRemove:
			old, ok, err := e.idx.Remove(rec.Key)
			if err != nil {
				return err
			}
			if ok {
				e.uncompacted += uint64(old.Length)
			}
			e.uncompacted += uint64(length)
		}
	}

	return nil
}

// Set implements §4.5.2.
func (e *Engine) Set(key, value string) error {
	if e.closed {
		return ErrEngineClosed
	}
	if key == "" {
		return errors.NewRequiredFieldError("key")
	}

	enc, err := record.Encode(record.Set(key, value))
	if err != nil {
		return err
	}

	off, n, err := e.writer.Append(enc)
	if err != nil {
		return err
	}
	if err := e.writer.Flush(); err != nil {
		return err
	}

	old, ok, err := e.idx.Insert(key, index.Location{SegmentID: e.activeSegmentID, Offset: off, Length: int64(n)})
	if err != nil {
		return err
	}
	if ok {
		e.uncompacted += uint64(old.Length)
	}

	return e.maybeCompact()
}

// Get implements §4.5.3.
func (e *Engine) Get(key string) (string, bool, error) {
	if e.closed {
		return "", false, ErrEngineClosed
	}

	loc, ok, err := e.idx.Get(key)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}

	reader, ok := e.readers[loc.SegmentID]
	if !ok {
		return "", false, errors.NewSegmentIDError(loc.SegmentID, key)
	}

	raw, err := reader.ReadAt(loc.Offset, loc.Length)
	if err != nil {
		return "", false, err
	}

	rec, err := record.Decode(raw)
	if err != nil {
		return "", false, err
	}
	if rec.Kind != record.KindSet {
		return "", false, errors.NewUnexpectedRecordError(string(record.KindSet), string(rec.Kind))
	}

	return rec.Value, true, nil
}

// Remove implements §4.5.4.
func (e *Engine) Remove(key string) error {
	if e.closed {
		return ErrEngineClosed
	}

	old, ok, err := e.idx.Remove(key)
	if err != nil {
		return err
	}
	if !ok {
		return kv.ErrKeyNotFound
	}
	e.uncompacted += uint64(old.Length)

	enc, err := record.Encode(record.Remove(key))
	if err != nil {
		return err
	}

	_, n, err := e.writer.Append(enc)
	if err != nil {
		return err
	}
	if err := e.writer.Flush(); err != nil {
		return err
	}
	e.uncompacted += uint64(n)

	return e.maybeCompact()
}

// maybeCompact runs compaction (§4.5.6) when the uncompacted-bytes counter
// has crossed the configured threshold.
func (e *Engine) maybeCompact() error {
	if e.uncompacted < e.threshold {
		return nil
	}

	result, err := compaction.Run(compaction.Request{
		Dir:           e.dir,
		Index:         e.idx,
		Readers:       e.readers,
		NextSegmentID: e.activeSegmentID + 1,
		Logger:        e.log,
	})
	if err != nil {
		e.log.Errorw("compaction failed, continuing with prior segments", "error", err)
		return err
	}

	if err := e.writer.Close(); err != nil {
		e.log.Warnw("error closing superseded writer after compaction", "error", err)
	}

	e.writer = result.Writer
	e.activeSegmentID = result.SegmentID
	e.readers = map[uint64]*segment.Reader{result.SegmentID: result.Reader}
	e.uncompacted = 0

	return nil
}

// Close releases the active writer and every open segment reader.
func (e *Engine) Close() error {
	if e.closed {
		return ErrEngineClosed
	}
	e.closed = true

	var err error
	err = multierr.Append(err, e.writer.Close())
	for id, reader := range e.readers {
		if id == e.activeSegmentID {
			continue
		}
		err = multierr.Append(err, reader.Close())
	}
	// The active segment's reader shares nothing with the writer's file
	// descriptor (each opened its own handle), so it is closed too.
	if reader, ok := e.readers[e.activeSegmentID]; ok {
		err = multierr.Append(err, reader.Close())
	}
	err = multierr.Append(err, e.idx.Close())

	return err
}
