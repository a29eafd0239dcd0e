// Package record implements the on-disk record codec (spec §4.3): the
// self-delimiting text form that set and remove operations are serialized
// into before being appended to a segment, and the streaming decoder used
// to replay a segment back into index entries.
//
// Records are encoded as JSON objects. JSON satisfies every constraint
// §4.3 imposes: it is self-delimiting (a json.Decoder knows exactly where
// one value ends and the next begins without a newline or length prefix),
// it is deterministic for a given record under encoding/json's fixed field
// order, and encoding/json's escaping rules guarantee no embedded raw
// newline ever appears in the output.
package record

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iamNilotpal/ignitedb/pkg/errors"
)

// Kind discriminates the two record variants (§3).
type Kind string

const (
	KindSet    Kind = "set"
	KindRemove Kind = "remove"
)

// Record is the decoded form of one log entry. Value is unset (empty) for
// Remove records; callers must only look at it for KindSet.
type Record struct {
	Kind  Kind   `json:"kind"`
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
}

// Set builds a Set{key, value} record.
func Set(key, value string) Record {
	return Record{Kind: KindSet, Key: key, Value: value}
}

// Remove builds a Remove{key} record.
func Remove(key string) Record {
	return Record{Kind: KindRemove, Key: key}
}

// Encode serializes r to its on-disk byte form. The result never contains
// an embedded newline.
func Encode(r Record) ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, errors.NewCodecError(err, errors.ErrorCodeCodec, "failed to encode record")
	}
	return b, nil
}

// Decode parses exactly one record from b, which must contain precisely the
// bytes of a single encoded record (the case of a point lookup, where the
// index already gives the exact length to read).
func Decode(b []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(b, &r); err != nil {
		return Record{}, errors.NewCodecError(err, errors.ErrorCodeCodec, "failed to decode record")
	}
	if err := validate(r); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Reader decodes a stream of back-to-back records, reporting after each
// decode the byte offset the stream had reached before that record began
// and how many bytes the record occupied — exactly what replay (§4.5.5)
// needs to build index locations.
type Reader struct {
	dec    *json.Decoder
	offset int64
}

// NewReader wraps r for streaming decode, starting at the given initial
// byte offset (normally 0 for a full segment replay).
func NewReader(r io.Reader, startOffset int64) *Reader {
	return &Reader{dec: json.NewDecoder(r), offset: startOffset}
}

// Next decodes the next record in the stream. It returns io.EOF when the
// stream is exhausted with no partial trailing bytes. recOffset is the
// offset of the first byte of the record just decoded; length is the
// number of bytes it occupied.
func (dr *Reader) Next() (rec Record, recOffset int64, length int64, err error) {
	recOffset = dr.offset + dr.dec.InputOffset()

	if decErr := dr.dec.Decode(&rec); decErr != nil {
		if decErr == io.EOF {
			return Record{}, 0, 0, io.EOF
		}
		return Record{}, 0, 0, errors.NewCodecError(decErr, errors.ErrorCodeCodec, "failed to decode record during replay").
			WithOffset(recOffset)
	}

	if err := validate(rec); err != nil {
		return Record{}, 0, 0, err
	}

	newOffset := dr.offset + dr.dec.InputOffset()
	length = newOffset - recOffset
	return rec, recOffset, length, nil
}

func validate(r Record) error {
	switch r.Kind {
	case KindSet, KindRemove:
	default:
		return errors.NewCodecError(nil, errors.ErrorCodeCodec, fmt.Sprintf("unrecognized record kind %q", r.Kind))
	}
	if r.Key == "" {
		return errors.NewCodecError(nil, errors.ErrorCodeCodec, "record key must not be empty")
	}
	return nil
}
