package record

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, rec := range []Record{
		Set("k1", "v1"),
		Set("unicode-key-é", "café ☃"),
		Set("empty-value", ""),
		Remove("k1"),
	} {
		b, err := Encode(rec)
		require.NoError(t, err)
		assert.NotContains(t, string(b), "\n")

		got, err := Decode(b)
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	_, err := Decode([]byte(`{"kind":"bogus","key":"k"}`))
	assert.Error(t, err)
}

func TestDecodeRejectsEmptyKey(t *testing.T) {
	_, err := Decode([]byte(`{"kind":"set","key":"","value":"v"}`))
	assert.Error(t, err)
}

func TestReaderReplaysBackToBackRecords(t *testing.T) {
	var buf bytes.Buffer
	records := []Record{Set("a", "1"), Set("b", "2"), Remove("a"), Set("a", "3")}

	offsets := make([]int64, len(records))
	for i, rec := range records {
		offsets[i] = int64(buf.Len())
		b, err := Encode(rec)
		require.NoError(t, err)
		buf.Write(b)
	}

	r := NewReader(&buf, 0)
	for i, want := range records {
		rec, offset, length, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, want, rec)
		assert.Equal(t, offsets[i], offset)
		assert.Positive(t, length)
	}

	_, _, _, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderHonorsStartOffset(t *testing.T) {
	b, err := Encode(Set("k", "v"))
	require.NoError(t, err)

	r := NewReader(strings.NewReader(string(b)), 100)
	_, offset, length, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(100), offset)
	assert.Equal(t, int64(len(b)), length)
}

func TestReaderFailsOnTruncatedRecord(t *testing.T) {
	b, err := Encode(Set("key", "value"))
	require.NoError(t, err)

	truncated := b[:len(b)-2]
	r := NewReader(bytes.NewReader(truncated), 0)
	_, _, _, err = r.Next()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}
