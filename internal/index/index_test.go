package index

import (
	"testing"

	"github.com/iamNilotpal/ignitedb/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := New(&Config{Logger: logger.Nop()})
	require.NoError(t, err)
	return idx
}

func TestInsertGetRemove(t *testing.T) {
	idx := newTestIndex(t)

	_, ok, err := idx.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	loc := Location{SegmentID: 0, Offset: 10, Length: 20}
	old, existed, err := idx.Insert("k", loc)
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Zero(t, old)

	got, ok, err := idx.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, loc, got)

	loc2 := Location{SegmentID: 0, Offset: 50, Length: 5}
	old, existed, err = idx.Insert("k", loc2)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, loc, old)

	removed, ok, err := idx.Remove("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, loc2, removed)

	_, ok, err = idx.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = idx.Remove("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLenAndKeys(t *testing.T) {
	idx := newTestIndex(t)

	for _, k := range []string{"a", "b", "c"} {
		_, _, err := idx.Insert(k, Location{})
		require.NoError(t, err)
	}

	assert.Equal(t, 3, idx.Len())
	assert.ElementsMatch(t, []string{"a", "b", "c"}, idx.Keys())
}

func TestCloseRejectsFurtherUse(t *testing.T) {
	idx := newTestIndex(t)
	require.NoError(t, idx.Close())

	err := idx.Close()
	assert.ErrorIs(t, err, ErrIndexClosed)

	_, _, err = idx.Get("k")
	assert.ErrorIs(t, err, ErrIndexClosed)

	_, _, err = idx.Insert("k", Location{})
	assert.ErrorIs(t, err, ErrIndexClosed)
}
