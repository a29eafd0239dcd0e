package pebblestore

import (
	"testing"

	"github.com/iamNilotpal/ignitedb/pkg/kv"
	"github.com/iamNilotpal/ignitedb/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	return s
}

func TestSetThenGetReturnsLatestValue(t *testing.T) {
	s := openTestStore(t)
	defer s.Close()

	require.NoError(t, s.Set("key1", "value1"))
	got, ok, err := s.Get("key1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "value1", got)
}

func TestOverwriteReturnsNewestValue(t *testing.T) {
	s := openTestStore(t)
	defer s.Close()

	require.NoError(t, s.Set("key1", "value1"))
	require.NoError(t, s.Set("key1", "value2"))

	got, ok, err := s.Get("key1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "value2", got)
}

func TestSetThenRemoveThenGetReturnsNone(t *testing.T) {
	s := openTestStore(t)
	defer s.Close()

	require.NoError(t, s.Set("key1", "value1"))
	require.NoError(t, s.Remove("key1"))

	_, ok, err := s.Get("key1")
	require.NoError(t, err)
	assert.False(t, ok)

	err = s.Remove("key1")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}

func TestRemoveOnFreshStoreReturnsNotFound(t *testing.T) {
	s := openTestStore(t)
	defer s.Close()

	err := s.Remove("never-existed")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}

func TestGetOnMissingKeyReturnsNone(t *testing.T) {
	s := openTestStore(t)
	defer s.Close()

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("b", "2"))
	require.NoError(t, s.Set("a", "3"))
	require.NoError(t, s.Remove("b"))
	require.NoError(t, s.Close())

	s2, err := Open(dir, logger.Nop())
	require.NoError(t, err)
	defer s2.Close()

	got, ok, err := s2.Get("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "3", got)

	_, ok, err = s2.Get("b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmptyValueRoundTrips(t *testing.T) {
	s := openTestStore(t)
	defer s.Close()

	require.NoError(t, s.Set("k", ""))
	got, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "", got)
}

func TestUnicodeKeyAndValueRoundTrip(t *testing.T) {
	s := openTestStore(t)
	defer s.Close()

	key := "键-é-☃"
	value := "café ☃ 日本語"
	require.NoError(t, s.Set(key, value))

	got, ok, err := s.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, value, got)
}

func TestCloseIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}
