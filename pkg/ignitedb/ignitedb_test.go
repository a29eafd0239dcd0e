package ignitedb

import (
	"testing"

	"github.com/iamNilotpal/ignitedb/pkg/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSetGetRemoveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	db, err := Open("test", options.WithDataDir(dir))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Set("k", "v"))
	got, ok, err := db.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", got)

	require.NoError(t, db.Remove("k"))
	_, ok, err = db.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenPersistsEngineMarkerAndRejectsMismatch(t *testing.T) {
	dir := t.TempDir()

	db, err := Open("test", options.WithDataDir(dir), options.WithEngine(options.DefaultEngine))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open("test", options.WithDataDir(dir), options.WithEngine(options.PebbleEngine))
	assert.ErrorIs(t, err, ErrEngineMismatch)

	db2, err := Open("test", options.WithDataDir(dir), options.WithEngine(options.DefaultEngine))
	require.NoError(t, err)
	require.NoError(t, db2.Close())
}

func TestOpenRejectsUnknownEngine(t *testing.T) {
	dir := t.TempDir()
	_, err := Open("test", options.WithDataDir(dir), options.WithEngine("bogus"))
	assert.Error(t, err)
}

func TestOpenWithPebbleEngine(t *testing.T) {
	dir := t.TempDir()
	db, err := Open("test", options.WithDataDir(dir), options.WithEngine(options.PebbleEngine))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Set("k", "v"))
	got, ok, err := db.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", got)
}
