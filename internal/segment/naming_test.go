package segment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameAndParseID(t *testing.T) {
	for _, id := range []uint64{0, 1, 42, 1000000} {
		name := Name(id)
		assert.Equal(t, Name(id), name) // sanity: deterministic
		got, ok := ParseID(name)
		require.True(t, ok)
		assert.Equal(t, id, got)
	}
}

func TestParseIDRejectsMalformedNames(t *testing.T) {
	for _, name := range []string{"abc.log", "1.seg", "1.5.log", "-1.log", "+1.log", ".log", "1.LOG"} {
		_, ok := ParseID(name)
		assert.False(t, ok, "expected %q to be rejected", name)
	}
}

func TestDiscoverIgnoresNonSegmentFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"0.log", "2.log", "10.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ENGINE"), []byte("kvs"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0755))

	ids, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 2, 10}, ids)
}

func TestNextID(t *testing.T) {
	assert.Equal(t, uint64(0), NextID(nil))
	assert.Equal(t, uint64(11), NextID([]uint64{0, 2, 10}))
}
