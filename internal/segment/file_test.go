package segment

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterTracksOffsetAfterEachWrite(t *testing.T) {
	dir := t.TempDir()

	w, err := OpenWriter(dir, 0)
	require.NoError(t, err)

	off1, n1, err := w.Append([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), off1)
	assert.Equal(t, int64(5), w.Offset())
	assert.Equal(t, 5, n1)

	off2, _, err := w.Append([]byte("world!"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), off2)
	assert.Equal(t, int64(11), w.Offset())

	require.NoError(t, w.Close())
}

func TestWriterResumesOffsetOnReopen(t *testing.T) {
	dir := t.TempDir()

	w, err := OpenWriter(dir, 0)
	require.NoError(t, err)
	_, _, err = w.Append([]byte("12345"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w2, err := OpenWriter(dir, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), w2.Offset())
	require.NoError(t, w2.Close())
}

func TestReaderSeekAndTakeNBytes(t *testing.T) {
	dir := t.TempDir()

	w, err := OpenWriter(dir, 0)
	require.NoError(t, err)
	_, _, err = w.Append([]byte("abcde"))
	require.NoError(t, err)
	_, _, err = w.Append([]byte("fghij"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := OpenReader(dir, 0)
	require.NoError(t, err)
	defer r.Close()

	got, err := r.ReadAt(5, 5)
	require.NoError(t, err)
	assert.Equal(t, "fghij", string(got))

	got, err = r.ReadAt(0, 5)
	require.NoError(t, err)
	assert.Equal(t, "abcde", string(got))
}

func TestReaderReadAtShortReadFails(t *testing.T) {
	dir := t.TempDir()

	w, err := OpenWriter(dir, 0)
	require.NoError(t, err)
	_, _, err = w.Append([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := OpenReader(dir, 0)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.ReadAt(0, 10)
	assert.Error(t, err)
}

func TestReaderSequentialReadAdvancesOffset(t *testing.T) {
	dir := t.TempDir()

	w, err := OpenWriter(dir, 0)
	require.NoError(t, err)
	_, _, err = w.Append([]byte("abcdef"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := OpenReader(dir, 0)
	require.NoError(t, err)
	defer r.Close()

	buf := make([]byte, 3)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, int64(3), r.Offset())

	pos, err := r.Seek(0, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
	assert.Equal(t, int64(0), r.Offset())
}
