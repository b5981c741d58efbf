package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	_, ok, err := s.Load("sports")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save("sports", []byte(`[{"id":"1"}]`)))

	data, ok, err := s.Load("sports")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"1"}]`), data)

	require.NoError(t, s.Save("sports", []byte(`[]`)))
	data, _, err = s.Load("sports")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save("events", []byte("abc")))

	data, _, err := s.Load("events")
	require.NoError(t, err)
	data[0] = 'X'

	again, _, err := s.Load("events")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again, "mutating a loaded value must not affect the store")
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	_, ok, err := s.Load("sports")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save("sports", []byte(`[{"id":"1"}]`)))

	data, ok, err := s.Load("sports")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"1"}]`), data)
}

func TestFileStoreWritesOneFilePerKey(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	require.NoError(t, s.Save("sports", []byte("[]")))
	require.NoError(t, s.Save("events", []byte("[]")))

	assert.FileExists(t, filepath.Join(dir, "sports.json"))
	assert.FileExists(t, filepath.Join(dir, "events.json"))

	// No temp files may survive a successful save.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFileStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := NewFileStore(dir)

	require.NoError(t, s.Save("sports", []byte("[]")))
	assert.FileExists(t, filepath.Join(dir, "sports.json"))
}

func TestFileStoreOverwriteReplacesValue(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	require.NoError(t, s.Save("sports", []byte(`["old"]`)))
	require.NoError(t, s.Save("sports", []byte(`["new"]`)))

	data, ok, err := s.Load("sports")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`["new"]`), data)
}
