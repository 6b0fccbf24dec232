package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mmcdole/clickrank/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func TestKVStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "clickrank.db")

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	require.NoError(t, s.Set("clicks", "42"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok := s.Get("clicks")
	require.True(t, ok)
	assert.Equal(t, "42", v)
}

func TestKVStoreMissingKey(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "clickrank.db"))
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.Get("clicks")
	assert.False(t, ok)
}

func TestKVStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clickrank.db")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Set("clicks", "7"))
	require.NoError(t, s.Delete("clicks"))
	_, ok := s.Get("clicks")
	assert.False(t, ok)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	_, ok = s.Get("clicks")
	assert.False(t, ok)
}

func TestKVStoreMemoryOnly(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	assert.Empty(t, s.Path())

	require.NoError(t, s.Set("clicks", "3"))
	v, ok := s.Get("clicks")
	require.True(t, ok)
	assert.Equal(t, "3", v)

	require.NoError(t, s.Close())
	_, ok = s.Get("clicks")
	assert.False(t, ok)
}

func TestKVStoreWriteAfterClose(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Set("clicks", "1"), domain.ErrStoreClosed)
	assert.ErrorIs(t, s.Delete("clicks"), domain.ErrStoreClosed)
}

// readOnlyStore reopens path read-only so every write fails
func readOnlyStore(t *testing.T, path string) *KVStore {
	t.Helper()
	db, err := bolt.Open(path, 0600, &bolt.Options{ReadOnly: true, Timeout: time.Second})
	require.NoError(t, err)
	s := &KVStore{db: db, cache: make(map[string]string)}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestKVStoreFailedWriteKeepsCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clickrank.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("clicks", "10"))
	require.NoError(t, s.Close())

	ro := readOnlyStore(t, path)
	v, ok := ro.Get("clicks")
	require.True(t, ok)
	assert.Equal(t, "10", v)

	assert.Error(t, ro.Set("clicks", "11"))
	v, ok = ro.Get("clicks")
	require.True(t, ok)
	assert.Equal(t, "10", v)

	assert.Error(t, ro.Delete("clicks"))
	v, ok = ro.Get("clicks")
	require.True(t, ok)
	assert.Equal(t, "10", v)
}

func TestKVStoreMissingBucketIsMiss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	require.NoError(t, err)
	s := &KVStore{db: db, cache: make(map[string]string)}
	defer s.Close()

	_, ok := s.Get("clicks")
	assert.False(t, ok)
}
