package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/clickrank/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var bucketProgress = []byte("progress")

// KVStore implements domain.KV using BoltDB with a memory read cache.
type KVStore struct {
	db     *bolt.DB
	mu     sync.RWMutex // Protects cache and closed
	cache  map[string]string
	closed bool
}

// Open opens (or creates) the store at path. An empty path gives a
// memory-only store that forgets everything on Close.
func Open(path string) (*KVStore, error) {
	if path == "" {
		return &KVStore{cache: make(map[string]string)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketProgress)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &KVStore{db: db, cache: make(map[string]string)}, nil
}

// Path returns the backing file, or "" in memory-only mode.
func (s *KVStore) Path() string {
	if s.db == nil {
		return ""
	}
	return s.db.Path()
}

func (s *KVStore) Get(key string) (string, bool) {
	s.mu.RLock()
	if v, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return v, true
	}
	closed := s.closed
	s.mu.RUnlock()

	if s.db == nil || closed {
		return "", false
	}

	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketProgress)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	if err != nil || value == nil {
		// Read failures are reported as a miss
		return "", false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = string(value)
	s.mu.Unlock()

	return string(value), true
}

// Set writes value under key. The cache only changes once the write lands.
func (s *KVStore) Set(key, value string) error {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return domain.ErrStoreClosed
	}

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketProgress).Put([]byte(key), []byte(value))
		})
		if err != nil {
			return fmt.Errorf("failed to write %q: %w", key, err)
		}
	}

	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()
	return nil
}

func (s *KVStore) Delete(key string) error {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return domain.ErrStoreClosed
	}

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketProgress).Delete([]byte(key))
		})
		if err != nil {
			return fmt.Errorf("failed to delete %q: %w", key, err)
		}
	}

	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
	return nil
}

func (s *KVStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.cache = make(map[string]string)

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

var _ domain.KV = (*KVStore)(nil)
