package blobstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/ModesteNGOMA/geofuite/pkg/errors"
)

// Store is a file-backed key-value store holding serialized text blobs.
// It mirrors the semantics of a browser local store: one value per key,
// full-replace writes, and a small fixed quota per value.
type Store struct {
	path  string
	quota int64
	mu    sync.Mutex
}

// New creates a store persisting to the given file path. A quota of zero
// or less disables the size check.
func New(path string, quota int64) *Store {
	return &Store{path: path, quota: quota}
}

// Get returns the value stored under key. Returns ErrKeyNotFound when the
// backing file does not exist or the key has never been written.
func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return "", err
	}

	value, ok := entries[key]
	if !ok {
		return "", apperrors.ErrKeyNotFound
	}
	return value, nil
}

// Put overwrites the value under key. The write is full-replace: the whole
// backing file is rewritten atomically (temp file + rename). Returns
// ErrQuotaExceeded without touching the stored value when the new value is
// larger than the quota.
func (s *Store) Put(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quota > 0 && int64(len(value)) > s.quota {
		return apperrors.ErrQuotaExceeded
	}

	entries, err := s.read()
	if err != nil {
		// A corrupt backing file must not block writes. Start over.
		entries = map[string]string{}
	}
	entries[key] = value

	return s.write(entries)
}

func (s *Store) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) write(entries map[string]string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, s.path)
}
