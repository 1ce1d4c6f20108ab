// Package session remembers who is logged in across restarts. The record
// lives under one fixed key: a small JSON file in the data directory. It is a
// cache of the most recently authenticated account, not a source of truth.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"portal/backend/store"
)

const fileName = "session.json"

// Store reads and writes the single persisted session record.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, fileName)}
}

// Current returns the persisted account, or ok=false when nobody is logged
// in. A corrupt file counts as logged out.
func (s *Store) Current() (*store.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}
	var acc store.Account
	if json.Unmarshal(data, &acc) != nil || acc.Email == "" {
		return nil, false
	}
	return &acc, true
}

// Set overwrites the persisted record.
func (s *Store) Set(acc *store.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(acc)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear logs out. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
