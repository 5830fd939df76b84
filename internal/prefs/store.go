// Package prefs persists the display preference between sessions.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/atomicstack/wordsearch/internal/logging/events"
	toml "github.com/pelletier/go-toml/v2"
)

const fileName = "prefs.toml"

// Preferences holds user display settings.
type Preferences struct {
	DarkTheme bool `toml:"dark_theme"`
}

// Defaults returns the preferences used before anything has been saved.
func Defaults() Preferences {
	return Preferences{DarkTheme: true}
}

// Store loads and saves preferences.
type Store interface {
	Load() (Preferences, error)
	Save(Preferences) error
}

// DefaultPath returns <UserConfigDir>/wordsearch/prefs.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "wordsearch", fileName), nil
}

// FileStore keeps preferences in a TOML file.
type FileStore struct {
	path string
}

// NewFileStore returns a store at path, or at DefaultPath when path is empty.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

// Load reads the file. A missing file yields Defaults without error.
func (s *FileStore) Load() (Preferences, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("read preferences: %w", err)
	}
	p := Defaults()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("decode preferences %s: %w", s.path, err)
	}
	events.Prefs.Loaded(s.path, p.DarkTheme)
	return p, nil
}

// Save writes p, creating parent directories as needed. The file is replaced
// atomically.
func (s *FileStore) Save(p Preferences) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}
	events.Prefs.Saved(s.path, p.DarkTheme)
	return nil
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu    sync.Mutex
	prefs Preferences
	saves int
	err   error
}

// NewMemoryStore returns a store seeded with p.
func NewMemoryStore(p Preferences) *MemoryStore {
	return &MemoryStore{prefs: p}
}

func (s *MemoryStore) Load() (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs, nil
}

func (s *MemoryStore) Save(p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.prefs = p
	s.saves++
	return nil
}

// FailSaves makes every subsequent Save return err.
func (s *MemoryStore) FailSaves(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Saves reports how many saves succeeded.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
