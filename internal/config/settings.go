package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// AppSettings holds the persisted user preferences.
type AppSettings struct {
	RunInBackground bool `json:"run_in_background"`
}

// LoadSource says which path Load took.
type LoadSource int

const (
	// SourceFile means settings were read from disk.
	SourceFile LoadSource = iota
	// SourceDefaultMissing means no settings file existed.
	SourceDefaultMissing
	// SourceDefaultUnreadable means the file existed but could not be read.
	SourceDefaultUnreadable
	// SourceDefaultCorrupt means the file was read but was not valid JSON.
	SourceDefaultCorrupt
)

func (s LoadSource) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceDefaultMissing:
		return "default (missing)"
	case SourceDefaultUnreadable:
		return "default (unreadable)"
	case SourceDefaultCorrupt:
		return "default (corrupt)"
	default:
		return "unknown"
	}
}

// LoadResult is the outcome of Store.Load. Settings is always usable; Err
// carries the swallowed cause when a default was used.
type LoadResult struct {
	Settings AppSettings
	Source   LoadSource
	Err      error
}

// UsedDefault reports whether the caller-supplied default was returned.
func (r LoadResult) UsedDefault() bool {
	return r.Source != SourceFile
}

// Store reads and writes settings.json at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewDefaultStore creates a store at SettingsPath().
func NewDefaultStore() *Store {
	return NewStore(SettingsPath())
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads settings from disk. A missing, unreadable or malformed file
// yields def; the file never partially overrides the default.
func (s *Store) Load(def AppSettings) LoadResult {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return LoadResult{Settings: def, Source: SourceDefaultMissing}
		}
		return LoadResult{Settings: def, Source: SourceDefaultUnreadable, Err: err}
	}

	var settings AppSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return LoadResult{Settings: def, Source: SourceDefaultCorrupt, Err: err}
	}
	return LoadResult{Settings: settings, Source: SourceFile}
}

// Save writes settings as indented JSON, replacing the file contents.
func (s *Store) Save(settings AppSettings) error {
	content, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("ensure settings directory: %w", err)
	}

	if err := os.WriteFile(s.path, content, 0600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
