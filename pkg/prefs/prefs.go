// Package prefs persists the last-used joint parameters between
// sessions. Persistence belongs to the UI layer: the store is
// injected into the app, loaded once at startup and saved on every
// parameter change, and never threaded through the geometry core.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/chazu/dovetail/pkg/joint"
)

// Store reads and writes the last-used parameters.
type Store interface {
	// Load returns the stored parameters, or the defaults when
	// nothing has been stored yet.
	Load() (joint.Params, error)
	// Save stores the parameters.
	Save(joint.Params) error
}

// FileStore is a Store backed by a JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store at an explicit path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultFileStore places the store in the user's config directory.
func DefaultFileStore() (*FileStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("prefs: no config directory: %w", err)
	}
	return NewFileStore(filepath.Join(dir, "dovetail", "prefs.json")), nil
}

// Load reads the stored parameters. A missing file is not an error:
// first launch gets the defaults.
func (s *FileStore) Load() (joint.Params, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return joint.DefaultParams(), nil
	}
	if err != nil {
		return joint.Params{}, fmt.Errorf("prefs: read %s: %w", s.path, err)
	}

	var p joint.Params
	if err := json.Unmarshal(data, &p); err != nil {
		return joint.Params{}, fmt.Errorf("prefs: parse %s: %w", s.path, err)
	}
	return p, nil
}

// Save writes the parameters, creating the directory on first save.
func (s *FileStore) Save(p joint.Params) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("prefs: create dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("prefs: write %s: %w", s.path, err)
	}
	return nil
}
