package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Tiliavir/track/internal/model"
)

// Marker is the lockfile whose presence means a session is open.
type Marker struct {
	path string
}

// NewMarker returns a Marker stored at path.
func NewMarker(path string) *Marker {
	return &Marker{path: path}
}

// Path returns the lockfile location.
func (m *Marker) Path() string { return m.path }

// Exists reports whether the lockfile is present.
func (m *Marker) Exists() bool {
	_, err := os.Stat(m.path)
	return err == nil
}

// Create writes a new lockfile holding start. The file is opened with
// O_EXCL; if it already exists ErrMarkerExists is returned and the existing
// file is left as is.
func (m *Marker) Create(start model.Timestamp) error {
	data, err := json.Marshal(model.MarkerFile{Start: start})
	if err != nil {
		return fmt.Errorf("storage error marshalling lockfile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	f, err := os.OpenFile(m.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return ErrMarkerExists
	}
	if err != nil {
		return fmt.Errorf("storage error creating lockfile %s: %w", m.path, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(m.path)
		return fmt.Errorf("storage error writing lockfile %s: %w", m.path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(m.path)
		return fmt.Errorf("storage error closing lockfile %s: %w", m.path, err)
	}
	return nil
}

// Read returns the start time stored in the lockfile.
func (m *Marker) Read() (model.Timestamp, error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Timestamp{}, ErrNoMarker
	}
	if err != nil {
		return model.Timestamp{}, fmt.Errorf("storage error reading %s: %w", m.path, err)
	}

	var mf model.MarkerFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return model.Timestamp{}, fmt.Errorf("%w: lockfile %s: %v", ErrCorrupt, m.path, err)
	}
	if mf.Start.IsZero() {
		return model.Timestamp{}, fmt.Errorf("%w: lockfile %s has no start time", ErrCorrupt, m.path)
	}
	return mf.Start, nil
}

// Remove deletes the lockfile. A lockfile that is already gone is not an
// error.
func (m *Marker) Remove() error {
	err := os.Remove(m.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage error removing lockfile %s: %w", m.path, err)
	}
	return nil
}
