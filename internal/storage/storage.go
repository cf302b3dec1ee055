package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrCorrupt is returned when a persisted document cannot be decoded.
	ErrCorrupt = errors.New("corrupt data")
	// ErrMarkerExists is returned when the lockfile is already present.
	ErrMarkerExists = errors.New("lockfile already exists")
	// ErrNoMarker is returned when the lockfile is absent.
	ErrNoMarker = errors.New("lockfile does not exist")
)

// writeAtomic writes data to a temp file next to path and renames it into
// place, so readers never observe a partially written file.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage error creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
