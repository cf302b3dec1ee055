package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Tiliavir/track/internal/model"
)

// Collection is the JSON document holding every completed record.
type Collection struct {
	path string
}

// NewCollection returns a Collection stored at path.
func NewCollection(path string) *Collection {
	return &Collection{path: path}
}

// Path returns the database location.
func (c *Collection) Path() string { return c.path }

// Load reads all records in insertion order. A missing or empty file yields
// an empty slice. Malformed content returns ErrCorrupt and the file is left
// untouched.
func (c *Collection) Load() ([]model.TimeRecord, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.TimeRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", c.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []model.TimeRecord{}, nil
	}

	var rf model.RecordFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("%w: database %s: %v", ErrCorrupt, c.path, err)
	}
	records := make([]model.TimeRecord, 0, len(rf.Records))
	for i, r := range rf.Records {
		rec, err := model.NewTimeRecord(r.Start, r.End)
		if err != nil {
			return nil, fmt.Errorf("%w: database %s: record %d: %v", ErrCorrupt, c.path, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save replaces the whole database with records.
func (c *Collection) Save(records []model.TimeRecord) error {
	if records == nil {
		records = []model.TimeRecord{}
	}
	data, err := json.MarshalIndent(model.RecordFile{Records: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}
	return writeAtomic(c.path, data)
}

// Append adds rec at the end of the database, rewriting the whole file.
func (c *Collection) Append(rec model.TimeRecord) error {
	records, err := c.Load()
	if err != nil {
		return err
	}
	return c.Save(append(records, rec))
}
