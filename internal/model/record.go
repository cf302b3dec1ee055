package model

import (
	"fmt"
	"time"
)

// TimeRecord is one completed tracking interval.
type TimeRecord struct {
	Start Timestamp `json:"start" yaml:"start"`
	End   Timestamp `json:"end" yaml:"end"`
}

// NewTimeRecord builds a record, rejecting a missing timestamp or an end
// before its start.
func NewTimeRecord(start, end Timestamp) (TimeRecord, error) {
	if start.IsZero() || end.IsZero() {
		return TimeRecord{}, fmt.Errorf("record is missing its start or end time")
	}
	if end.Before(start) {
		return TimeRecord{}, fmt.Errorf("record end %s is before start %s", end, start)
	}
	return TimeRecord{Start: start, End: end}, nil
}

// Elapsed returns end-start.
func (r TimeRecord) Elapsed() time.Duration {
	return r.End.Sub(r.Start)
}

// MarkerFile is the document stored in the lockfile while a session is open.
type MarkerFile struct {
	Start Timestamp `json:"start"`
}

// RecordFile is the top-level structure of the record database.
type RecordFile struct {
	Records []TimeRecord `json:"records"`
}
