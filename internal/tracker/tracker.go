// Package tracker implements the start/stop state machine of a tracking
// session and exposes the history of completed sessions.
package tracker

import (
	"errors"
	"iter"

	"github.com/Tiliavir/track/internal/model"
)

// ErrNotRunning is returned by Stop when no session is open.
var ErrNotRunning = errors.New("no tracking session is running")

// StartStatus is the outcome of a successful Start.
type StartStatus int

const (
	// Started means a new session was opened.
	Started StartStatus = iota
	// AlreadyRunning means a session was already open and nothing changed.
	AlreadyRunning
)

func (s StartStatus) String() string {
	switch s {
	case Started:
		return "started"
	case AlreadyRunning:
		return "already running"
	default:
		return "unknown"
	}
}

// Tracker opens and closes tracking sessions.
type Tracker interface {
	// Start opens a session. Calling it while a session is open returns
	// AlreadyRunning and keeps the original start time.
	Start() (StartStatus, error)
	// Stop closes the open session and returns the stored record.
	Stop() (model.TimeRecord, error)
	// IsRunning reports whether a session is open.
	IsRunning() bool
	// Records returns all completed sessions in insertion order.
	Records() (iter.Seq[model.TimeRecord], error)
}

func sequence(records []model.TimeRecord) iter.Seq[model.TimeRecord] {
	return func(yield func(model.TimeRecord) bool) {
		for _, r := range records {
			if !yield(r) {
				return
			}
		}
	}
}

// closeAt builds the record for a session started at start and stopped at
// now. A wall clock that moved backwards yields a zero-length record.
func closeAt(start, now model.Timestamp) model.TimeRecord {
	if now.Before(start) {
		now = start
	}
	return model.TimeRecord{Start: start, End: now}
}
