package tracker

import (
	"errors"
	"fmt"
	"iter"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Tiliavir/track/internal/model"
	"github.com/Tiliavir/track/internal/storage"
	"github.com/Tiliavir/track/internal/timecalc"
)

// Options configures a FileTracker.
type Options struct {
	// DBPath is the JSON document holding completed records.
	DBPath string
	// LockfilePath is the marker file present while a session is open.
	LockfilePath string
	// Clock defaults to timecalc.RealClock.
	Clock timecalc.Clock
	// Logger receives debug output. The zero value discards it.
	Logger zerolog.Logger
}

// FileTracker persists sessions on the local filesystem. It holds no state
// of its own: every call consults the files.
type FileTracker struct {
	marker  *storage.Marker
	records *storage.Collection
	clock   timecalc.Clock
	logger  zerolog.Logger
}

var _ Tracker = (*FileTracker)(nil)

// NewFileTracker validates opts and returns a FileTracker.
func NewFileTracker(opts Options) (*FileTracker, error) {
	if opts.DBPath == "" {
		return nil, errors.New("database path is required")
	}
	if opts.LockfilePath == "" {
		return nil, errors.New("lockfile path is required")
	}
	if filepath.Clean(opts.DBPath) == filepath.Clean(opts.LockfilePath) {
		return nil, fmt.Errorf("database and lockfile must be different files: %s", opts.DBPath)
	}

	clock := opts.Clock
	if clock == nil {
		clock = timecalc.RealClock{}
	}
	return &FileTracker{
		marker:  storage.NewMarker(opts.LockfilePath),
		records: storage.NewCollection(opts.DBPath),
		clock:   clock,
		logger:  opts.Logger.With().Str("component", "tracker").Logger(),
	}, nil
}

// Start creates the lockfile. Exclusive creation is the only guard: a
// concurrent invocation that wins the race makes this one report
// AlreadyRunning.
func (t *FileTracker) Start() (StartStatus, error) {
	now := t.clock.Now()
	err := t.marker.Create(now)
	if errors.Is(err, storage.ErrMarkerExists) {
		t.logger.Debug().Str("lockfile", t.marker.Path()).Msg("Session already running")
		return AlreadyRunning, nil
	}
	if err != nil {
		return 0, err
	}
	t.logger.Debug().Stringer("start", now).Msg("Session started")
	return Started, nil
}

// Stop appends the open session to the database and then removes the
// lockfile. If a previous Stop appended the record but died before removing
// the lockfile, the record is not appended a second time.
func (t *FileTracker) Stop() (model.TimeRecord, error) {
	start, err := t.marker.Read()
	if errors.Is(err, storage.ErrNoMarker) {
		return model.TimeRecord{}, ErrNotRunning
	}
	if err != nil {
		return model.TimeRecord{}, err
	}

	records, err := t.records.Load()
	if err != nil {
		return model.TimeRecord{}, err
	}

	var rec model.TimeRecord
	if n := len(records); n > 0 && records[n-1].Start.Equal(start) {
		rec = records[n-1]
		t.logger.Warn().Stringer("start", start).Msg("Session already recorded, clearing stale lockfile")
	} else {
		rec = closeAt(start, t.clock.Now())
		if err := t.records.Save(append(records, rec)); err != nil {
			return model.TimeRecord{}, err
		}
	}

	if err := t.marker.Remove(); err != nil {
		return model.TimeRecord{}, err
	}
	t.logger.Debug().
		Stringer("start", rec.Start).
		Stringer("end", rec.End).
		Dur("elapsed", rec.Elapsed()).
		Msg("Session stopped")
	return rec, nil
}

// IsRunning reports whether the lockfile exists.
func (t *FileTracker) IsRunning() bool {
	return t.marker.Exists()
}

// Current returns the start of the open session, if any.
func (t *FileTracker) Current() (model.Timestamp, bool, error) {
	start, err := t.marker.Read()
	if errors.Is(err, storage.ErrNoMarker) {
		return model.Timestamp{}, false, nil
	}
	if err != nil {
		return model.Timestamp{}, false, err
	}
	return start, true, nil
}

// Records reads the database. Each call observes the file as it is now.
func (t *FileTracker) Records() (iter.Seq[model.TimeRecord], error) {
	records, err := t.records.Load()
	if err != nil {
		return nil, err
	}
	return sequence(records), nil
}
