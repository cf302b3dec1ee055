package tracker

import (
	"iter"
	"slices"

	"github.com/Tiliavir/track/internal/model"
	"github.com/Tiliavir/track/internal/timecalc"
)

// MemTracker keeps sessions in memory. It is meant for tests of code that
// consumes a Tracker.
type MemTracker struct {
	clock   timecalc.Clock
	start   *model.Timestamp
	records []model.TimeRecord
}

var _ Tracker = (*MemTracker)(nil)

// NewMemTracker returns an empty MemTracker. A nil clock uses the system
// time.
func NewMemTracker(clock timecalc.Clock) *MemTracker {
	if clock == nil {
		clock = timecalc.RealClock{}
	}
	return &MemTracker{clock: clock}
}

func (m *MemTracker) Start() (StartStatus, error) {
	if m.start != nil {
		return AlreadyRunning, nil
	}
	now := m.clock.Now()
	m.start = &now
	return Started, nil
}

func (m *MemTracker) Stop() (model.TimeRecord, error) {
	if m.start == nil {
		return model.TimeRecord{}, ErrNotRunning
	}
	rec := closeAt(*m.start, m.clock.Now())
	m.records = append(m.records, rec)
	m.start = nil
	return rec, nil
}

func (m *MemTracker) IsRunning() bool {
	return m.start != nil
}

func (m *MemTracker) Current() (model.Timestamp, bool, error) {
	if m.start == nil {
		return model.Timestamp{}, false, nil
	}
	return *m.start, true, nil
}

func (m *MemTracker) Records() (iter.Seq[model.TimeRecord], error) {
	return sequence(slices.Clone(m.records)), nil
}
