// Package report aggregates completed tracking sessions.
package report

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/Tiliavir/track/internal/model"
	"github.com/Tiliavir/track/internal/timecalc"
)

// RecordSource provides completed sessions. tracker.Tracker satisfies it.
type RecordSource interface {
	Records() (iter.Seq[model.TimeRecord], error)
}

// Window selects which records are aggregated.
type Window struct {
	last time.Duration
}

// Last selects records that started within d before now.
func Last(d time.Duration) Window {
	return Window{last: d}
}

// Cutoff returns the earliest start time included when evaluated at now.
func (w Window) Cutoff(now model.Timestamp) model.Timestamp {
	return model.FromMillis(now.Millis() - w.last.Milliseconds())
}

func (w Window) String() string {
	return "last " + w.last.String()
}

// Summary is the result of aggregating a window.
type Summary struct {
	Window   Window
	Cutoff   model.Timestamp
	Total    time.Duration
	Sessions int
}

// Reporter computes totals over a RecordSource.
type Reporter struct {
	source RecordSource
	clock  timecalc.Clock
}

// New returns a Reporter reading from source. A nil clock uses the system
// time.
func New(source RecordSource, clock timecalc.Clock) *Reporter {
	if clock == nil {
		clock = timecalc.RealClock{}
	}
	return &Reporter{source: source, clock: clock}
}

// TotalDuration sums the elapsed time of every record that started inside
// the window. A record is included when its start is at or after the
// cutoff; records that started earlier are excluded even if they end
// inside the window. Open sessions are not counted.
func (r *Reporter) TotalDuration(w Window) (time.Duration, error) {
	s, err := r.Summarize(w)
	if err != nil {
		return 0, err
	}
	return s.Total, nil
}

// Summarize is TotalDuration plus the number of sessions counted.
func (r *Reporter) Summarize(w Window) (Summary, error) {
	if w.last < 0 {
		return Summary{}, errors.New("report window must not be negative")
	}

	cutoff := w.Cutoff(r.clock.Now())
	records, err := r.source.Records()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to query records: %w", err)
	}

	var totalMillis int64
	var sessions int
	for rec := range records {
		if rec.Start.Millis() < cutoff.Millis() {
			continue
		}
		totalMillis += rec.End.Millis() - rec.Start.Millis()
		sessions++
	}
	if totalMillis < 0 {
		totalMillis = 0
	}

	return Summary{
		Window:   w,
		Cutoff:   cutoff,
		Total:    time.Duration(totalMillis) * time.Millisecond,
		Sessions: sessions,
	}, nil
}
