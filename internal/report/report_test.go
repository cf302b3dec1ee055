package report_test

import (
	"errors"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/track/internal/model"
	"github.com/Tiliavir/track/internal/report"
	"github.com/Tiliavir/track/internal/storage"
	"github.com/Tiliavir/track/internal/timecalc"
	"github.com/Tiliavir/track/internal/tracker"
)

type staticSource struct {
	records []model.TimeRecord
	err     error
}

func (s staticSource) Records() (iter.Seq[model.TimeRecord], error) {
	if s.err != nil {
		return nil, s.err
	}
	return slices.Values(s.records), nil
}

func rec(startMs, endMs int64) model.TimeRecord {
	return model.TimeRecord{Start: model.FromMillis(startMs), End: model.FromMillis(endMs)}
}

func TestTotalDurationNoRecords(t *testing.T) {
	r := report.New(tracker.NewMemTracker(nil), nil)

	d, err := r.TotalDuration(report.Last(time.Second))
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestTotalDurationTwoSessions(t *testing.T) {
	tr := tracker.NewMemTracker(nil)
	for i := 0; i < 2; i++ {
		_, err := tr.Start()
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
		_, err = tr.Stop()
		require.NoError(t, err)
	}

	d, err := report.New(tr, nil).TotalDuration(report.Last(time.Second))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d, 20*time.Millisecond)
}

func TestTotalDurationInclusionByStart(t *testing.T) {
	clock := &timecalc.FixedClock{Current: model.FromMillis(100_000)}
	src := staticSource{records: []model.TimeRecord{
		rec(10_000, 20_000),  // before the window
		rec(85_000, 95_000),  // starts before cutoff, ends inside: excluded
		rec(90_000, 91_500),  // starts exactly at cutoff
		rec(95_000, 99_000),  // inside
		rec(99_000, 120_000), // inside, ends after now
	}}

	s, err := report.New(src, clock).Summarize(report.Last(10 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(90_000), s.Cutoff.Millis())
	assert.Equal(t, 3, s.Sessions)
	assert.Equal(t, 26_500*time.Millisecond, s.Total)
}

func TestTotalDurationIgnoresOpenSession(t *testing.T) {
	clock := &timecalc.FixedClock{Current: model.FromMillis(0)}
	tr := tracker.NewMemTracker(clock)
	_, err := tr.Start()
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = tr.Stop()
	require.NoError(t, err)
	_, err = tr.Start()
	require.NoError(t, err)
	clock.Advance(time.Minute)

	d, err := report.New(tr, clock).TotalDuration(report.Last(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, time.Minute, d)
	assert.True(t, tr.IsRunning())
}

func TestTotalDurationClampsNegative(t *testing.T) {
	clock := &timecalc.FixedClock{Current: model.FromMillis(10_000)}
	src := staticSource{records: []model.TimeRecord{rec(5_000, 4_000)}}

	d, err := report.New(src, clock).TotalDuration(report.Last(time.Minute))
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestTotalDurationSourceError(t *testing.T) {
	src := staticSource{err: storage.ErrCorrupt}

	_, err := report.New(src, nil).TotalDuration(report.Last(time.Minute))
	assert.ErrorIs(t, err, storage.ErrCorrupt)
}

func TestNegativeWindow(t *testing.T) {
	_, err := report.New(staticSource{}, nil).TotalDuration(report.Last(-time.Second))
	require.Error(t, err)
	assert.False(t, errors.Is(err, storage.ErrCorrupt))
}

func TestWindowString(t *testing.T) {
	assert.Equal(t, "last 1h30m0s", report.Last(90*time.Minute).String())
}

func TestTotalDurationInvalidRecordInDatabase(t *testing.T) {
	dir := t.TempDir()
	tr, err := tracker.NewFileTracker(tracker.Options{
		DBPath:       filepath.Join(dir, "db.json"),
		LockfilePath: filepath.Join(dir, "lockfile"),
	})
	require.NoError(t, err)

	start := model.Now().Add(-10 * time.Minute)
	content := `{"records":[` +
		`{"start":"` + start.String() + `","end":"` + start.Add(5*time.Minute).String() + `"},` +
		`{"start":"` + start.String() + `"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db.json"), []byte(content), 0o600))

	d, err := report.New(tr, nil).TotalDuration(report.Last(time.Hour))
	assert.ErrorIs(t, err, storage.ErrCorrupt)
	assert.Zero(t, d)
}
