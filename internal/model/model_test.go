package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/track/internal/model"
)

func TestTimestampTruncatesToMillis(t *testing.T) {
	in := time.Date(2026, 10, 19, 8, 30, 0, 123456789, time.FixedZone("CEST", 2*3600))
	ts := model.FromTime(in)

	assert.Equal(t, time.UTC, ts.Time().Location())
	assert.Equal(t, 123000000, ts.Time().Nanosecond())
	assert.Equal(t, "2026-10-19T06:30:00.123Z", ts.String())
}

func TestTimestampJSON(t *testing.T) {
	ts := model.FromMillis(1_760_862_600_007)

	data, err := json.Marshal(model.MarkerFile{Start: ts})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2025-10-19T08:30:00.007Z"}`, string(data))

	var got model.MarkerFile
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, got.Start.Equal(ts))
}

func TestTimestampUnmarshalRejectsGarbage(t *testing.T) {
	var ts model.Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`12`), &ts))
}

func TestTimestampEqualIgnoresSubMillis(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := model.FromTime(base.Add(100 * time.Microsecond))
	b := model.FromTime(base.Add(900 * time.Microsecond))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Before(b))
}

func TestNewTimeRecord(t *testing.T) {
	start := model.FromMillis(1000)

	rec, err := model.NewTimeRecord(start, model.FromMillis(3500))
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, rec.Elapsed())

	rec, err = model.NewTimeRecord(start, start)
	require.NoError(t, err)
	assert.Zero(t, rec.Elapsed())

	_, err = model.NewTimeRecord(start, model.FromMillis(999))
	assert.Error(t, err)

	_, err = model.NewTimeRecord(start, model.Timestamp{})
	assert.Error(t, err)
	_, err = model.NewTimeRecord(model.Timestamp{}, start)
	assert.Error(t, err)
}
