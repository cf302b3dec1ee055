package model

import (
	"fmt"
	"time"
)

// timestampLayout is RFC 3339 with exactly three fractional digits.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a UTC instant with millisecond resolution.
type Timestamp struct {
	t time.Time
}

// Now returns the current instant truncated to milliseconds.
func Now() Timestamp {
	return FromTime(time.Now())
}

// FromTime converts t to UTC and truncates it to milliseconds.
func FromTime(t time.Time) Timestamp {
	return Timestamp{t: t.UTC().Truncate(time.Millisecond)}
}

// FromMillis builds a Timestamp from milliseconds since the Unix epoch.
func FromMillis(ms int64) Timestamp {
	return Timestamp{t: time.UnixMilli(ms).UTC()}
}

// Time returns the underlying time value.
func (ts Timestamp) Time() time.Time { return ts.t }

// Millis returns milliseconds since the Unix epoch.
func (ts Timestamp) Millis() int64 { return ts.t.UnixMilli() }

// IsZero reports whether ts holds no instant.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Equal reports whether both timestamps have the same millisecond value.
func (ts Timestamp) Equal(o Timestamp) bool { return ts.Millis() == o.Millis() }

// Before reports whether ts is strictly earlier than o.
func (ts Timestamp) Before(o Timestamp) bool { return ts.Millis() < o.Millis() }

// Sub returns ts-o at millisecond precision.
func (ts Timestamp) Sub(o Timestamp) time.Duration {
	return time.Duration(ts.Millis()-o.Millis()) * time.Millisecond
}

// Add returns ts shifted by d, truncated to milliseconds.
func (ts Timestamp) Add(d time.Duration) Timestamp {
	return FromTime(ts.t.Add(d))
}

func (ts Timestamp) String() string {
	return ts.t.Format(timestampLayout)
}

// MarshalText implements encoding.TextMarshaler, used by both the JSON and
// YAML encoders.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.t.Format(timestampLayout)), nil
}

// UnmarshalText accepts any RFC 3339 value and normalises it to UTC millis.
func (ts *Timestamp) UnmarshalText(data []byte) error {
	t, err := time.Parse(time.RFC3339Nano, string(data))
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", data, err)
	}
	*ts = FromTime(t)
	return nil
}
