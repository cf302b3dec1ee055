package timecalc

import (
	"fmt"
	"time"

	"github.com/Tiliavir/track/internal/model"
)

// Clock provides the current instant. Tests substitute a FixedClock.
type Clock interface {
	Now() model.Timestamp
}

// RealClock reads the system wall clock.
type RealClock struct{}

// Now returns the current system time at millisecond precision.
func (RealClock) Now() model.Timestamp {
	return model.Now()
}

// FixedClock returns a settable instant.
type FixedClock struct {
	Current model.Timestamp
}

// Now returns the configured instant.
func (c *FixedClock) Now() model.Timestamp {
	return c.Current
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}

// FormatDuration formats d as a human-readable string like "1h 40m" or "45m" or "30s".
func FormatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// FormatElapsed formats d with second detail, e.g. "1h 1m 1s".
func FormatElapsed(d time.Duration) string {
	seconds := int64(d / time.Second)
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// FormatDurationHHMMSS formats d as HH:MM:SS. Hours are not wrapped at 24.
func FormatDurationHHMMSS(d time.Duration) string {
	seconds := int64(d / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
