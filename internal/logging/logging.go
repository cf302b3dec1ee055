// Package logging builds the zerolog logger used across track.
package logging

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/Tiliavir/track/internal/config"
)

// New returns a logger writing to w at the configured level. Format "text"
// uses the human readable console writer; anything else emits JSON.
func New(cfg config.LoggingConfig, w io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if cfg.Format == "text" {
		return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
