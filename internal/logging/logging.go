// Package logging builds the zerolog logger used by walletmoney.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/coinledger/money/internal/config"
)

// New returns a logger writing to w at the configured level.
// The "console" format writes human-readable lines, anything else writes JSON.
// An unknown level falls back to info.
func New(cfg config.LoggingConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if strings.EqualFold(cfg.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}
