package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinledger/money/internal/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LoggingConfig{Level: "debug", Format: "json"}, &buf)

	log.Debug().Str("currency", "BTC").Msg("parsed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "BTC", entry["currency"])
	assert.Equal(t, "parsed", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LoggingConfig{Level: "info", Format: "console"}, &buf)

	log.Info().Str("currency", "USD").Msg("formatted")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "formatted")
	assert.Contains(t, out, "currency=USD")
}

func TestNewLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"WARN":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"":      zerolog.InfoLevel,
		"loud":  zerolog.InfoLevel,
	}
	for level, want := range tests {
		t.Run(level, func(t *testing.T) {
			log := New(config.LoggingConfig{Level: level}, &bytes.Buffer{})
			assert.Equal(t, want, log.GetLevel())
		})
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LoggingConfig{Level: "warn"}, &buf)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
