package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponentAnnotatesEntries(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Format: "json", Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: "info"}) })

	l := WithComponent("loader")
	l.Error().Str("section", "hero").Msg("section load failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loader", entry["component"])
	assert.Equal(t, "hero", entry["section"])
	assert.Equal(t, "error", entry["level"])
}

func TestConfigureLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "WARN", Format: "json", Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: "info"}) })

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	l := Base()
	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len(), "info entries should be filtered at warn level")
}
