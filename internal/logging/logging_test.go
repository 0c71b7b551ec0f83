package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	t.Helper()

	level, logger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
	})
}

func TestSetup(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	require.NoError(t, setup(&buf, "warn", "json"))

	log.Info().Msg("dropped")
	log.Warn().Str("spreadsheet_id", "sheet-1").Msg("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "sheet-1", entry["spreadsheet_id"])
}

func TestSetup_EmptyLevelDefaultsToInfo(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	require.NoError(t, setup(&buf, "", ""))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetup_Invalid(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	assert.Error(t, setup(&buf, "loud", "json"))
	assert.Error(t, setup(&buf, "info", "xml"))
}
