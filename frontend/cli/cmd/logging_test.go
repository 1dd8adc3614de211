package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelFlag(t *testing.T) {
	t.Setenv("GISTPAD_LOG_LEVEL", "")

	var flag logLevelFlag
	assert.Equal(t, "", flag.String())
	assert.Equal(t, slog.LevelWarn, flag.Level())

	t.Setenv("GISTPAD_LOG_LEVEL", "DEBUG")
	assert.Equal(t, slog.LevelDebug, flag.Level())

	require.NoError(t, flag.Set("error"))
	assert.Equal(t, "error", flag.String())
	assert.Equal(t, slog.LevelError, flag.Level(), "flag wins over environment")

	assert.EqualError(t, flag.Set("verbose"), `must be one of "debug", "info", "warn", or "error"`)
}
