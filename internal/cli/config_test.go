package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.Format)
}

func TestLoadConfigMissingFileErrors(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/smilesctl.yaml")
	require.Error(t, err)
}

func TestNewLoggerRejectsInvalidLevel(t *testing.T) {
	_, err := NewLogger("not-a-level")
	require.Error(t, err)
}

func TestNewLoggerAcceptsKnownLevel(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	require.NotNil(t, logger)
}
