package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/clickrank/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" Warning "))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestSetupLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "clickrank.log")
	logger, closer, err := SetupLogger(&config.LoggingConfig{File: path, Level: "INFO"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("rank up", "rank", "Silver stroker")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"rank up"`)
	assert.Contains(t, string(data), `"rank":"Silver stroker"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestSetupLoggerExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	logger, closer, err := SetupLogger(&config.LoggingConfig{File: "~/logs/clickrank.log"})
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, closer.Close())

	assert.FileExists(t, filepath.Join(home, "logs", "clickrank.log"))
}
