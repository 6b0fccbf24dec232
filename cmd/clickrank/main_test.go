package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/clickrank/internal/domain"
	"github.com/mmcdole/clickrank/internal/service"
	"github.com/mmcdole/clickrank/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTracker(t *testing.T, clicks int) *service.ProgressService {
	t.Helper()
	kv, err := store.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := service.NewProgressService(kv, domain.DefaultLadder(), logger)
	require.NoError(t, tracker.Save(clicks))
	return service.NewProgressService(kv, domain.DefaultLadder(), logger)
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	printStatus(&buf, domain.DefaultLadder().SnapshotAt(500))

	out := buf.String()
	assert.Contains(t, out, "Clicks:   500")
	assert.Contains(t, out, "Rank:     Bronze beater")
	assert.Contains(t, out, "Progress: 50.0%")
	assert.Contains(t, out, "Next:     Silver stroker in 500 clicks")
}

func TestPrintStatusTopRank(t *testing.T) {
	var buf bytes.Buffer
	printStatus(&buf, domain.DefaultLadder().SnapshotAt(15000))

	assert.Contains(t, buf.String(), "Progress: 100.0%")
	assert.NotContains(t, buf.String(), "Next:")
}

func TestPrintRankDistance(t *testing.T) {
	tracker := newTracker(t, 1500)

	var buf bytes.Buffer
	require.NoError(t, printRankDistance(&buf, tracker, "golden"))
	assert.Equal(t, "Golden gooner (2000): 500 clicks to go.\n", buf.String())

	buf.Reset()
	require.NoError(t, printRankDistance(&buf, tracker, "bronze"))
	assert.Contains(t, buf.String(), "already reached")

	assert.ErrorIs(t, printRankDistance(&buf, tracker, "xyzzy"), domain.ErrRankNotFound)
}

func TestRunRejectsNegativeClicks(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	err := run(options{clicks: -3, memory: true}, &buf)
	assert.ErrorIs(t, err, errNegativeClicks)
	assert.Empty(t, buf.String())
}

func TestRunClicksHeadless(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	require.NoError(t, run(options{clicks: 2, memory: true}, &buf))
	assert.Contains(t, buf.String(), "Clicks:   2")
}

func TestInitConfigWritesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var buf bytes.Buffer
	require.NoError(t, run(options{initCfg: true}, &buf))

	path := filepath.Join(home, ".config", "clickrank", "config.yaml")
	assert.FileExists(t, path)
	assert.Contains(t, buf.String(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "animation_ms: 200")

	buf.Reset()
	require.NoError(t, run(options{initCfg: true}, &buf))
	assert.Contains(t, buf.String(), "already exists")
}
