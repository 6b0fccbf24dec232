package service

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/mmcdole/clickrank/internal/domain"
)

// ClicksKey is the storage key holding the click count as base-10 text.
const ClicksKey = "clicks"

// ProgressService owns the click count and maps it onto the rank ladder.
// It is not safe for concurrent use; the TUI event loop is its only caller.
type ProgressService struct {
	kv     domain.KV
	ladder domain.Ladder
	logger *slog.Logger

	clicks int
}

// NewProgressService creates a tracker over kv and loads the stored count.
func NewProgressService(kv domain.KV, ladder domain.Ladder, logger *slog.Logger) *ProgressService {
	s := &ProgressService{
		kv:     kv,
		ladder: ladder,
		logger: logger,
	}
	s.clicks = s.Load()
	return s
}

// Load reads the persisted count. Missing or malformed values read as 0.
func (s *ProgressService) Load() int {
	raw, ok := s.kv.Get(ClicksKey)
	if !ok {
		return 0
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		s.logger.Debug("ignoring stored click count", "value", raw, "error", err)
		return 0
	}
	return n
}

// Save persists clicks, overwriting any previous value.
func (s *ProgressService) Save(clicks int) error {
	return s.kv.Set(ClicksKey, strconv.Itoa(clicks))
}

// Increment adds one click and persists it. The in-memory count advances
// even when the write fails; the error is returned alongside the snapshot.
func (s *ProgressService) Increment() (domain.Snapshot, error) {
	prev := s.Snapshot()
	s.clicks++

	err := s.Save(s.clicks)
	if err != nil {
		s.logger.Error("failed to save clicks", "clicks", s.clicks, "error", err)
	}

	snap := s.Snapshot()
	if snap.RankedUp(prev) {
		s.logger.Info("rank up", "rank", snap.Rank.Name, "clicks", snap.Clicks)
	}
	return snap, err
}

// Clicks returns the in-memory count.
func (s *ProgressService) Clicks() int { return s.clicks }

// Ladder returns the rank ladder in use.
func (s *ProgressService) Ladder() domain.Ladder { return s.ladder }

// Snapshot returns the presentation state for the current count.
func (s *ProgressService) Snapshot() domain.Snapshot {
	return s.ladder.SnapshotAt(s.clicks)
}

// Reset clears the persisted count and zeroes the in-memory one.
func (s *ProgressService) Reset() error {
	if err := s.kv.Delete(ClicksKey); err != nil {
		return err
	}
	s.clicks = 0
	s.logger.Info("progress reset")
	return nil
}
