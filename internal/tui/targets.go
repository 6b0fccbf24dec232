package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/clickrank/internal/domain"
)

// CounterTarget shows the click count.
type CounterTarget interface {
	SetCount(n int)
}

// RankTarget shows the current rank and its ladder position.
type RankTarget interface {
	SetRank(r domain.Rank, tier int)
}

// ProgressTarget shows progress toward the next rank (0-100).
type ProgressTarget interface {
	SetPercent(pct float64) tea.Cmd
}

// AnimationTarget plays the per-click jump.
type AnimationTarget interface {
	Jump()
	Land()
}

// Targets holds the optional presentation targets. A nil target is
// skipped; the tracker keeps working without any of them.
type Targets struct {
	Counter  CounterTarget
	Rank     RankTarget
	Progress ProgressTarget
	Robot    AnimationTarget
}

// Apply pushes a snapshot to every present target.
func (t Targets) Apply(s domain.Snapshot) tea.Cmd {
	if t.Counter != nil {
		t.Counter.SetCount(s.Clicks)
	}
	if t.Rank != nil {
		t.Rank.SetRank(s.Rank, s.RankIndex)
	}
	if t.Progress != nil {
		return t.Progress.SetPercent(s.Progress)
	}
	return nil
}

// Jump starts the animation if a robot is present.
func (t Targets) Jump() bool {
	if t.Robot == nil {
		return false
	}
	t.Robot.Jump()
	return true
}

// Land ends the animation if a robot is present.
func (t Targets) Land() {
	if t.Robot != nil {
		t.Robot.Land()
	}
}
