package components

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/clickrank/internal/tui/styles"
)

// ProgressBar wraps an animated bubbles progress bar.
// Percentages are 0-100; the underlying bar works in 0-1.
type ProgressBar struct {
	bar     progress.Model
	percent float64
}

// NewProgressBar creates a progress bar of the given width
func NewProgressBar(width int) *ProgressBar {
	return &ProgressBar{
		bar: progress.New(
			progress.WithGradient(styles.ProgressFrom, styles.ProgressTo),
			progress.WithWidth(width),
		),
	}
}

// SetPercent moves the bar toward pct and returns the animation command
func (p *ProgressBar) SetPercent(pct float64) tea.Cmd {
	p.percent = pct
	return p.bar.SetPercent(pct / 100)
}

// Percent returns the target percentage
func (p *ProgressBar) Percent() float64 { return p.percent }

// Update advances the bar's spring animation
func (p *ProgressBar) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(progress.FrameMsg); !ok {
		return nil
	}
	m, cmd := p.bar.Update(msg)
	p.bar = m.(progress.Model)
	return cmd
}

// View renders the bar
func (p *ProgressBar) View() string {
	return p.bar.View()
}
