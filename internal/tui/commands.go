package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LandCmd returns a one-shot command that ends jump gen after delay.
// Issuing a newer jump cancels it: the model drops LandMsgs whose Gen is stale.
func LandCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return LandMsg{Gen: gen}
	})
}

// ClearStatusCmd returns a command that clears status gen after a delay
func ClearStatusCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{Gen: gen}
	})
}
