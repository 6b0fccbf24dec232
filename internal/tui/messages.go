package tui

// Message types for the TUI

// LandMsg ends the jump animation started by click number Gen.
// Messages from superseded jumps are ignored.
type LandMsg struct {
	Gen int
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct {
	Gen int
}
