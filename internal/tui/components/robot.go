package components

import (
	"strings"

	"github.com/mmcdole/clickrank/internal/tui/styles"
)

var (
	robotIdle = []string{
		"        ",
		"  [o_o] ",
		" /|___|\\",
		"  d   b ",
	}
	robotJump = []string{
		"  [^o^] ",
		" \\|___|/",
		"  d   b ",
		"        ",
	}
)

// Robot is the mascot that jumps on every click
type Robot struct {
	jumping bool
}

// NewRobot creates a robot in its idle pose
func NewRobot() *Robot {
	return &Robot{}
}

// Jump switches to the jump frame
func (r *Robot) Jump() { r.jumping = true }

// Land returns to the idle frame
func (r *Robot) Land() { r.jumping = false }

// Jumping reports whether the jump frame is showing
func (r *Robot) Jumping() bool { return r.jumping }

// View renders the current frame
func (r *Robot) View() string {
	frame := robotIdle
	if r.jumping {
		frame = robotJump
	}
	return styles.AccentStyle.Render(strings.Join(frame, "\n"))
}
