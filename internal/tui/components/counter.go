package components

import (
	"strconv"

	"github.com/mmcdole/clickrank/internal/tui/styles"
)

// Counter displays the click count
type Counter struct {
	count int
}

// NewCounter creates a counter display
func NewCounter() *Counter {
	return &Counter{}
}

// SetCount updates the displayed count
func (c *Counter) SetCount(n int) { c.count = n }

// Count returns the displayed count
func (c *Counter) Count() int { return c.count }

// View renders the counter
func (c *Counter) View() string {
	return styles.CounterStyle.Render(strconv.Itoa(c.count))
}
