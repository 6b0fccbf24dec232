package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/clickrank/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	var sections []string

	sections = append(sections, styles.TitleStyle.Render("clickrank"))

	if m.Robot != nil {
		sections = append(sections, m.Robot.View())
	}
	if m.Counter != nil {
		sections = append(sections, m.Counter.View())
	}
	if m.Badge != nil {
		sections = append(sections, m.Badge.View())
	}
	if m.Bar != nil {
		sections = append(sections, m.Bar.View())
	}
	sections = append(sections, m.renderNext())

	card := styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, sections...))

	footer := []string{card, m.renderStatus(), m.Help.View(Keys)}
	body := strings.Join(footer, "\n")

	if m.Width > 0 && m.Height > 0 {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

// renderNext describes the distance to the next rank
func (m Model) renderNext() string {
	if m.Snapshot.Next == nil {
		return styles.SuccessStyle.Render("Top rank reached")
	}
	return styles.DimStyle.Render(fmt.Sprintf("%d to %s", m.Snapshot.Remaining, m.Snapshot.Next.Name))
}

func (m Model) renderStatus() string {
	if m.StatusMsg == "" {
		return " "
	}
	if m.StatusIsErr {
		return styles.ErrorStyle.Render(m.StatusMsg)
	}
	return styles.AccentStyle.Render(m.StatusMsg)
}
