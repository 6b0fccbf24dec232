package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Amber      = lipgloss.Color("#E5A00D")
	SlateDark  = lipgloss.Color("#1F2937")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
	Cyan       = lipgloss.Color("#06B6D4")
	Yellow     = lipgloss.Color("#FACC15")
)

// TierColors colors rank badges by ladder position:
// secondary, info, warning, primary, success, danger.
var TierColors = []lipgloss.Color{LightGray, Cyan, Yellow, Blue, Green, Red}

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Amber)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Counter style
var (
	CounterStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true).
			Padding(0, 1)
)

// Panel styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber).
			Padding(1, 4)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Amber)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Badge styles
var (
	BadgeStyle = lipgloss.NewStyle().
			Foreground(SlateDark).
			Bold(true).
			Padding(0, 1)
)

// TierBadge returns the badge style for the rank at ladder position tier.
// Ladders longer than the palette wrap around.
func TierBadge(tier int) lipgloss.Style {
	if tier < 0 {
		tier = 0
	}
	return BadgeStyle.Background(TierColors[tier%len(TierColors)])
}

// Progress bar gradient endpoints
const (
	ProgressFrom = "#E5A00D"
	ProgressTo   = "#EF4444"
)
