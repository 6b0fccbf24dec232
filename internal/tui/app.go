package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/clickrank/internal/domain"
	"github.com/mmcdole/clickrank/internal/service"
	"github.com/mmcdole/clickrank/internal/tui/components"
	"github.com/mmcdole/clickrank/internal/tui/styles"
)

// Status message lifetimes
const (
	rankUpStatusDelay = 3 * time.Second
	errorStatusDelay  = 5 * time.Second
)

// Options controls which widgets are shown and how they behave
type Options struct {
	AnimationDelay time.Duration
	ShowRobot      bool
	ShowProgress   bool
	BarWidth       int
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Tracker  *service.ProgressService
	Snapshot domain.Snapshot

	// Widgets; nil when disabled
	Counter  *components.Counter
	Badge    *components.RankBadge
	Bar      *components.ProgressBar
	Robot    *components.Robot
	Help     help.Model
	targets  Targets
	animWait time.Duration

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	jumpGen     int
	statusGen   int
}

// NewModel creates a new application model around tracker
func NewModel(tracker *service.ProgressService, opts Options) Model {
	m := Model{
		Tracker:  tracker,
		Snapshot: tracker.Snapshot(),
		Counter:  components.NewCounter(),
		Badge:    components.NewRankBadge(),
		Help:     help.New(),
		animWait: opts.AnimationDelay,
	}
	if m.animWait <= 0 {
		m.animWait = 200 * time.Millisecond
	}

	m.Help.Styles.ShortKey = styles.HelpKeyStyle
	m.Help.Styles.ShortDesc = styles.HelpDescStyle
	m.Help.Styles.FullKey = styles.HelpKeyStyle
	m.Help.Styles.FullDesc = styles.HelpDescStyle

	m.targets = Targets{Counter: m.Counter, Rank: m.Badge}
	if opts.ShowProgress {
		m.Bar = components.NewProgressBar(opts.BarWidth)
		m.targets.Progress = m.Bar
	}
	if opts.ShowRobot {
		m.Robot = components.NewRobot()
		m.targets.Robot = m.Robot
	}
	return m
}

// WithTargets replaces the presentation targets
func (m Model) WithTargets(t Targets) Model {
	m.targets = t
	return m
}

// Init paints the loaded state
func (m Model) Init() tea.Cmd {
	return m.targets.Apply(m.Snapshot)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.click()
		}
		return m, nil

	case LandMsg:
		if msg.Gen == m.jumpGen {
			m.targets.Land()
		}
		return m, nil

	case ClearStatusMsg:
		if msg.Gen == m.statusGen {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	if m.Bar != nil {
		return m, m.Bar.Update(msg)
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil
	case key.Matches(msg, Keys.Click):
		return m.click()
	}
	return m, nil
}

// click runs one increment: persist, repaint, then schedule the jump reset
func (m Model) click() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	prev := m.Snapshot
	snap, err := m.Tracker.Increment()
	m.Snapshot = snap
	cmds = append(cmds, m.targets.Apply(snap))

	switch {
	case err != nil:
		cmds = append(cmds, m.setStatus(fmt.Sprintf("Progress not saved: %v", err), true, errorStatusDelay))
	case snap.RankedUp(prev):
		cmds = append(cmds, m.setStatus(fmt.Sprintf("Rank up! You are now %s", snap.Rank.Name), false, rankUpStatusDelay))
	}

	if m.targets.Jump() {
		m.jumpGen++
		cmds = append(cmds, LandCmd(m.jumpGen, m.animWait))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) setStatus(text string, isErr bool, delay time.Duration) tea.Cmd {
	m.statusGen++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusGen, delay)
}
