// Package dashboard renders a live terminal view of the tracked state.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"deskflow/internal/domain"
	"deskflow/internal/pkg/tui/theme"
	"deskflow/internal/watcher"
)

const (
	refreshEvery = time.Second
	barWidth     = 30
)

// Model is the dashboard screen. It only reads the shared state; the
// engine keeps updating it in the background.
type Model struct {
	state  *watcher.State
	styles *theme.Styles
	width  int
	height int
}

func New(state *watcher.State) Model {
	return Model{
		state:  state,
		styles: theme.Default(),
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	title := m.styles.Title.Render("Deskflow")

	sections := []string{
		title,
		m.scoreCard(),
		m.activeWindowCard(),
		m.categoryCard(),
		m.visibleWindowsCard(),
		m.styles.Help.Render("q: quit"),
	}

	return m.styles.Container.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) scoreCard() string {
	score := m.state.Score()

	color := theme.RatingColor(score.Rating)
	value := lipgloss.NewStyle().Foreground(color).Bold(true).
		Render(fmt.Sprintf("%.1f%%", score.Percent))
	rating := lipgloss.NewStyle().Foreground(color).
		Render(string(score.Rating))

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Subtitle.Render("Productivity"),
		value+"  "+rating,
	)
	return m.styles.Card.Render(body)
}

func (m Model) activeWindowCard() string {
	obs := m.state.Observation()

	line := m.styles.Muted.Render("no focused window")
	if !obs.IsZero() {
		line = m.styles.Bold.Render(obs.Title) + m.styles.Muted.Render("  ("+obs.Process+")")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Subtitle.Render("Active Window"),
		line,
	)
	return m.styles.Card.Render(body)
}

func (m Model) categoryCard() string {
	summary := m.state.Summary()
	usages := summary.Displayed()

	var lines []string
	lines = append(lines, m.styles.Subtitle.Render("Categories Today"))

	if len(usages) == 0 {
		lines = append(lines, m.styles.Muted.Render("no activity recorded yet"))
	}

	max := int64(0)
	for _, u := range usages {
		if u.Seconds > max {
			max = u.Seconds
		}
	}

	for _, u := range usages {
		lines = append(lines, m.categoryLine(u, max))
	}

	return m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) categoryLine(u domain.CategoryUsage, max int64) string {
	filled := 0
	if max > 0 {
		filled = int(u.Seconds * barWidth / max)
	}
	if filled == 0 && u.Seconds > 0 {
		filled = 1
	}

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(domain.ColorFor(u.Name)))
	bar := barStyle.Render(strings.Repeat("█", filled)) +
		m.styles.ProgressInactive.Render(strings.Repeat("░", barWidth-filled))

	label := m.styles.Body.Render(fmt.Sprintf("%-14s", u.Name))
	duration := m.styles.Muted.Render(formatSeconds(u.Seconds))

	return label + bar + " " + duration
}

func (m Model) visibleWindowsCard() string {
	snapshot := m.state.Snapshot()

	var lines []string
	lines = append(lines, m.styles.Subtitle.Render(fmt.Sprintf("Visible Windows (%d)", len(snapshot))))

	if len(snapshot) == 0 {
		lines = append(lines, m.styles.Muted.Render("none"))
	}

	for _, w := range snapshot {
		lines = append(lines, m.styles.Body.Render(truncate(w.Title, 60))+m.styles.Muted.Render("  "+w.Process))
	}

	return m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func formatSeconds(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	if d >= time.Hour {
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
	if d >= time.Minute {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", seconds)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-1] + "…"
}
