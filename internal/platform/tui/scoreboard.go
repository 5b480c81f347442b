package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/stats"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 96  // Minimum width to show the stats sidebar
	sidebarWidth       = 30  // Width of the stats sidebar
	maxScores          = 100 // Max games to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Help key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit, k.Help},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	unlockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	games        []storage.GameRecord
	hub          storage.HubStats
	achievements []stats.Achievement
	loadErr      error
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	quitting     bool
	goingBack    bool
	showSidebar  bool
}

// NewScoreboardModel loads the top games and statistics from store.
func NewScoreboardModel(store Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load(store)
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *ScoreboardModel) load(store Store) {
	if store == nil {
		m.achievements = stats.Evaluate(storage.HubStats{})
		return
	}

	games, err := store.TopGames(maxScores)
	if err != nil {
		m.loadErr = err
	}
	m.games = games

	hub, err := store.Stats()
	if err != nil && m.loadErr == nil {
		m.loadErr = err
	}
	m.hub = hub
	m.achievements = stats.Evaluate(hub)
}

// createTable creates a table sized for the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Max", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Won", Width: 4},
		{Title: "Level", Width: 7},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// tableRows formats stored games as table rows.
func tableRows(games []storage.GameRecord) []table.Row {
	rows := make([]table.Row, len(games))
	for i, g := range games {
		won := ""
		if g.Won {
			won = "yes"
		}
		date := ""
		if !g.CreatedAt.IsZero() {
			date = g.CreatedAt.Local().Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(g.Score),
			strconv.Itoa(g.MaxTile),
			strconv.Itoa(g.Moves),
			won,
			g.Difficulty,
			date,
		}
	}
	return rows
}

func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(tableRows(m.games))
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES - 2048"), m.width))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(centerText(lockedStyle.Render("Could not load scores: "+m.loadErr.Error()), m.width))
		b.WriteString("\n\n")
	}

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			panelStyle.Width(sidebarWidth).Render(m.renderSidebar()),
			"  ",
			panelStyle.Render(m.renderTableContent()),
		))
	} else {
		b.WriteString(centerText(m.summaryLine(), m.width))
		b.WriteString("\n\n")
		b.WriteString(panelStyle.Render(m.renderTableContent()))
	}

	b.WriteString("\n")
	b.WriteString(lockedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) summaryLine() string {
	return fmt.Sprintf("Games: %d  Best: %d  Achievements: %d/%d",
		m.hub.GamesPlayed, m.hub.BestScore, stats.Unlocked(m.achievements), len(m.achievements))
}

// renderSidebar lists hub statistics and achievements.
func (m ScoreboardModel) renderSidebar() string {
	var b strings.Builder

	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Games played: %d\n", m.hub.GamesPlayed)
	fmt.Fprintf(&b, "Best score:   %d\n", m.hub.BestScore)
	fmt.Fprintf(&b, "Average:      %.0f\n", m.hub.AvgScore)
	fmt.Fprintf(&b, "Total score:  %d\n", m.hub.TotalScore)
	fmt.Fprintf(&b, "Best tile:    %d\n", m.hub.BestTile)
	fmt.Fprintf(&b, "Wins:         %d\n", m.hub.Wins)
	if !m.hub.LastPlayed.IsZero() {
		fmt.Fprintf(&b, "Last played:  %s\n", m.hub.LastPlayed.Local().Format("Jan 02"))
	}

	b.WriteString("\nAchievements\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")
	for _, a := range m.achievements {
		if a.Unlocked {
			b.WriteString(unlockedStyle.Render("[x] " + a.Title))
		} else {
			b.WriteString(lockedStyle.Render("[ ] " + a.Title))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.games) == 0 {
		return lockedStyle.Italic(true).Padding(2, 4).
			Render("No games recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
