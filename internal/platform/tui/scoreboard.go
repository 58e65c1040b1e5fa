package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordsnake/internal/registry"
	"github.com/vovakirdan/wordsnake/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the tab sidebar
	sidebarWidth       = 22  // Width of the tab sidebar
	maxScores          = 100 // Max rows to load
)

// lessonsTabID is the scoreboard tab listing the best result per pack.
const lessonsTabID = "lessons"

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
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
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev tab"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next tab"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreTab is one page of the scoreboard: a registered game's high scores,
// or the per-pack lesson results.
type scoreTab struct {
	ID    string
	Title string
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	tabs        []scoreTab
	tabCursor   int
	store       *storage.Store
	rows        []table.Row
	stats       *storage.GameStats // nil on the lessons tab
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var tabs []scoreTab
	for _, g := range registry.List() {
		tabs = append(tabs, scoreTab{ID: g.ID, Title: g.Title})
	}
	tabs = append(tabs, scoreTab{ID: lessonsTabID, Title: "Lessons"})

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		tabs:        tabs,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load()
	return m
}

func (m ScoreboardModel) current() scoreTab {
	return m.tabs[m.tabCursor]
}

// columns returns the table layout for the current tab.
func (m ScoreboardModel) columns() []table.Column {
	avail := m.width - 8
	if m.showSidebar {
		avail -= sidebarWidth + 3
	}

	if m.current().ID == lessonsTabID {
		return []table.Column{
			{Title: "Pack", Width: max(10, min(20, avail-44))},
			{Title: "Level", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Words", Width: 8},
			{Title: "Date", Width: 14},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: max(14, min(20, avail-22))},
	}
}

// load fetches the rows of the current tab and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.rows = nil
	m.stats = nil
	if m.store != nil {
		if m.current().ID == lessonsTabID {
			m.rows = m.lessonRows()
		} else {
			m.rows = m.scoreRows(m.current().ID)
			if stats, err := m.store.GetGameStats(m.current().ID); err == nil && stats.GamesCount > 0 {
				m.stats = stats
			}
		}
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
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
	t.GotoTop()

	m.table = t
}

func (m ScoreboardModel) scoreRows(gameID string) []table.Row {
	scores, err := m.store.TopScores(gameID, maxScores)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m ScoreboardModel) lessonRows() []table.Row {
	results, err := m.store.BestPerPack()
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(results))
	for i, r := range results {
		words := fmt.Sprintf("%d/%d", r.WordsCompleted, r.TotalWords)
		if r.Finished() {
			words += " ★"
		}
		rows[i] = table.Row{
			r.PackID,
			r.Difficulty,
			fmt.Sprintf("%d", r.Score),
			words,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
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

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.Right):
			m.tabCursor = (m.tabCursor + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevGame), key.Matches(msg, m.keys.Left):
			m.tabCursor = (m.tabCursor - 1 + len(m.tabs)) % len(m.tabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("HIGH SCORES - %s", m.current().Title)
	b.WriteString(centerText(cursorStyle.Render(title), m.width))
	b.WriteString("\n")
	if m.stats != nil {
		summary := fmt.Sprintf("%d rounds  best %d  avg %.0f  last %s",
			m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LastPlayed.Format("Jan 02"))
		b.WriteString(centerText(subtleStyle.Render(summary), m.width))
	}
	b.WriteString("\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// renderWideLayout renders the tab list as a sidebar next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, t := range m.tabs {
		name := truncateText(t.Title, sidebarWidth-6)
		if i == m.tabCursor {
			sidebar.WriteString(cursorStyle.Render("> " + name))
		} else {
			sidebar.WriteString("  " + name)
		}
		sidebar.WriteString("\n")
	}

	side := panelStyle.Width(sidebarWidth).Render(sidebar.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", panelStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	activeTab := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		name := truncateText(t.Title, 12)
		if i == m.tabCursor {
			tabs[i] = activeTab.Render(name)
		} else {
			tabs[i] = subtleStyle.Render(" " + name + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", m.current().Title)
	}

	var b strings.Builder
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(panelStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.rows) == 0 {
		empty := subtleStyle.Italic(true).Padding(2, 4)
		if m.current().ID == lessonsTabID {
			return empty.Render("No lessons finished yet.\nSpell a whole pack to get on the board!")
		}
		return empty.Render("No scores recorded yet.\nPlay a round to set a high score!")
	}
	return m.table.View()
}

func truncateText(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
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
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
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
