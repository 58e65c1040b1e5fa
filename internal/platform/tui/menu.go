package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordsnake/internal/clues"
	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/storage"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	subtleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type menuStage int

const (
	stagePack menuStage = iota
	stageDifficulty
)

// Selection is what the player picked in the menu.
type Selection struct {
	Pack       clues.Pack
	Difficulty config.DifficultyPreset
}

// MenuModel lets the player pick a clue pack and then a difficulty.
type MenuModel struct {
	packs      []clues.Pack
	best       map[string]int // "pack/difficulty" -> best lesson score
	stage      menuStage
	packCursor int
	diffCursor int
	width      int
	height     int
	config     core.RuntimeConfig
	keys       MenuKeyMap
	help       help.Model

	quitting       bool
	selected       *Selection
	openScoreboard bool
}

// NewMenuModel creates a menu over the given packs. The store is optional
// and only used to show best results.
func NewMenuModel(packs []clues.Pack, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	best := make(map[string]int)
	if store != nil {
		if results, err := store.BestPerPack(); err == nil {
			for _, r := range results {
				best[r.PackID+"/"+r.Difficulty] = r.Score
			}
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		packs:  packs,
		best:   best,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keys.Action(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes menu navigation.
func (m MenuModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	if m.stage == stageDifficulty {
		return m.handleDifficultyKey(action)
	}
	return m.handlePackKey(action)
}

func (m MenuModel) handlePackKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.packCursor > 0 {
			m.packCursor--
		}
	case MenuActionDown:
		if m.packCursor < len(m.packs)-1 {
			m.packCursor++
		}
	case MenuActionSelect:
		if len(m.packs) > 0 {
			m.stage = stageDifficulty
			m.diffCursor = 0
		}
	case MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	presets := config.Presets()

	switch action {
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(presets)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		m.selected = &Selection{
			Pack:       m.packs[m.packCursor],
			Difficulty: presets[m.diffCursor],
		}
		return m, tea.Quit // Exit menu to start the game
	case MenuActionBack:
		m.stage = stagePack
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("W O R D   S N A K E"), m.width))
	b.WriteString("\n\n")

	if m.stage == stageDifficulty {
		m.viewDifficulties(&b)
	} else {
		m.viewPacks(&b)
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) viewPacks(b *strings.Builder) {
	if len(m.packs) == 0 {
		b.WriteString(centerText(errorTextStyle.Render("No clue packs found."), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(subtleStyle.Render("Add YAML packs to "+clues.UserDir()), m.width))
		b.WriteString("\n")
		return
	}

	b.WriteString(centerText("Choose a clue pack", m.width))
	b.WriteString("\n\n")

	for i, p := range m.packs {
		line := fmt.Sprintf("  %s (%d words)", p.Name, len(p.Clues))
		if i == m.packCursor {
			line = cursorStyle.Render(fmt.Sprintf("> %s (%d words)", p.Name, len(p.Clues)))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if desc := m.packs[m.packCursor].Description; desc != "" {
		b.WriteString("\n")
		b.WriteString(centerText(subtleStyle.Render(desc), m.width))
		b.WriteString("\n")
	}
}

func (m MenuModel) viewDifficulties(b *strings.Builder) {
	pack := m.packs[m.packCursor]
	b.WriteString(centerText(fmt.Sprintf("%s: choose a difficulty", pack.Name), m.width))
	b.WriteString("\n\n")

	for i, p := range config.Presets() {
		label := strings.ToUpper(string(p[:1])) + string(p[1:])
		if score, ok := m.best[pack.ID+"/"+string(p)]; ok {
			label = fmt.Sprintf("%s (best %d)", label, score)
		}
		line := "  " + label
		if i == m.diffCursor {
			line = cursorStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(config.Presets()[m.diffCursor].Description()), m.width))
	b.WriteString("\n")
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width. ANSI styling is not
// counted.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(packs []clues.Pack, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(packs, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Selection = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
