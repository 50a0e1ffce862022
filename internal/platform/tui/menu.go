package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

type menuKind int

const (
	menuPlay menuKind = iota
	menuResume
	menuLevels
)

// MenuItem represents a selectable entry in the main menu.
type MenuItem struct {
	Label  string
	GameID string
	kind   menuKind
}

// MenuSelection is what the player picked.
type MenuSelection struct {
	GameID     string
	StartLevel int  // 1-based campaign level, 0 = start from the beginning
	Resume     bool // continue the saved game for GameID
}

// MenuModel lets users choose a mode, a starting level, or a saved game.
type MenuModel struct {
	items          []MenuItem
	levels         []t2048.Level
	cursor         int
	levelCursor    int
	inLevelSelect  bool
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	help           help.Model
	quitting       bool
	selected       *MenuSelection // Set when user selects a game
	openScoreboard bool           // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. resumable lists the game IDs that
// have a saved game.
func NewMenuModel(cfg core.RuntimeConfig, levels []t2048.Level, resumable []string) MenuModel {
	var items []MenuItem
	for _, id := range resumable {
		items = append(items, MenuItem{Label: "Resume " + modeName(id), GameID: id, kind: menuResume})
	}
	items = append(items,
		MenuItem{Label: fmt.Sprintf("Campaign (%d levels)", len(levels)), GameID: t2048.IDCampaign, kind: menuPlay},
		MenuItem{Label: "Endless Mode", GameID: t2048.IDEndless, kind: menuPlay},
	)
	if len(levels) > 0 {
		items = append(items, MenuItem{Label: "Select Level...", GameID: t2048.IDCampaign, kind: menuLevels})
	}

	return MenuModel{
		items:     items,
		levels:    levels,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

func modeName(gameID string) string {
	if gameID == t2048.IDEndless {
		return "Endless"
	}
	return "Campaign"
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleMain(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleMain(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		switch item.kind {
		case menuLevels:
			m.inLevelSelect = true
			m.levelCursor = 0
			return m, nil
		case menuResume:
			m.selected = &MenuSelection{GameID: item.GameID, Resume: true}
		default:
			m.selected = &MenuSelection{GameID: item.GameID}
		}
		return m, tea.Quit // Exit menu to start game

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selected = &MenuSelection{
			GameID:     t2048.IDCampaign,
			StartLevel: m.levelCursor + 1,
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCursor     = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "2 0 4 8", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Label
		if i == m.cursor {
			b.WriteString(centerStyled(menuCursor, "> "+item.Label, m.width))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(menuHintStyle, "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("In game: "+m.help.View(m.keyMapper.Keys()), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		line := fmt.Sprintf("%2d. %s (Target: %d)", lvl.ID, lvl.Name, lvl.Target)
		if i == m.levelCursor {
			b.WriteString(centerStyled(menuCursor, "> "+line, m.width))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(menuHintStyle, "Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled renders text with a style, then centers it.
func centerStyled(style lipgloss.Style, text string, width int) string {
	return centerText(style.Render(text), width)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *MenuSelection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, levels []t2048.Level, resumable []string) (MenuResult, error) {
	model := NewMenuModel(cfg, levels, resumable)

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
