package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	minWidthForStats = 80 // below this the stats panel collapses to one line
	statsPanelWidth  = 24
	maxScores        = 100
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Size     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextMode, k.Size, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.Size},
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
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Size: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "board size"),
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

// ScoreboardModel shows the best games of each mode, optionally narrowed
// to one board size.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int
	store     *storage.Store
	scores    []storage.ScoreEntry // everything loaded for the mode
	sizes     []int                // board sizes present in scores, ascending
	sizeIdx   int                  // 0 = all sizes, i = sizes[i-1]
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model. A nil store shows empty
// tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.loadMode()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Tile", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Board", Width: 5},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // title, tabs, filter, help
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

// modeID returns the selected mode, or "" when nothing is registered.
func (m ScoreboardModel) modeID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// loadMode reads scores and stats for the selected mode and resets the size filter.
func (m *ScoreboardModel) loadMode() {
	m.scores, m.stats, m.sizes, m.sizeIdx = nil, nil, nil, 0

	if id := m.modeID(); m.store != nil && id != "" {
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	for _, s := range m.scores {
		if !slices.Contains(m.sizes, s.BoardSize) {
			m.sizes = append(m.sizes, s.BoardSize)
		}
	}
	slices.Sort(m.sizes)

	m.refreshRows()
}

// visible returns the scores that pass the size filter, best first.
func (m ScoreboardModel) visible() []storage.ScoreEntry {
	if m.sizeIdx == 0 {
		return m.scores
	}
	size := m.sizes[m.sizeIdx-1]
	var out []storage.ScoreEntry
	for _, s := range m.scores {
		if s.BoardSize == size {
			out = append(out, s)
		}
	}
	return out
}

func (m *ScoreboardModel) refreshRows() {
	scores := m.visible()
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprint(s.Score),
			fmt.Sprint(s.MaxTile),
			fmt.Sprint(s.Moves),
			fmt.Sprintf("%dx%d", s.BoardSize, s.BoardSize),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.loadMode()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil

		case key.Matches(msg, m.keys.Size):
			m.sizeIdx = (m.sizeIdx + 1) % (len(m.sizes) + 1)
			m.refreshRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.refreshRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(boardTitleStyle, "HIGH SCORES", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabsLine(), m.width))
	b.WriteString("\n")
	b.WriteString(centerStyled(boardDimStyle, m.filterLine(), m.width))
	b.WriteString("\n\n")

	body := boardPanelStyle.Render(m.tableContent())
	if m.width >= minWidthForStats {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.statsPanel())
	} else if line := m.statsLine(); line != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, boardDimStyle.Render(line))
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) tabsLine() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = boardTabStyle.Render(g.Title)
		} else {
			tabs[i] = boardDimStyle.Render(" " + g.Title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) filterLine() string {
	parts := []string{"all"}
	for _, s := range m.sizes {
		parts = append(parts, fmt.Sprintf("%dx%d", s, s))
	}
	parts[m.sizeIdx] = "[" + parts[m.sizeIdx] + "]"
	return "Board: " + strings.Join(parts, "  ")
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d  Best tile: %d  Avg: %.0f",
		m.stats.GamesCount, m.stats.BestTile, m.stats.AvgScore)
}

func (m ScoreboardModel) statsPanel() string {
	var b strings.Builder
	b.WriteString(boardTitleStyle.Render("Totals"))
	b.WriteString("\n")

	if m.stats == nil || m.stats.GamesCount == 0 {
		b.WriteString(boardDimStyle.Render("no games yet"))
	} else {
		st := m.stats
		fmt.Fprintf(&b, "Games      %d\n", st.GamesCount)
		fmt.Fprintf(&b, "Best       %d\n", st.HighScore)
		fmt.Fprintf(&b, "Best tile  %d\n", st.BestTile)
		fmt.Fprintf(&b, "Average    %.0f\n", st.AvgScore)
		fmt.Fprintf(&b, "Moves      %d\n", st.TotalMoves)
		fmt.Fprintf(&b, "Last       %s", st.LastPlayed.Format("Jan 02"))
	}
	return boardPanelStyle.Width(statsPanelWidth).Render(b.String())
}

func (m ScoreboardModel) tableContent() string {
	if len(m.visible()) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No scores recorded yet.\nFinish a game to set a high score!")
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

// RunScoreboard runs the scoreboard screen and reports whether the user
// went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

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
