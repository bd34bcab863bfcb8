package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

// scoreboardLimit is how many runs are listed per game.
const scoreboardLimit = 50

// rows taken by everything but the table body
const scoreboardChrome = 9

var tableBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// scoreboardKeyMap switches games. Scrolling uses the table's own keys.
type scoreboardKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Back   key.Binding
	Quit   key.Binding
	scroll table.KeyMap
}

func (k scoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.scroll.LineUp, k.scroll.LineDown, k.Back, k.Quit}
}

func (k scoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.scroll.LineUp, k.scroll.LineDown, k.scroll.PageUp, k.scroll.PageDown},
		{k.Back, k.Quit},
	}
}

func defaultScoreboardKeyMap() scoreboardKeyMap {
	menu := DefaultMenuKeyMap()
	scroll := table.DefaultKeyMap()
	// b is back here
	scroll.PageUp = key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	)
	return scoreboardKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev game"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next game"),
		),
		Back:   menu.Back,
		Quit:   menu.Quit,
		scroll: scroll,
	}
}

// ScoreboardModel shows, one game at a time, the summary the store keeps
// for it and its best runs.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	cursor int

	stats *storage.GameStats
	runs  []storage.ScoreEntry
	err   error

	table  table.Model
	keys   scoreboardKeyMap
	help   help.Model
	width  int
	height int

	back     bool
	quitting bool
}

// NewScoreboardModel creates a scoreboard over every registered game. A nil
// store shows empty boards.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	keys := defaultScoreboardKeyMap()
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Ticks", Width: 8},
			{Title: "Played", Width: 16},
		}),
		table.WithFocused(true),
		table.WithKeyMap(keys.scroll),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)

	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		table:  t,
		keys:   keys,
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.resize()
	m.load()
	return m
}

func (m *ScoreboardModel) resize() {
	m.table.SetHeight(max(m.height-scoreboardChrome, 3))
	m.help.Width = m.width
}

// load reads the current game's summary and runs from the store.
func (m *ScoreboardModel) load() {
	m.stats, m.runs, m.err = nil, nil, nil
	if g, ok := m.Game(); ok && m.store != nil {
		var statsErr, runsErr error
		m.stats, statsErr = m.store.GameStats(g.ID)
		m.runs, runsErr = m.store.TopScores(g.ID, scoreboardLimit)
		m.err = errors.Join(statsErr, runsErr)
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.FormatUint(r.Ticks, 10),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// step moves to the next (+1) or previous (-1) game, wrapping around.
func (m *ScoreboardModel) step(d int) {
	if n := len(m.games); n > 0 {
		m.cursor = (m.cursor + d + n) % n
		m.load()
	}
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
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("H I G H   S C O R E S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.summary(), m.width))
	b.WriteString("\n")

	body := dimStyle.Italic(true).Render("No runs yet. Play a game to set a score!")
	if len(m.runs) > 0 {
		body = m.table.View()
	}
	b.WriteString(centerText(tableBorder.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// tabs lists the game titles with the current one highlighted.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			parts[i] = selectedStyle.Render("[" + g.Title + "]")
		} else {
			parts[i] = dimStyle.Render(" " + g.Title + " ")
		}
	}
	return strings.Join(parts, " ")
}

// summary is the one-line digest of the current game's stats.
func (m ScoreboardModel) summary() string {
	switch {
	case m.err != nil:
		return dimStyle.Render("scores unavailable: " + m.err.Error())
	case m.stats == nil || m.stats.GamesCount == 0:
		return dimStyle.Render("no runs recorded")
	}
	st := m.stats
	return fmt.Sprintf("played %d   best %d   avg %.1f   ticks %d   last %s",
		st.GamesCount, st.HighScore, st.AvgScore, st.TotalTicks, st.LastPlayed.Format("Jan 02 15:04"))
}

// Game returns the game currently shown.
func (m ScoreboardModel) Game() (registry.GameInfo, bool) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, false
	}
	return m.games[m.cursor], true
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	finalModel, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
