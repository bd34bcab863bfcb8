package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// menuEntry is one game in the picker with what the store knows about it.
type menuEntry struct {
	info  registry.GameInfo
	stats *storage.GameStats // nil when never played
}

// record is the right-hand column of an entry.
func (e menuEntry) record() string {
	if e.stats == nil || e.stats.GamesCount == 0 {
		return "new"
	}
	return fmt.Sprintf("best %d in %d runs", e.stats.HighScore, e.stats.GamesCount)
}

// MenuModel is the game picker. Up and down wrap around the list.
type MenuModel struct {
	entries []menuEntry
	cursor  int
	width   int
	height  int
	keys    MenuKeyMap
	help    help.Model

	picked     *registry.GameInfo
	scoreboard bool
	quitting   bool
}

// NewMenuModel lists every registered game. Stats come from store when it
// is not nil.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		// a broken store only costs the records column
		stats, _ = store.AllGamesStats()
	}
	games := registry.List()
	entries := make([]menuEntry, len(games))
	for i, g := range games {
		entries[i] = menuEntry{info: g, stats: stats[g.ID]}
	}
	h := help.New()
	h.Width = width
	return MenuModel{
		entries: entries,
		width:   width,
		height:  height,
		keys:    DefaultMenuKeyMap(),
		help:    h,
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
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.entries)
	switch m.keys.Action(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		if n > 0 {
			info := m.entries[m.cursor].info
			m.picked = &info
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleW, descW := 0, 0
	for _, e := range m.entries {
		titleW = max(titleW, lipgloss.Width(e.info.Title))
		descW = max(descW, lipgloss.Width(e.info.Description))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("A R C A D E"), m.width))
	b.WriteString("\n\n")
	if len(m.entries) == 0 {
		b.WriteString(centerText(dimStyle.Render("no games registered"), m.width))
		b.WriteString("\n")
	}
	for i, e := range m.entries {
		marker, title := "  ", fmt.Sprintf("%-*s", titleW, e.info.Title)
		if i == m.cursor {
			marker, title = "> ", selectedStyle.Render(title)
		}
		desc := fmt.Sprintf("%-*s", descW, e.info.Description)
		line := marker + title + "  " + dimStyle.Render(desc) + "  " + e.record()
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected game, or nil if none was selected.
func (m MenuModel) Selected() *registry.GameInfo {
	return m.picked
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (width, height int) {
	return m.width, m.height
}

// centerText centers text within the given width, measuring styled text by
// its printed cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Width, Height   int
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final model into a MenuResult.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Width: m.width, Height: m.height}
	switch {
	case m.scoreboard:
		r.WantsScoreboard = true
	case m.picked == nil:
		r.Quit = true
	default:
		r.GameID = m.picked.ID
	}
	return r
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, width, height int) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}
	return m.Result(), nil
}
