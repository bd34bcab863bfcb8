package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-engine/internal/config"
)

// difficultyChoices are the presets offered, in menu order.
var difficultyChoices = []struct {
	preset config.DifficultyPreset
	label  string
}{
	{config.DifficultyEasy, "Easy"},
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyHard, "Hard"},
	{config.DifficultyFixed, "Fixed (no ramp-up)"},
}

// DifficultyModel lets users choose a difficulty preset before a game.
type DifficultyModel struct {
	title    string
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	chosen   bool
	quitting bool
	back     bool
}

// NewDifficultyModel creates a difficulty picker for the named game, with
// Normal preselected.
func NewDifficultyModel(title string, width, height int) DifficultyModel {
	return DifficultyModel{
		title:  title,
		cursor: 1,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.Action(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(difficultyChoices)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting || m.back || m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, c := range difficultyChoices {
		line := "  " + c.label
		if i == m.cursor {
			line = selectedStyle.Render("> " + c.label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// Selected returns the chosen preset and whether one was chosen.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if !m.chosen {
		return "", false
	}
	return difficultyChoices[m.cursor].preset, true
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// RunDifficulty runs the difficulty picker. ok is false when the user went
// back or quit.
func RunDifficulty(title string, width, height int) (preset config.DifficultyPreset, ok bool, err error) {
	finalModel, err := tea.NewProgram(NewDifficultyModel(title, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return "", false, err
	}
	m, isModel := finalModel.(DifficultyModel)
	if !isModel {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
