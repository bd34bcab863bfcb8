package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/input"
	"github.com/vovakirdan/arcade-engine/internal/platform"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

// DefaultKeyHold is how long a key stays down after its last key event.
const DefaultKeyHold = 150 * time.Millisecond

var hudStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

// Options configure the terminal runner.
type Options struct {
	Store   *storage.Store // nil disables score saving
	Logger  *log.Logger
	KeyHold time.Duration // 0 means DefaultKeyHold
	Mouse   bool
}

// Model is the Bubble Tea model for running one game.
//
// Terminals report key presses and auto-repeats but no releases. A key is
// pressed on its first event and released once no event arrived for the
// hold time.
type Model struct {
	game    *engine.Game
	client  registry.Game
	scores  *platform.ScoreKeeper
	logger  *log.Logger
	keyHold time.Duration
	now     func() time.Time

	held     map[input.Key]time.Time // last event per key that is down
	quitting bool
}

// NewModel creates a Bubble Tea model that ticks g. client must be the
// client g was created for.
func NewModel(g *engine.Game, client registry.Game, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.KeyHold <= 0 {
		opts.KeyHold = DefaultKeyHold
	}
	logger := opts.Logger.WithPrefix("tui")
	return Model{
		game:    g,
		client:  client,
		scores:  platform.NewScoreKeeper(opts.Store, client, logger),
		logger:  logger,
		keyHold: opts.KeyHold,
		now:     time.Now,
		held:    make(map[input.Key]time.Time),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Start()
	return m.nextTick()
}

func (m Model) nextTick() tea.Cmd {
	if !m.game.Enabled() {
		return nil
	}
	return tickCmd(m.game.Delay())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		w, h := CanvasSize(msg.Width, msg.Height)
		m.game.Resize(w, h)
		m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height, "canvas", [2]int{w, h})
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		m.scores.Finish(m.game.Ticks())
		return m, tea.Quit
	}

	k, ok := KeyFromMsg(msg)
	if !ok {
		return m, nil
	}
	if _, down := m.held[k]; !down {
		m.game.Controller().PressKey(k)
	}
	m.held[k] = m.now()
	return m, nil
}

// handleMouse maps a cell to the upper pixel of its half-block pair. Some
// terminals do not say which button was released, so a release without a
// button releases them all.
func (m Model) handleMouse(msg tea.MouseMsg) {
	ctrl := m.game.Controller()
	ctrl.MoveMouse(float64(msg.X), float64(msg.Y*2))

	b, ok := ButtonFromMsg(msg.Button)
	switch {
	case msg.Action == tea.MouseActionPress && ok:
		ctrl.PressButton(b)
	case msg.Action == tea.MouseActionRelease && ok:
		ctrl.ReleaseButton(b)
	case msg.Action == tea.MouseActionRelease:
		for _, b := range []input.Button{input.ButtonLeft, input.ButtonMiddle, input.ButtonRight} {
			ctrl.ReleaseButton(b)
		}
	}
}

// releaseStale releases keys whose hold time ran out.
func (m Model) releaseStale() {
	now := m.now()
	for k, last := range m.held {
		if now.Sub(last) >= m.keyHold {
			m.game.Controller().ReleaseKey(k)
			delete(m.held, k)
		}
	}
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.releaseStale()
	m.game.Tick()

	m.scores.Observe(m.game.Ticks())
	return m, m.nextTick()
}

// Held returns the keys the model currently treats as down.
func (m Model) Held() []input.Key {
	keys := make([]input.Key, 0, len(m.held))
	for k := range m.held {
		keys = append(keys, k)
	}
	return keys
}

// View renders the canvas and the HUD line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	out := RenderCanvas(m.game.Canvas().Image())
	if h, ok := m.client.(registry.HUDer); ok {
		out += "\n" + hudStyle.Render(h.HUD())
	}
	return out
}

// Run plays client in the terminal until the user quits.
func Run(g *engine.Game, client registry.Game, opts Options) error {
	popts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		popts = append(popts, tea.WithMouseAllMotion())
	}
	_, err := tea.NewProgram(NewModel(g, client, opts), popts...).Run()
	return err
}
