package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

func init() {
	for _, info := range []registry.GameInfo{
		{ID: "tui-alpha", Title: "Alpha", Description: "first"},
		{ID: "tui-beta", Title: "Beta", Description: "second"},
	} {
		registry.Register(info, func(registry.Options) (registry.Game, error) {
			return &scored{}, nil
		})
	}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRuns(t *testing.T, store *storage.Store, gameID string, scores ...int) {
	t.Helper()
	for i, s := range scores {
		if _, err := store.SaveScore(gameID, s, uint64(100*(i+1))); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return runes(s)
}

func menuAfter(m MenuModel, keys ...string) MenuModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m
}

func TestMenuShowsRecords(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store, "tui-beta", 40, 90)

	view := NewMenuModel(store, 80, 24).View()
	if !strings.Contains(view, "best 90 in 2 runs") {
		t.Errorf("view should show Beta's record:\n%s", view)
	}
	if !strings.Contains(view, "new") {
		t.Errorf("view should mark Alpha as new:\n%s", view)
	}

	// without a store every game is new
	if view := NewMenuModel(nil, 80, 24).View(); strings.Contains(view, "best") {
		t.Errorf("view without a store shows a record:\n%s", view)
	}
}

func TestMenuResult(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want MenuResult
	}{
		{"select first", []string{"enter"}, MenuResult{GameID: "tui-alpha"}},
		{"down selects second", []string{"j", "enter"}, MenuResult{GameID: "tui-beta"}},
		{"up wraps to last", []string{"up", "enter"}, MenuResult{GameID: "tui-beta"}},
		{"down wraps to first", []string{"j", "j", "enter"}, MenuResult{GameID: "tui-alpha"}},
		{"scoreboard", []string{"tab"}, MenuResult{WantsScoreboard: true}},
		{"quit", []string{"q"}, MenuResult{Quit: true}},
		{"back quits", []string{"esc"}, MenuResult{Quit: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := menuAfter(NewMenuModel(nil, 80, 24), tc.keys...)
			tc.want.Width, tc.want.Height = 80, 24
			if got := m.Result(); got != tc.want {
				t.Errorf("Result() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func boardAfter(m ScoreboardModel, keys ...string) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(ScoreboardModel)
	}
	return m, cmd
}

func TestScoreboardFollowsGame(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store, "tui-alpha", 10, 30, 20)

	m := NewScoreboardModel(store, 100, 30)
	if g, _ := m.Game(); g.ID != "tui-alpha" {
		t.Fatalf("first game = %q, want tui-alpha", g.ID)
	}
	view := m.View()
	if !strings.Contains(view, "played 3   best 30   avg 20.0   ticks 600") {
		t.Errorf("summary missing from view:\n%s", view)
	}
	if rows := m.table.Rows(); len(rows) != 3 || rows[0][1] != "30" || rows[0][2] != "200" {
		t.Errorf("rows = %v, want best run first with its ticks", rows)
	}

	m, _ = boardAfter(m, "tab")
	if g, _ := m.Game(); g.ID != "tui-beta" {
		t.Errorf("after tab game = %q, want tui-beta", g.ID)
	}
	if len(m.table.Rows()) != 0 || !strings.Contains(m.View(), "no runs recorded") {
		t.Errorf("Beta should have an empty board:\n%s", m.View())
	}

	m, _ = boardAfter(m, "tab")
	if g, _ := m.Game(); g.ID != "tui-alpha" {
		t.Errorf("tab should wrap to tui-alpha, got %q", g.ID)
	}
	m, _ = boardAfter(m, "shift+tab")
	if g, _ := m.Game(); g.ID != "tui-beta" {
		t.Errorf("shift+tab should wrap to tui-beta, got %q", g.ID)
	}
}

func TestScoreboardExit(t *testing.T) {
	tests := []struct {
		key      string
		back     bool
		quitting bool
	}{
		{"esc", true, false},
		{"b", true, false},
		{"q", false, true},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			m, cmd := boardAfter(NewScoreboardModel(nil, 80, 24), tc.key)
			if m.IsGoingBack() != tc.back || m.IsQuitting() != tc.quitting {
				t.Errorf("back=%v quitting=%v, want %v %v", m.IsGoingBack(), m.IsQuitting(), tc.back, tc.quitting)
			}
			if cmd == nil {
				t.Error("leaving the scoreboard should quit the program")
			}
			if m.View() != "" {
				t.Error("view should be empty after leaving")
			}
		})
	}
}
