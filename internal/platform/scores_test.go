package platform

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

type run struct {
	score int
	over  bool
}

func (r *run) Setup(*engine.Game)  {}
func (r *run) Update(*engine.Game) {}
func (r *run) ID() string          { return "run" }
func (r *run) Title() string       { return "Run" }
func (r *run) Score() int          { return r.score }
func (r *run) Over() bool          { return r.over }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func count(t *testing.T, store *storage.Store) int {
	t.Helper()
	scores, err := store.AllScores("run")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	return len(scores)
}

func TestScoreKeeper(t *testing.T) {
	tests := []struct {
		name  string
		steps func(k *ScoreKeeper, r *run)
		want  int
	}{
		{"running run is not saved", func(k *ScoreKeeper, r *run) {
			r.score = 10
			k.Observe(1)
			k.Observe(2)
		}, 0},
		{"finished run saved once", func(k *ScoreKeeper, r *run) {
			r.score, r.over = 10, true
			k.Observe(1)
			k.Observe(2)
			k.Finish(3)
		}, 1},
		{"each run saved", func(k *ScoreKeeper, r *run) {
			r.score, r.over = 10, true
			k.Observe(1)
			r.score, r.over = 0, false
			k.Observe(2)
			r.score, r.over = 5, true
			k.Observe(3)
		}, 2},
		{"quit with a score", func(k *ScoreKeeper, r *run) {
			r.score = 7
			k.Finish(9)
		}, 1},
		{"quit with nothing", func(k *ScoreKeeper, r *run) {
			k.Finish(9)
		}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openStore(t)
			r := &run{}
			k := NewScoreKeeper(store, r, log.New(io.Discard))
			tc.steps(k, r)
			if got := count(t, store); got != tc.want {
				t.Errorf("saved %d scores, want %d", got, tc.want)
			}
		})
	}
}

func TestScoreKeeperWithoutStore(t *testing.T) {
	r := &run{score: 3, over: true}
	k := NewScoreKeeper(nil, r, log.New(io.Discard))
	k.Observe(1)
	k.Finish(2)
	if k.Saved() {
		t.Error("nothing can be saved without a store")
	}
}
