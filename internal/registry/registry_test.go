package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

type stubGame struct {
	id   string
	opts Options
}

func (g *stubGame) Setup(*engine.Game)  {}
func (g *stubGame) Update(*engine.Game) {}
func (g *stubGame) ID() string          { return g.id }
func (g *stubGame) Title() string       { return "Stub " + g.id }

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "zz-stub", Title: "Stub"}, func(o Options) (Game, error) {
		return &stubGame{id: "zz-stub", opts: o}, nil
	})

	if !Exists("zz-stub") {
		t.Fatal("registered game not found")
	}
	info, ok := Info("zz-stub")
	if !ok || info.Title != "Stub" {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	g, err := Create("zz-stub", Options{Seed: 42})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	stub := g.(*stubGame)
	if stub.opts.Seed != 42 {
		t.Errorf("seed not passed through: %+v", stub.opts)
	}
	if stub.opts.Logger == nil || stub.opts.Difficulty != config.DifficultyNormal {
		t.Errorf("defaults not filled in: %+v", stub.opts)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game", Options{})
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, want ErrUnknownGame", err)
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register(GameInfo{ID: "zz-broken"}, func(Options) (Game, error) { return nil, boom })

	if _, err := Create("zz-broken", Options{}); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, want wrapped boom", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(Options) (Game, error) { return &stubGame{}, nil }
	Register(GameInfo{ID: "zz-dup"}, f)
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register(GameInfo{ID: "zz-dup"}, f)
}

func TestListSorted(t *testing.T) {
	f := func(Options) (Game, error) { return &stubGame{}, nil }
	Register(GameInfo{ID: "zz-b"}, f)
	Register(GameInfo{ID: "zz-a"}, f)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}
