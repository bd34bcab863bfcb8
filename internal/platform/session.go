package platform

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/input"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

// SessionOptions describe how to start a game.
type SessionOptions struct {
	Engine     config.EngineConfig
	GameConfig string // explicit game config file
	Seed       int64
	Difficulty config.DifficultyPreset
	Store      *storage.Store // source of stored binding overrides, may be nil
	Logger     *log.Logger
}

// NewSession creates the game id and an engine running it. The client is
// set up before returning so that binding overrides from the engine config
// and the store apply on top of the game's own bindings.
func NewSession(id string, opts SessionOptions) (*engine.Game, registry.Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	client, err := registry.Create(id, registry.Options{
		ConfigPath: opts.GameConfig,
		Seed:       opts.Seed,
		Difficulty: opts.Difficulty,
		Logger:     logger,
	})
	if err != nil {
		return nil, nil, err
	}

	g := engine.New(client,
		engine.WithLogger(logger),
		engine.WithFramerate(opts.Engine.Framerate),
		engine.WithDebug(opts.Engine.Debug),
		engine.WithWindowSize(opts.Engine.Window.Width, opts.Engine.Window.Height),
	)
	g.Start()

	var stored []storage.KeyBinding
	if opts.Store != nil {
		stored, err = opts.Store.Bindings(id)
		if err != nil {
			logger.Warn("ignoring stored bindings", "game", id, "error", err)
		}
	}
	ApplyBindings(g.Controller(), opts.Engine.Bindings, stored)
	return g, client, nil
}

// ApplyBindings adds configured and stored bindings to ctrl. They extend
// the existing bindings rather than replace them.
func ApplyBindings(ctrl *input.Controller, configured map[string][]string, stored []storage.KeyBinding) {
	for control, keys := range configured {
		for _, k := range keys {
			ctrl.Bind(input.ParseKey(k), control)
		}
	}
	for _, b := range stored {
		ctrl.Bind(input.ParseKey(b.Key), b.Control)
	}
}

// ParseBinding parses "CONTROL=key1,key2" into stored bindings.
func ParseBinding(s string) ([]storage.KeyBinding, error) {
	control, keys, ok := strings.Cut(s, "=")
	control = strings.ToUpper(strings.TrimSpace(control))
	if !ok || control == "" {
		return nil, fmt.Errorf("binding %q: want CONTROL=key[,key...]", s)
	}
	var out []storage.KeyBinding
	for _, k := range strings.Split(keys, ",") {
		if k = strings.TrimSpace(k); k == "" {
			continue
		}
		out = append(out, storage.KeyBinding{Key: string(input.ParseKey(k)), Control: control})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("binding %q: no keys", s)
	}
	return out, nil
}
