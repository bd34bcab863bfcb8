// Package config provides YAML-based engine and game configuration loading
// and difficulty management for the arcade engine.
package config

import (
	"errors"
	"fmt"
)

// EngineConfig contains settings shared by every game: tick rate, window
// and the presentation backend.
type EngineConfig struct {
	Framerate float64             `yaml:"framerate"`
	Window    WindowConfig        `yaml:"window"`
	Debug     bool                `yaml:"debug"`
	Backend   string              `yaml:"backend"` // "tui" or "desktop"
	Terminal  TerminalConfig      `yaml:"terminal"`
	Bindings  map[string][]string `yaml:"bindings"` // extra CONTROL: [keys]
}

// WindowConfig defines the preferred window size in pixels.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TerminalConfig defines how the terminal backend reads input.
type TerminalConfig struct {
	KeyHoldMS int  `yaml:"key_hold_ms"` // a key without repeats is released after this long
	Mouse     bool `yaml:"mouse"`
}

// Backends accepted in EngineConfig.Backend.
const (
	BackendTUI     = "tui"
	BackendDesktop = "desktop"
)

// Validate reports the first invalid engine setting.
func (c EngineConfig) Validate() error {
	if c.Framerate < 0 {
		return fmt.Errorf("framerate must not be negative, got %v", c.Framerate)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Backend {
	case BackendTUI, BackendDesktop:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Terminal.KeyHoldMS < 0 {
		return errors.New("terminal key_hold_ms must not be negative")
	}
	return nil
}

// WorldConfig defines the world rectangle and how it is fit to the window.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Zoom   string  `yaml:"zoom"` // stretch, letterbox, fill or manual
}

func (w WorldConfig) validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %vx%v", w.Width, w.Height)
	}
	return nil
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	World      WorldConfig      `yaml:"world"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Ball       PongBall         `yaml:"ball"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongPaddles defines paddle dimensions and movement.
type PongPaddles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // distance from the side edge
	Speed  float64 `yaml:"speed"`
}

// PongBall defines ball size and speed.
type PongBall struct {
	Size    float64 `yaml:"size"`
	Speed   float64 `yaml:"speed"`    // serve speed
	SpeedUp float64 `yaml:"speed_up"` // added on every paddle hit
	Spin    float64 `yaml:"spin"`     // divisor of the hit offset added to the vertical speed
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore   int `yaml:"win_score"`
	ServeDelay int `yaml:"serve_delay"` // ticks
}

// PongCPU defines the optional computer-controlled right paddle.
type PongCPU struct {
	Enabled bool    `yaml:"enabled"`
	Speed   float64 `yaml:"speed"`
}

// Validate reports the first invalid Pong setting.
func (c PongConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	if c.Paddles.Width <= 0 || c.Paddles.Height <= 0 {
		return errors.New("paddle size must be positive")
	}
	if c.Ball.Size <= 0 || c.Ball.Speed <= 0 {
		return errors.New("ball size and speed must be positive")
	}
	if c.Ball.Spin == 0 {
		return errors.New("ball spin must not be zero")
	}
	if c.Gameplay.WinScore <= 0 {
		return errors.New("win score must be positive")
	}
	return nil
}

// AsteroidsConfig contains all configuration for Asteroids.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ship       AsteroidsShip    `yaml:"ship"`
	Bullets    AsteroidsBullets `yaml:"bullets"`
	Rocks      AsteroidsRocks   `yaml:"rocks"`
	Gameplay   AsteroidsPlay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// AsteroidsShip defines ship handling.
type AsteroidsShip struct {
	Thrust   float64 `yaml:"thrust"`
	Drag     float64 `yaml:"drag"`      // velocity multiplier per tick
	TurnRate float64 `yaml:"turn_rate"` // degrees per tick
	Bounce   float64 `yaml:"bounce"`    // velocity multiplier when hitting an edge
}

// AsteroidsBullets defines bullets.
type AsteroidsBullets struct {
	Speed    float64 `yaml:"speed"`
	Lifespan int     `yaml:"lifespan"` // ticks
	Size     float64 `yaml:"size"`
}

// AsteroidsRocks defines rock fields.
type AsteroidsRocks struct {
	Count   int     `yaml:"count"`    // rocks per wave
	Size    float64 `yaml:"size"`     // radius of a large rock
	MinSize float64 `yaml:"min_size"` // rocks smaller than this do not split
	Speed   float64 `yaml:"speed"`
	Points  int     `yaml:"points"`
}

// AsteroidsPlay defines lives and respawn.
type AsteroidsPlay struct {
	Lives        int `yaml:"lives"`
	RespawnDelay int `yaml:"respawn_delay"` // ticks
}

// Validate reports the first invalid Asteroids setting.
func (c AsteroidsConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	if c.Ship.Drag <= 0 || c.Ship.Drag > 1 {
		return fmt.Errorf("ship drag must be in (0, 1], got %v", c.Ship.Drag)
	}
	if c.Bullets.Lifespan <= 0 {
		return errors.New("bullet lifespan must be positive")
	}
	if c.Rocks.Count <= 0 || c.Rocks.Size <= 0 {
		return errors.New("rock count and size must be positive")
	}
	if c.Rocks.MinSize <= 0 || c.Rocks.MinSize > c.Rocks.Size {
		return fmt.Errorf("rock min_size must be in (0, %v]", c.Rocks.Size)
	}
	if c.Gameplay.Lives <= 0 {
		return errors.New("lives must be positive")
	}
	return nil
}

// NumbersConfig contains all configuration for 2048.
type NumbersConfig struct {
	Grid       NumbersGrid `yaml:"grid"`
	Tile       NumbersTile `yaml:"tile"`
	TargetRank int         `yaml:"target_rank"` // 11 is the 2048 tile
	FourChance float64     `yaml:"four_chance"` // chance a spawned tile is rank 2
}

// NumbersGrid defines the board.
type NumbersGrid struct {
	Size int `yaml:"size"`
}

// NumbersTile defines tile layout and animation.
type NumbersTile struct {
	Size  float64 `yaml:"size"`
	Gap   float64 `yaml:"gap"`
	Speed float64 `yaml:"speed"` // glide speed in world units per tick
}

// Validate reports the first invalid 2048 setting.
func (c NumbersConfig) Validate() error {
	if c.Grid.Size < 2 {
		return fmt.Errorf("grid size must be at least 2, got %d", c.Grid.Size)
	}
	if c.Tile.Size <= 0 {
		return errors.New("tile size must be positive")
	}
	if c.TargetRank < 2 {
		return errors.New("target rank must be at least 2")
	}
	if c.FourChance < 0 || c.FourChance > 1 {
		return fmt.Errorf("four_chance must be in [0, 1], got %v", c.FourChance)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name from the command line.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Apply modifies the difficulty settings for a preset.
func (d *DifficultyConfig) Apply(preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
