package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

//go:embed defaults/numbers.yaml
var defaultNumbersYAML []byte

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Framerate: 50,
		Window:    WindowConfig{Width: 640, Height: 480},
		Backend:   BackendTUI,
		Terminal: TerminalConfig{
			KeyHoldMS: 150,
			Mouse:     true,
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		World: WorldConfig{Width: 640, Height: 480, Zoom: "letterbox"},
		Paddles: PongPaddles{
			Width:  10,
			Height: 100,
			Offset: 20,
			Speed:  5,
		},
		Ball: PongBall{
			Size:    10,
			Speed:   5,
			SpeedUp: 1,
			Spin:    10,
		},
		Gameplay: PongGameplay{
			WinScore:   10,
			ServeDelay: 100,
		},
		CPU: PongCPU{Speed: 4},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 30000, // 10 minutes at 50fps
			},
			Scaling: ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{Width: 640, Height: 480, Zoom: "letterbox"},
		Ship: AsteroidsShip{
			Thrust:   1,
			Drag:     0.95,
			TurnRate: 5,
			Bounce:   -0.8,
		},
		Bullets: AsteroidsBullets{
			Speed:    10,
			Lifespan: 100,
			Size:     5,
		},
		Rocks: AsteroidsRocks{
			Count:   4,
			Size:    40,
			MinSize: 12,
			Speed:   1.5,
			Points:  10,
		},
		Gameplay: AsteroidsPlay{
			Lives:        3,
			RespawnDelay: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultNumbersConfig returns the default 2048 configuration.
func DefaultNumbersConfig() NumbersConfig {
	return NumbersConfig{
		Grid:       NumbersGrid{Size: 4},
		Tile:       NumbersTile{Size: 100, Gap: 20, Speed: 40},
		TargetRank: 11,
		FourChance: 0.1,
	}
}
