package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/platform"
	"github.com/vovakirdan/arcade-engine/internal/platform/desktop"
	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

var (
	flagFPS        float64
	flagSeed       int64
	flagBackend    string
	flagWidth      int
	flagHeight     int
	flagGameConfig string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move, steer or slide
  Space        - Fire / serve / restart
  R/Enter      - Restart (after game over)
  Q/Ctrl+C     - Quit (terminal)
  Esc          - Quit (desktop)

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play pong
  arcade play asteroids --difficulty hard
  arcade play asteroids --backend desktop --width 800 --height 600
  arcade play 2048 --game-config ./my-2048.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().Float64Var(&flagFPS, "fps", 0, "Tick rate (0 = config value)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagBackend, "backend", "", "Backend: tui or desktop (default from config)")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Desktop window width in pixels")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Desktop window height in pixels")
	playCmd.Flags().StringVar(&flagGameConfig, "game-config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	cfg, err := engineConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		if preset, err = config.ParseDifficultyPreset(flagDifficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closer := newLogger(cfg.Backend == config.BackendTUI)
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := play(gameID, cfg, preset, flagSeed, store, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// engineConfig loads the engine config and applies the play flags on top.
func engineConfig() (config.EngineConfig, error) {
	cfg, err := config.LoadEngine(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Framerate = flagFPS
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}
	if flagWidth > 0 {
		cfg.Window.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Window.Height = flagHeight
	}
	if flagDebug {
		cfg.Debug = true
	}
	return cfg, cfg.Validate()
}

// play runs one game on the configured backend until the player quits.
func play(gameID string, cfg config.EngineConfig, preset config.DifficultyPreset, seed int64, store *storage.Store, logger *log.Logger) error {
	g, client, err := platform.NewSession(gameID, platform.SessionOptions{
		Engine:     cfg,
		GameConfig: flagGameConfig,
		Seed:       seed,
		Difficulty: preset,
		Store:      store,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	switch cfg.Backend {
	case config.BackendDesktop:
		return desktop.Run(g, client, desktop.Options{Store: store, Logger: logger})
	case config.BackendTUI:
		if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			g.Resize(tui.CanvasSize(cols, rows))
		}
		return tui.Run(g, client, tui.Options{
			Store:   store,
			Logger:  logger,
			KeyHold: time.Duration(cfg.Terminal.KeyHoldMS) * time.Millisecond,
			Mouse:   cfg.Terminal.Mouse,
		})
	}
	return errors.New("unknown backend " + cfg.Backend)
}
