// arcade plays the bundled engine demos in the terminal or in a desktop
// window.
//
// Usage:
//
//	arcade list                 - List available games
//	arcade play <game>          - Play a game
//	arcade menu                 - Pick games from an interactive menu
//	arcade scores [game]        - Show high scores
//	arcade bindings <game>      - Show or change key bindings
//
// Global flags:
//
//	--config <path> - Engine config YAML (default: ~/.arcade/engine.yaml)
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--debug         - Log debug output and draw hit shapes
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-engine/internal/games/asteroids"
	_ "github.com/vovakirdan/arcade-engine/internal/games/numbers"
	_ "github.com/vovakirdan/arcade-engine/internal/games/pong"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

const logPath = "~/.arcade/arcade.log"

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - small games on a tiny 2D engine",
	Long: `Arcade runs the demo games of a small 2D engine, either in the
terminal or in a desktop window.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  scores    - View high scores
  bindings  - View or change key bindings

Examples:
  arcade list
  arcade play asteroids
  arcade play pong --backend desktop
  arcade menu
  arcade scores 2048`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and hit shape outlines")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bindingsCmd)
}

// newLogger returns the command logger. The terminal backend owns the
// screen, so it logs to a file instead of stderr. The returned closer is
// never nil.
func newLogger(toFile bool) (*log.Logger, io.Closer) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if toFile {
		f, err := openLogFile()
		if err != nil {
			w = io.Discard
		} else {
			w, closer = f, f
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer
}

func openLogFile() (*os.File, error) {
	path := logPath
	if home, err := os.UserHomeDir(); err == nil {
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// openStore opens the scores database. Playing works without it, so a
// failure is only a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
