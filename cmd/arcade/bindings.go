package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/platform"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

var (
	flagSort  string
	flagSet   []string
	flagReset bool
)

var bindingsCmd = &cobra.Command{
	Use:   "bindings <game>",
	Short: "Show or change the key bindings of a game",
	Long: `Show the effective key bindings of a game: its own bindings plus
those from the engine config and the scores database.

Saved bindings extend the game's bindings, they never remove any.

Examples:
  arcade bindings asteroids
  arcade bindings asteroids --sort key
  arcade bindings pong --set UP=i --set DOWN=k
  arcade bindings pong --reset`,
	Args: cobra.ExactArgs(1),
	Run:  runBindings,
}

func init() {
	bindingsCmd.Flags().StringVar(&flagSort, "sort", "auto", "Sort order: auto, control or key")
	bindingsCmd.Flags().StringArrayVar(&flagSet, "set", nil, "Save CONTROL=key[,key...] (replaces saved bindings)")
	bindingsCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete saved bindings")
}

func runBindings(_ *cobra.Command, args []string) {
	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := changeBindings(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := engineConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	g, _, err := platform.NewSession(gameID, platform.SessionOptions{
		Engine: cfg,
		Store:  store,
		Logger: log.New(io.Discard),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	ctrl := g.Controller()
	byControl := ctrl.PreferControlOrder()
	switch flagSort {
	case "control":
		byControl = true
	case "key":
		byControl = false
	case "auto":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown sort order %q (want auto, control or key)\n", flagSort)
		os.Exit(1)
	}

	headers := []string{"Key", "Control"}
	if byControl {
		headers = []string{"Control", "Key"}
	}
	t := newTable(headers...)
	for _, b := range ctrl.Bindings(byControl) {
		if byControl {
			t.Row(b.Control, b.Key.String())
		} else {
			t.Row(b.Key.String(), b.Control)
		}
	}

	fmt.Printf("Key bindings - %s\n", info.Title)
	fmt.Println(t)
}

// changeBindings applies --reset and --set. --set replaces every saved
// binding of the game.
func changeBindings(store *storage.Store, gameID string) error {
	if flagReset {
		if err := store.ClearBindings(gameID); err != nil {
			return err
		}
	}
	if len(flagSet) == 0 {
		return nil
	}

	var bindings []storage.KeyBinding
	for _, s := range flagSet {
		b, err := platform.ParseBinding(s)
		if err != nil {
			return err
		}
		bindings = append(bindings, b...)
	}
	return store.SaveBindings(gameID, bindings)
}
