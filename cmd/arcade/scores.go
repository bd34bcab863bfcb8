package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores for the specified game, or a summary of
every game played when no game is given.

Examples:
  arcade scores
  arcade scores asteroids
  arcade scores pong --limit 20
  arcade scores 2048 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the game")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printSummary(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", info.Title)
		return
	}

	if err := printTopScores(store, info); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printTopScores(store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	if len(scores) == 0 {
		fmt.Println()
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", info.ID)
		return nil
	}

	t := newTable("Rank", "Score", "Ticks", "Date")
	for i, e := range scores {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(e.Score),
			strconv.FormatUint(e.Ticks, 10),
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t)
	fmt.Printf("Best: %d\n", scores[0].Score)
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	t := newTable("Game", "Played", "Best", "Average", "Ticks", "Last played")
	for _, id := range ids {
		st := stats[id]
		title := id
		if info, ok := registry.Info(id); ok {
			title = info.Title
		}
		t.Row(
			title,
			strconv.Itoa(st.GamesCount),
			strconv.Itoa(st.HighScore),
			strconv.FormatFloat(st.AvgScore, 'f', 1, 64),
			strconv.FormatInt(st.TotalTicks, 10),
			st.LastPlayed.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t)
	return nil
}
