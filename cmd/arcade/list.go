package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	t := newTable("ID", "Title", "Description")
	for _, g := range games {
		t.Row(g.ID, g.Title, g.Description)
	}

	fmt.Println("Available games:")
	fmt.Println(t)
	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
