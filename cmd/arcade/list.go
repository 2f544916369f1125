package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/catalog"
	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows the built-in games with how they play and the best score on
record, followed by the range of the numbered catalog.`,
	Run: runList,
}

// howToPlay describes the pointer gesture each layout expects.
var howToPlay = map[string]string{
	config.LayoutBubbles: "aim and click to shoot",
	config.LayoutGrid:    "click to reveal",
	config.LayoutCourt:   "drag and release to throw",
	config.LayoutScatter: "click the targets",
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Best scores are a bonus; listing works without the database.
	var store *storage.Store
	if s, err := storage.Open(flagDBPath); err == nil {
		store = s
		defer store.Close()
	}

	idWidth, titleWidth := len("ID"), len("Title")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
		titleWidth = max(titleWidth, len(g.Title))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", idWidth, "ID", titleWidth, "Title", "Best", "Play")
	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", idWidth, "--", titleWidth, "-----", "----", "----")
	for _, g := range games {
		best := "-"
		if store != nil {
			if high, err := store.HighScore(g.ID); err == nil && high > 0 {
				best = strconv.Itoa(high)
			}
		}
		play := ""
		if cfg, ok := config.DefaultConfig(g.ID); ok {
			play = howToPlay[cfg.Rules.Layout]
		}
		fmt.Printf("  %-*s  %-*s  %-6s  %s\n", idWidth, g.ID, titleWidth, g.Title, best, play)
	}

	fmt.Println()
	fmt.Printf("Plus %d numbered click-target games, %s to %s.\n",
		catalog.Len(), catalog.ID(catalog.First), catalog.ID(catalog.Last))
	fmt.Println("Run 'arcade catalog <number>' to see one, 'arcade play <id|number>' to play.")
}
