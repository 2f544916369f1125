package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog <number>",
	Short: "Describe a numbered game",
	Long: fmt.Sprintf(`Print the template and parameters of a numbered game.

Numbered games run from %d to %d. Each one is a click-the-targets game
with its own template name, target shape and fixed seed.

Examples:
  arcade catalog 2021
  arcade catalog game104`, catalog.First, catalog.Last),
	Args: cobra.ExactArgs(1),
	Run:  runCatalog,
}

func runCatalog(_ *cobra.Command, args []string) {
	n, ok := catalog.ParseNumber(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q is not a game number\n", args[0])
		os.Exit(1)
	}
	entry, err := catalog.Lookup(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	t := entry.Config.Targets
	fmt.Printf("%s (%s)\n", entry.Config.Title, entry.ID())
	fmt.Println()
	fmt.Printf("  %-10s  %s\n", "Template", entry.Template)
	fmt.Printf("  %-10s  %s\n", "Shape", t.Shape)
	fmt.Printf("  %-10s  %s\n", "Collision", entry.Config.Rules.Collision)
	fmt.Printf("  %-10s  %d\n", "Targets", t.Count)
	fmt.Printf("  %-10s  %g - %g\n", "Speed", t.Speed, t.SpeedMax)
	fmt.Printf("  %-10s  %d\n", "Reward", entry.Config.Reward)
	fmt.Printf("  %-10s  %d\n", "Seed", entry.Seed)
	fmt.Println()
	fmt.Printf("Run 'arcade play %d' to play it.\n", n)
}
