// arcade runs pointer-driven 2D mini-games in the terminal, over SSH, or
// in a browser canvas.
//
// Usage:
//
//	arcade list               - List available games
//	arcade play <id|number>   - Play a game in the terminal
//	arcade menu               - Start menu to pick games interactively
//	arcade serve              - Start SSH server for remote play
//	arcade web                - Serve games to browsers over WebSocket
//	arcade scores <id|number> - Show high scores for a game
//	arcade catalog <number>   - Describe a numbered game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/games/minigame"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Canvas Arcade - pointer-driven mini-games",
	Long: `Canvas Arcade runs small mouse-driven games: a bubble shooter,
minesweeper, basketball, a click-the-targets game and a catalog of one
million numbered click-target variants.

Available commands:
  list     - Show all available games
  play     - Play a specific game in the terminal
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  web      - Serve games to a browser canvas
  scores   - View high scores
  catalog  - Describe a numbered game

Examples:
  arcade list
  arcade play minesweeper
  arcade play 2021
  arcade menu
  arcade web --addr :8080
  arcade scores bubble`,
	PersistentPreRunE: applyGameFlags,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(catalogCmd)
}

// applyGameFlags validates the shared game flags and hands them to the games.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	minigame.SetConfigPath(flagConfig)
	minigame.SetDifficultyPreset(flagDifficulty)
	return nil
}
