package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <id|number>",
	Short: "Play a game",
	Long: `Start playing the specified game in the terminal. The mouse is the
pointer: move to aim, click to shoot or reveal, drag and release to throw.

Controls:
  Mouse      - Play
  P          - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More targets, slower movement, fewer mines, wider hoop
  normal - Config values as loaded
  hard   - Fewer targets, faster movement, more mines, narrower hoop
  fixed  - Config values as loaded (default)

Examples:
  arcade play bubble
  arcade play minesweeper --difficulty easy
  arcade play clicker --config ./my-clicker.yaml
  arcade play 2021`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	game, err := resolveGame(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
