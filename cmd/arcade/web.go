package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve games to browsers over WebSocket",
	Long: `Start an HTTP server with a canvas client. Each browser tab opens a
WebSocket, the server runs the game and streams draw commands back.

Endpoints:
  /            - Canvas client
  /api/games   - Registered games as JSON
  /ws?game=ID  - Game session (ID may be a catalog number such as game2021)

Examples:
  arcade web
  arcade web --addr 127.0.0.1:9000 --fps 30`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	cfg := web.DefaultServerConfig()
	cfg.Address = flagWebAddr
	cfg.DBPath = flagDBPath
	cfg.TickRate = flagFPS

	server, err := web.NewServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving arcade on http://%s\n", displayAddr(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
