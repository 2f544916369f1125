package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/canvas-arcade/internal/catalog"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/games/minigame"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
)

// resolveGame accepts a registered id or a catalog number ("2021" or "game2021").
func resolveGame(arg string) (registry.Game, error) {
	if registry.Exists(arg) {
		return registry.Create(arg)
	}
	if n, ok := catalog.ParseNumber(arg); ok {
		return minigame.NewNumbered(n)
	}
	return nil, fmt.Errorf("unknown game %q", arg)
}

// runtimeConfig sizes the playfield to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the leaderboard; games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
