// Package tui provides the Bubble Tea host for the arcade: it maps terminal
// mouse input to pointer events, rasterizes game frames into cells, and
// runs the menu, scoreboard and SSH session flow around them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTickRate = 60
	maxTickRate     = 240 // beyond this a terminal cannot keep up
	pausedTickRate  = 4   // a paused game only needs its view refreshed
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// frameInterval is the period between ticks. Non-positive rates use the
// default, rates above maxTickRate are capped.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(min(tickRate, maxTickRate))
}

// tickCmd schedules the next TickMsg.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
