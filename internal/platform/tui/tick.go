// Package tui runs the game in a terminal with Bubble Tea. It owns the frame
// clock, key mapping and drawing; the simulation lives in package flappy.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the time one update may simulate, so a stalled terminal
// does not teleport the player through an obstacle.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, clamped to
// (0, maxFrameDelta]. The first frame, with no previous tick, uses the
// nominal interval.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	nominal := 1.0 / float64(tickRate)
	if prev.IsZero() {
		return nominal
	}
	dt := now.Sub(prev).Seconds()
	if dt <= 0 {
		return nominal
	}
	return min(dt, maxFrameDelta)
}
