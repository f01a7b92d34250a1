// Package tui provides the Bubble Tea integration for the runner.
// It drives the tick loop, maps keys and mouse to game input, and serves
// games over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxTickRate caps the simulation rate; terminals cannot redraw faster.
const maxTickRate = 240

// TickMsg is sent to trigger a game simulation tick. It carries the time the
// tick fired; hold gestures are measured against it.
type TickMsg time.Time

// tickInterval converts a tick rate to the delay between ticks.
// Rates outside 1..maxTickRate are clamped.
func tickInterval(tickRate int) time.Duration {
	tickRate = min(max(tickRate, 1), maxTickRate)
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next tick. The tick handler re-arms it every time,
// so the loop runs as long as the program does.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
