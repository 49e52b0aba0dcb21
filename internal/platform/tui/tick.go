// Package tui provides the Bubble Tea frontend for the runner.
// It handles the terminal UI loop, input mapping, and the variant picker.
// The surface is drawn as colored cells; each cell stands for a block of
// surface pixels.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// Each tick is one display frame; the game advances its own clock by 1/tickRate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
