// Package tui provides the Bubble Tea integration for the flappy simulation.
// It handles the terminal UI loop, input mapping, persistence of finished
// episodes and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// defaultTickRate is used when neither the caller nor the config sets one.
const defaultTickRate = 30

// resolveTickRate returns rate when positive, else the configured
// world.frame_rate.
func resolveTickRate(rate int) int {
	if rate > 0 {
		return rate
	}
	if cfg, err := flappy.LoadConfig(); err == nil {
		return cfg.World.FrameRate
	}
	return defaultTickRate
}

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
