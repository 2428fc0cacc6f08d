// Package tui provides the Bubble Tea frontend for the runner.
// It handles the terminal UI loop, input mapping, and drawing the world
// as coloured glyphs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nebula-runner/internal/core"
)

// maxFrameDelta caps a single frame so a suspended terminal does not
// teleport the obstacles past the player.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickClock measures wall time between ticks. It reports the nominal
// interval on the first tick and after a reset.
type tickClock struct {
	nominal float64
	last    time.Time
	delta   float64
}

func newTickClock(tickRate int) *tickClock {
	nominal := 1 / float64(tickRate)
	return &tickClock{nominal: nominal, delta: nominal}
}

// observe records a tick at t.
func (c *tickClock) observe(t time.Time) {
	if c.last.IsZero() || !t.After(c.last) {
		c.delta = c.nominal
	} else {
		c.delta = core.ClampF(t.Sub(c.last).Seconds(), 0, maxFrameDelta)
	}
	c.last = t
}

// reset forgets the previous tick, e.g. after a pause.
func (c *tickClock) reset() {
	c.last = time.Time{}
}

// FrameDelta returns the seconds between the last two ticks.
func (c *tickClock) FrameDelta() float64 {
	return c.delta
}
