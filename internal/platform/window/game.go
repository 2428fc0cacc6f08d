// Package window provides the ebiten desktop frontend for the runner.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/nebula-runner/internal/config"
	"github.com/vovakirdan/nebula-runner/internal/core"
	"github.com/vovakirdan/nebula-runner/internal/runner"
)

// keyBindings maps keys to actions. Any key of a binding triggers it on the
// frame it is pressed.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionJump:    {ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// game adapts a runner session to ebiten.Game.
type game struct {
	session *runner.Session
	canvas  *canvas
	clock   runner.Clock
	width   int
	height  int
}

func newGame(session *runner.Session, cfg config.RunnerConfig) *game {
	return &game{
		session: session,
		canvas:  newCanvas(),
		clock:   runner.FixedClock(1 / float64(cfg.Window.TargetFPS)),
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
}

// Update runs one frame at the fixed TPS.
func (g *game) Update() error {
	in := pressedActions()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	g.session.Step(in, g.clock.FrameDelta())
	return nil
}

// Draw renders the session on a white background.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	g.canvas.dst = screen
	g.session.Render(g.canvas)
}

// Layout keeps the logical screen at the world size.
func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func pressedActions() core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Set(action)
				break
			}
		}
	}
	return in
}
