package runner

import (
	"github.com/vovakirdan/nebula-runner/internal/config"
	"github.com/vovakirdan/nebula-runner/internal/core"
)

// World owns all state of one round: the player, the obstacle row, the
// parallax layers and the latched collision flag.
type World struct {
	cfg     config.RunnerConfig
	tex     Textures
	physics Physics
	judge   CollisionJudge

	player   AnimatedSprite
	motion   PlayerState
	field    ObstacleField
	layers   [config.ParallaxLayers]ParallaxLayer
	collided bool // Set by the first collision of the round, never cleared
	state    core.GameState
}

// NewWorld creates a world for a validated config and its loaded textures.
func NewWorld(cfg config.RunnerConfig, tex Textures) *World {
	w := &World{
		cfg: cfg,
		tex: tex,
		physics: Physics{
			Gravity:     cfg.Physics.Gravity,
			JumpImpulse: cfg.Physics.JumpImpulse,
		},
		judge: CollisionJudge{
			Offset: cfg.Collision.Offset,
			Pad:    cfg.Collision.Pad,
		},
	}
	w.Reset()
	return w
}

// Reset puts every entity back at its spawn state.
func (w *World) Reset() {
	width := float64(w.cfg.Window.Width)
	height := float64(w.cfg.Window.Height)

	frameW := float64(w.tex.Player.Width() / w.cfg.Player.Frames)
	frameH := float64(w.tex.Player.Height())
	w.player = AnimatedSprite{
		Rect:          core.NewRect(0, 0, frameW, frameH),
		Pos:           core.Vec2{X: width/2 - frameW/2, Y: height - frameH},
		FrameDuration: w.cfg.Player.FrameDuration,
	}
	w.motion = PlayerState{}

	w.field = NewObstacleField(w.cfg.Obstacles, w.tex.Obstacle, width, height)

	for i := range w.layers {
		w.layers[i] = ParallaxLayer{
			Texture: w.tex.Layers[i],
			Speed:   w.cfg.Parallax.Layers[i].Speed,
			Scale:   w.cfg.Parallax.Scale,
		}
	}

	w.collided = false
	w.state = core.GameState{}
}

// Step advances the world by dt seconds.
//
// The outcome is judged again on every frame, so a won round turns into a
// loss if the player lands on an obstacle after crossing the finish line.
// Elapsed time and the frame count stop at the first decided frame. Entities
// keep moving after the round is decided.
func (w *World) Step(in core.InputFrame, dt float64) core.StepResult {
	for i := range w.layers {
		w.layers[i].Advance(dt)
	}

	ground := float64(w.cfg.Window.Height)
	w.physics.Settle(&w.motion, w.player.IsGrounded(ground), dt)
	if in.Has(core.ActionJump) {
		w.physics.Jump(&w.motion)
	}

	w.field.Advance(dt)
	w.physics.Integrate(&w.player.Pos, w.motion, dt)

	// The run cycle pauses mid-air.
	if w.motion.Motion == Grounded {
		w.player = w.player.Update(dt, w.cfg.Player.MaxFrame)
	}
	w.field.Animate(dt)

	if w.judge.Collides(w.player, w.field.Obstacles) {
		w.collided = true
	}

	if !w.state.Outcome.Finished() {
		w.state.Elapsed += dt
		w.state.Frames++
	}
	w.state.Outcome = w.judgeOutcome()

	return core.StepResult{State: w.state}
}

func (w *World) judgeOutcome() core.Outcome {
	switch {
	case w.collided:
		return core.OutcomeLost
	case w.player.Pos.X >= w.field.FinishLine:
		return core.OutcomeWon
	default:
		return core.OutcomePlaying
	}
}

// Render draws the backgrounds, then either the end-of-round message or the
// obstacles and the player.
func (w *World) Render(dst Canvas) {
	for _, l := range w.layers {
		l.Draw(dst)
	}

	msg := w.cfg.Messages
	x := w.cfg.Window.Width / 3
	switch w.state.Outcome {
	case core.OutcomeLost:
		dst.DrawText(msg.Lose, x, msg.Y, msg.Size, core.ColorRed)
	case core.OutcomeWon:
		dst.DrawText(msg.Win, x, msg.Y, msg.Size, core.ColorBlue)
	default:
		for _, o := range w.field.Obstacles {
			dst.DrawSprite(w.tex.Obstacle, o.Rect, o.Pos)
		}
		dst.DrawSprite(w.tex.Player, w.player.Rect, w.player.Pos)
	}
}

// State returns the current round state.
func (w *World) State() core.GameState {
	return w.state
}

// Player returns a copy of the player sprite.
func (w *World) Player() AnimatedSprite {
	return w.player
}

// Motion returns the player's vertical motion.
func (w *World) Motion() PlayerState {
	return w.motion
}

// Field returns a copy of the obstacle row. The slice is shared with the world.
func (w *World) Field() ObstacleField {
	return w.field
}

// Layers returns a copy of the parallax layers.
func (w *World) Layers() [config.ParallaxLayers]ParallaxLayer {
	return w.layers
}

// Config returns the config the world was built from.
func (w *World) Config() config.RunnerConfig {
	return w.cfg
}
