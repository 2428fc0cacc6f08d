// Package replay steps a runner round headlessly with a fixed clock and
// scripted jumps. Textures are decoded but never drawn.
package replay

import (
	"errors"
	"math"

	"github.com/vovakirdan/nebula-runner/assets"
	"github.com/vovakirdan/nebula-runner/internal/config"
	"github.com/vovakirdan/nebula-runner/internal/core"
	"github.com/vovakirdan/nebula-runner/internal/runner"
)

// ErrInvalidOptions is returned for non-positive durations.
var ErrInvalidOptions = errors.New("replay: seconds and dt must be positive")

// Options controls a replay.
type Options struct {
	Seconds      float64 // Simulated time
	DT           float64 // Fixed frame delta
	JumpEvery    float64 // Press jump every N seconds; 0 never jumps
	StopOnFinish bool    // Stop once the round is decided
}

// Result is the world after a replay.
type Result struct {
	State  core.GameState
	Player runner.AnimatedSprite
	Motion runner.PlayerState
	Field  runner.ObstacleField
}

// Run replays one round of cfg. Jumps are pressed on frame 0 and then every
// JumpEvery seconds, rounded to whole frames.
func Run(cfg config.RunnerConfig, opts Options) (Result, error) {
	if opts.DT <= 0 || opts.Seconds <= 0 {
		return Result{}, ErrInvalidOptions
	}

	loader := assets.NewLoader(cfg.Assets.Dir)
	tex, err := runner.LoadTextures(loader, cfg)
	if err != nil {
		return Result{}, err
	}
	defer tex.Release(loader)

	world := runner.NewWorld(cfg, tex)
	session := runner.NewSession(world)

	period := 0
	if opts.JumpEvery > 0 {
		period = max(1, int(math.Round(opts.JumpEvery/opts.DT)))
	}
	frames := int(math.Round(opts.Seconds / opts.DT))

	state := runner.Replay(session, runner.FixedClock(opts.DT), frames, func(frame int) core.InputFrame {
		in := core.NewInputFrame()
		if period > 0 && frame%period == 0 {
			in.Set(core.ActionJump)
		}
		return in
	}, opts.StopOnFinish)

	return Result{
		State:  state,
		Player: world.Player(),
		Motion: world.Motion(),
		Field:  world.Field(),
	}, nil
}
