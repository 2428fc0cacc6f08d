package runner

import "github.com/vovakirdan/nebula-runner/internal/core"

// pausedText is drawn over the world while the session is paused.
const pausedText = "Paused"

// RunResult summarises a finished round.
type RunResult struct {
	Outcome core.Outcome
	Elapsed float64 // Seconds until the round was decided
	Frames  int
	Revised bool // A previously reported win turned into a loss
}

// Session drives a World on behalf of a backend. It handles pause, restart
// after the round ends, and OnFinish notifications.
type Session struct {
	world    *World
	paused   bool
	reported core.Outcome // Last outcome passed to OnFinish

	// OnFinish, if set, is called when a round is first decided and again
	// with Revised set if a win later turns into a loss.
	OnFinish func(RunResult)
}

// NewSession wraps w.
func NewSession(w *World) *Session {
	return &Session{world: w}
}

// World returns the wrapped world.
func (s *Session) World() *World {
	return s.world
}

// Step handles session actions, then steps the world unless paused.
func (s *Session) Step(in core.InputFrame, dt float64) core.StepResult {
	finished := s.world.State().Outcome.Finished()

	if finished && in.Has(core.ActionRestart) {
		s.Restart()
		return core.StepResult{State: s.State()}
	}

	if !finished && in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	s.world.Step(in, dt)

	state := s.State()
	if state.Outcome.Finished() && state.Outcome != s.reported {
		revised := s.reported.Finished()
		s.reported = state.Outcome
		if s.OnFinish != nil {
			s.OnFinish(RunResult{
				Outcome: state.Outcome,
				Elapsed: state.Elapsed,
				Frames:  state.Frames,
				Revised: revised,
			})
		}
	}
	return core.StepResult{State: state}
}

// Restart resets the world and starts a new round.
func (s *Session) Restart() {
	s.world.Reset()
	s.paused = false
	s.reported = core.OutcomePlaying
}

// Render draws the world and the pause overlay.
func (s *Session) Render(dst Canvas) {
	s.world.Render(dst)
	if s.paused {
		cfg := s.world.Config()
		dst.DrawText(pausedText, cfg.Window.Width/3, cfg.Messages.Y, cfg.Messages.Size, core.ColorGray)
	}
}

// State returns the world state with the pause flag filled in.
func (s *Session) State() core.GameState {
	st := s.world.State()
	st.Paused = s.paused
	return st
}

// Replay steps s for frames frames with the clock's delta, taking input from
// inputAt (which may be nil). It stops early once the round is decided when
// stopOnFinish is set, and returns the final state.
func Replay(s *Session, clock Clock, frames int, inputAt func(frame int) core.InputFrame, stopOnFinish bool) core.GameState {
	state := s.State()
	for i := 0; i < frames; i++ {
		in := core.NewInputFrame()
		if inputAt != nil {
			in = inputAt(i)
		}
		state = s.Step(in, clock.FrameDelta()).State
		if stopOnFinish && state.Outcome.Finished() {
			break
		}
	}
	return state
}
