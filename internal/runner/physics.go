package runner

import "github.com/vovakirdan/nebula-runner/internal/core"

// MotionState is the player's vertical state.
type MotionState int

const (
	Grounded MotionState = iota
	Airborne
)

// String returns the state name.
func (m MotionState) String() string {
	if m == Airborne {
		return "airborne"
	}
	return "grounded"
}

// PlayerState is the player's vertical motion. Velocity is in units per
// second, negative is up.
type PlayerState struct {
	Velocity float64
	Motion   MotionState
}

// Physics integrates gravity and jumps.
type Physics struct {
	Gravity     float64 // Units per second squared
	JumpImpulse float64 // Units per second, applied upward
}

// Settle applies the ground check of a frame: a grounded player stops, an
// airborne one accelerates downward.
func (p Physics) Settle(st *PlayerState, grounded bool, dt float64) {
	if grounded {
		st.Velocity = 0
		st.Motion = Grounded
		return
	}
	st.Velocity += p.Gravity * dt
	st.Motion = Airborne
}

// Jump applies the jump impulse if the player is grounded and reports
// whether it did. There is no double jump.
func (p Physics) Jump(st *PlayerState) bool {
	if st.Motion != Grounded {
		return false
	}
	st.Velocity -= p.JumpImpulse
	return true
}

// Integrate moves pos by the current velocity.
func (p Physics) Integrate(pos *core.Vec2, st PlayerState, dt float64) {
	pos.Y += st.Velocity * dt
}
