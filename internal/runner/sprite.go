package runner

import "github.com/vovakirdan/nebula-runner/internal/core"

// AnimatedSprite is an entity drawn from a sprite sheet: the source frame
// rectangle, its world position, and the animation clock.
type AnimatedSprite struct {
	Rect          core.Rect // Source rectangle in the sheet; W and H are the frame size
	Pos           core.Vec2 // Top-left corner in world units
	Frame         int       // Next frame index to show
	FrameDuration float64   // Seconds per frame
	Elapsed       float64   // Seconds since the last frame advance
}

// Update returns the sprite advanced by dt seconds.
//
// Once Elapsed reaches FrameDuration the accumulator restarts from zero (the
// overshoot is dropped), the source rectangle moves to the current frame and
// the frame index steps forward, wrapping to 0 past maxFrame.
func (s AnimatedSprite) Update(dt float64, maxFrame int) AnimatedSprite {
	s.Elapsed += dt
	if s.Elapsed >= s.FrameDuration {
		s.Elapsed = 0
		s.Rect.X = float64(s.Frame) * s.Rect.W
		s.Frame++
		if s.Frame > maxFrame {
			s.Frame = 0
		}
	}
	return s
}

// IsGrounded reports whether the sprite's bottom edge is at or below surfaceY.
func (s AnimatedSprite) IsGrounded(surfaceY float64) bool {
	return s.Pos.Y >= surfaceY-s.Rect.H
}

// Bounds returns the sprite's world rectangle.
func (s AnimatedSprite) Bounds() core.Rect {
	return core.NewRect(s.Pos.X, s.Pos.Y, s.Rect.W, s.Rect.H)
}
