// Package runner implements the side-scrolling runner: sprite-sheet animation,
// jump physics, parallax scrolling, the obstacle row and collision judging.
// It contains pure frame logic; rendering, input and timing are supplied by a
// backend through the interfaces below.
package runner

import "github.com/vovakirdan/nebula-runner/internal/core"

// Texture is a loaded image handle.
type Texture interface {
	Width() int
	Height() int
}

// TextureLoader loads and releases textures by asset path.
type TextureLoader interface {
	LoadTexture(path string) (Texture, error)
	ReleaseTexture(tex Texture)
}

// Canvas receives the draw calls of one frame.
type Canvas interface {
	// DrawSprite draws the src region of tex with its top-left at pos.
	DrawSprite(tex Texture, src core.Rect, pos core.Vec2)
	// DrawScaledTexture draws the whole of tex at pos, scaled uniformly.
	DrawScaledTexture(tex Texture, pos core.Vec2, scale float64)
	// DrawText draws text with its top-left at (x, y) and the given pixel size.
	DrawText(text string, x, y, size int, color core.Color)
}

// Clock reports the seconds elapsed since the previous frame.
type Clock interface {
	FrameDelta() float64
}

// FixedClock is a Clock that always reports the same delta. It drives
// deterministic replays.
type FixedClock float64

// FrameDelta returns the fixed delta.
func (c FixedClock) FrameDelta() float64 { return float64(c) }
