package runner

import "github.com/vovakirdan/nebula-runner/internal/core"

// ParallaxLayer is one horizontally scrolling background texture. Two copies
// are drawn side by side so the layer tiles the viewport while it scrolls.
type ParallaxLayer struct {
	Texture Texture
	Speed   float64 // Units per second, leftward
	Scale   float64 // Draw scale of the texture
	Offset  float64 // X of the first copy, in (-Scale*width, 0]
}

// span is the drawn width of one copy.
func (l ParallaxLayer) span() float64 {
	return l.Scale * float64(l.Texture.Width())
}

// Advance scrolls the layer by dt seconds. The offset resets to zero on the
// frame it reaches one full drawn width.
func (l *ParallaxLayer) Advance(dt float64) {
	l.Offset -= l.Speed * dt
	if l.Offset <= -l.span() {
		l.Offset = 0
	}
}

// Positions returns where the two copies are drawn.
func (l ParallaxLayer) Positions() [2]core.Vec2 {
	return [2]core.Vec2{
		{X: l.Offset, Y: 0},
		{X: l.Offset + l.span(), Y: 0},
	}
}

// Draw issues both copies to the canvas.
func (l ParallaxLayer) Draw(dst Canvas) {
	for _, pos := range l.Positions() {
		dst.DrawScaledTexture(l.Texture, pos, l.Scale)
	}
}
