package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/nebula-runner/internal/core"
)

func TestParallaxWrapsAtThreshold(t *testing.T) {
	l := ParallaxLayer{Texture: &fakeTexture{w: 200, h: 100}, Speed: 150, Scale: 2}

	l.Advance(1)
	assert.Equal(t, -150.0, l.Offset)
	l.Advance(1)
	assert.Equal(t, -300.0, l.Offset, "no reset before the threshold")
	l.Advance(1)
	assert.Equal(t, 0.0, l.Offset, "reset on the frame that crosses -400")
}

func TestParallaxWrapsExactlyAtThreshold(t *testing.T) {
	l := ParallaxLayer{Texture: &fakeTexture{w: 200, h: 100}, Speed: 100, Scale: 2}

	for i := 0; i < 3; i++ {
		l.Advance(1)
	}
	assert.Equal(t, -300.0, l.Offset)

	l.Advance(1)
	assert.Equal(t, 0.0, l.Offset, "-400 itself resets")
}

func TestParallaxPositions(t *testing.T) {
	l := ParallaxLayer{Texture: &fakeTexture{w: 256, h: 192}, Scale: 2, Offset: -100}

	assert.Equal(t, [2]core.Vec2{{X: -100}, {X: 412}}, l.Positions())
}

func TestParallaxDraw(t *testing.T) {
	tex := &fakeTexture{w: 256, h: 192}
	l := ParallaxLayer{Texture: tex, Scale: 2, Offset: -10}
	c := &recordingCanvas{}

	l.Draw(c)

	if assert.Len(t, c.calls, 2) {
		assert.Equal(t, drawCall{kind: "scaled", tex: tex, pos: core.Vec2{X: -10}, scale: 2}, c.calls[0])
		assert.Equal(t, drawCall{kind: "scaled", tex: tex, pos: core.Vec2{X: 502}, scale: 2}, c.calls[1])
	}
}

func TestParallaxSpeedsDiffer(t *testing.T) {
	w := testWorld(nil)
	w.Step(core.NewInputFrame(), 0.5)

	layers := w.Layers()
	assert.Equal(t, -10.0, layers[0].Offset)
	assert.Equal(t, -20.0, layers[1].Offset)
	assert.Equal(t, -40.0, layers[2].Offset)
}
