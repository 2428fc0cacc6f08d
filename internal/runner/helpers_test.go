package runner

import (
	"errors"

	"github.com/vovakirdan/nebula-runner/internal/config"
	"github.com/vovakirdan/nebula-runner/internal/core"
)

// tick is a binary-exact frame delta so accumulated times compare exactly.
const tick = 1.0 / 64.0

type fakeTexture struct {
	name string
	w, h int
}

func (f *fakeTexture) Width() int  { return f.w }
func (f *fakeTexture) Height() int { return f.h }

type fakeLoader struct {
	fail     string
	loaded   []string
	released []Texture
}

func (l *fakeLoader) LoadTexture(path string) (Texture, error) {
	if path == l.fail {
		return nil, errors.New("no such file")
	}
	l.loaded = append(l.loaded, path)
	w, h := 256, 192
	switch path {
	case "textures/scarfy.png":
		w, h = 768, 128
	case "textures/12_nebula_spritesheet.png":
		w, h = 800, 800
	}
	return &fakeTexture{name: path, w: w, h: h}, nil
}

func (l *fakeLoader) ReleaseTexture(tex Texture) {
	l.released = append(l.released, tex)
}

type drawCall struct {
	kind  string
	tex   Texture
	src   core.Rect
	pos   core.Vec2
	scale float64
	text  string
	x, y  int
	size  int
	color core.Color
}

type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) DrawSprite(tex Texture, src core.Rect, pos core.Vec2) {
	c.calls = append(c.calls, drawCall{kind: "sprite", tex: tex, src: src, pos: pos})
}

func (c *recordingCanvas) DrawScaledTexture(tex Texture, pos core.Vec2, scale float64) {
	c.calls = append(c.calls, drawCall{kind: "scaled", tex: tex, pos: pos, scale: scale})
}

func (c *recordingCanvas) DrawText(text string, x, y, size int, color core.Color) {
	c.calls = append(c.calls, drawCall{kind: "text", text: text, x: x, y: y, size: size, color: color})
}

func (c *recordingCanvas) kinds() []string {
	out := make([]string, len(c.calls))
	for i, call := range c.calls {
		out[i] = call.kind
	}
	return out
}

func testTextures() Textures {
	l := &fakeLoader{}
	tex, err := LoadTextures(l, config.DefaultRunnerConfig())
	if err != nil {
		panic(err)
	}
	return tex
}

// testWorld builds a default world with the animation clocks set to a
// binary-exact 1/8 s.
func testWorld(mutate func(*config.RunnerConfig)) *World {
	cfg := config.DefaultRunnerConfig()
	cfg.Player.FrameDuration = 0.125
	cfg.Obstacles.FrameDuration = 0.125
	if mutate != nil {
		mutate(&cfg)
	}
	return NewWorld(cfg, testTextures())
}

func jumpInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}
