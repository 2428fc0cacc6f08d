package runner

import (
	"github.com/vovakirdan/nebula-runner/internal/config"
	"github.com/vovakirdan/nebula-runner/internal/core"
)

// ObstacleField is the fixed row of animated obstacles moving toward the
// player. The finish line starts at the last obstacle's spawn x and moves
// with the row, but is tracked on its own afterwards.
type ObstacleField struct {
	Obstacles  []AnimatedSprite
	Velocity   float64 // Units per second, leftward
	FinishLine float64
	MaxFrame   int
}

// NewObstacleField spawns cfg.Count obstacles on the ground, starting at the
// right edge of a windowW x windowH world and spaced cfg.Spacing apart. The
// frame size is the sheet size divided by its grid.
func NewObstacleField(cfg config.ObstacleConfig, sheet Texture, windowW, windowH float64) ObstacleField {
	frameW := float64(sheet.Width() / cfg.Columns)
	frameH := float64(sheet.Height() / cfg.Rows)

	obstacles := make([]AnimatedSprite, cfg.Count)
	for i := range obstacles {
		obstacles[i] = AnimatedSprite{
			Rect:          core.NewRect(0, 0, frameW, frameH),
			Pos:           core.Vec2{X: windowW + float64(i)*cfg.Spacing, Y: windowH - frameH},
			FrameDuration: cfg.FrameDuration,
		}
	}

	return ObstacleField{
		Obstacles:  obstacles,
		Velocity:   cfg.Velocity,
		FinishLine: obstacles[len(obstacles)-1].Pos.X,
		MaxFrame:   cfg.MaxFrame,
	}
}

// Advance moves every obstacle and the finish line by dt seconds.
func (f *ObstacleField) Advance(dt float64) {
	step := f.Velocity * dt
	for i := range f.Obstacles {
		f.Obstacles[i].Pos.X -= step
	}
	f.FinishLine -= step
}

// Animate advances every obstacle's animation by dt seconds.
func (f *ObstacleField) Animate(dt float64) {
	for i := range f.Obstacles {
		f.Obstacles[i] = f.Obstacles[i].Update(dt, f.MaxFrame)
	}
}
