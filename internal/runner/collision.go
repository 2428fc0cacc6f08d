package runner

import "github.com/vovakirdan/nebula-runner/internal/core"

// CollisionJudge builds hitboxes and decides whether the player was hit.
//
// Obstacle boxes are inset as {x+Offset, y+Offset, w-2*Pad, h-2*Pad}. With
// the default Offset 20 and Pad 40 the box is shifted by less than it shrinks,
// and frames narrower than 2*Pad yield a negative size. Such boxes are not
// normalised; the overlap test is applied to them as-is.
type CollisionJudge struct {
	Offset float64
	Pad    float64
}

// ObstacleBox returns the inset hitbox of an obstacle.
func (j CollisionJudge) ObstacleBox(o AnimatedSprite) core.Rect {
	return core.NewRect(
		o.Pos.X+j.Offset,
		o.Pos.Y+j.Offset,
		o.Rect.W-2*j.Pad,
		o.Rect.H-2*j.Pad,
	)
}

// PlayerBox returns the player's hitbox: its full frame, no padding.
func (j CollisionJudge) PlayerBox(p AnimatedSprite) core.Rect {
	return p.Bounds()
}

// Collides reports whether the player overlaps any obstacle.
func (j CollisionJudge) Collides(player AnimatedSprite, obstacles []AnimatedSprite) bool {
	pb := j.PlayerBox(player)
	for _, o := range obstacles {
		if j.ObstacleBox(o).Overlaps(pb) {
			return true
		}
	}
	return false
}
