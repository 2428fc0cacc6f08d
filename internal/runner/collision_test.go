package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/nebula-runner/internal/core"
)

var testJudge = CollisionJudge{Offset: 20, Pad: 40}

func obstacleAt(x float64) AnimatedSprite {
	return AnimatedSprite{Rect: core.NewRect(0, 0, 100, 100), Pos: core.Vec2{X: x, Y: 284}}
}

func testPlayer() AnimatedSprite {
	return AnimatedSprite{Rect: core.NewRect(0, 0, 128, 128), Pos: core.Vec2{X: 192, Y: 256}}
}

func TestObstacleBox(t *testing.T) {
	box := testJudge.ObstacleBox(obstacleAt(100))
	assert.Equal(t, core.NewRect(120, 304, 20, 20), box)
}

// The inset shifts by Offset but shrinks by 2*Pad, so frames narrower than
// 2*Pad produce a box with negative size. It is used as-is.
func TestObstacleBoxNegativeForSmallFrames(t *testing.T) {
	small := AnimatedSprite{Rect: core.NewRect(0, 0, 60, 60), Pos: core.Vec2{X: 200, Y: 300}}

	box := testJudge.ObstacleBox(small)
	assert.Equal(t, core.NewRect(220, 320, -20, -20), box)
	assert.True(t, testJudge.Collides(testPlayer(), []AnimatedSprite{small}),
		"reversed edges inside the player still overlap")

	small.Pos.X = 290 // box spans x 290..310 reversed, player ends at 320
	assert.True(t, testJudge.Collides(testPlayer(), []AnimatedSprite{small}))

	small.Pos.X = 310 // reversed box starts right of the player edge
	assert.False(t, testJudge.Collides(testPlayer(), []AnimatedSprite{small}))
}

func TestPlayerBoxIsUnpadded(t *testing.T) {
	assert.Equal(t, core.NewRect(192, 256, 128, 128), testJudge.PlayerBox(testPlayer()))
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name      string
		obstacles []AnimatedSprite
		want      bool
	}{
		{"obstacle after one second", []AnimatedSprite{obstacleAt(262)}, true},
		{"box just right of player", []AnimatedSprite{obstacleAt(300)}, false},
		{"box just left of player", []AnimatedSprite{obstacleAt(152)}, false},
		{"far away", []AnimatedSprite{obstacleAt(512), obstacleAt(912)}, false},
		{"any of many", []AnimatedSprite{obstacleAt(912), obstacleAt(250)}, true},
		{"none", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, testJudge.Collides(testPlayer(), tc.obstacles))
		})
	}
}

func TestCollidesJumpingPlayerClears(t *testing.T) {
	p := testPlayer()
	p.Pos.Y = 304 - 128 // bottom edge touches the top of the box

	assert.False(t, testJudge.Collides(p, []AnimatedSprite{obstacleAt(262)}))
}
