package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/nebula-runner/internal/core"
	"github.com/vovakirdan/nebula-runner/internal/runner"
)

// faceHeight is the pixel height of basicfont.Face7x13.
const faceHeight = 13

// canvas draws onto the ebiten screen of the current frame.
type canvas struct {
	dst  *ebiten.Image
	face text.Face
}

func newCanvas() *canvas {
	return &canvas{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (c *canvas) DrawSprite(tex runner.Texture, src core.Rect, pos core.Vec2) {
	t, ok := tex.(*texture)
	if !ok {
		return
	}
	r := image.Rect(int(src.X), int(src.Y), int(src.X+src.W), int(src.Y+src.H)).Intersect(t.img.Bounds())
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	c.dst.DrawImage(t.img.SubImage(r).(*ebiten.Image), op)
}

func (c *canvas) DrawScaledTexture(tex runner.Texture, pos core.Vec2, scale float64) {
	t, ok := tex.(*texture)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y)
	c.dst.DrawImage(t.img, op)
}

func (c *canvas) DrawText(s string, x, y, size int, col core.Color) {
	scale := float64(size) / faceHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(toRGBA(col))
	text.Draw(c.dst, s, c.face, op)
}

// toRGBA converts a palette color to an opaque RGBA.
func toRGBA(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

var _ runner.Canvas = (*canvas)(nil)
