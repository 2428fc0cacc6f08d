package tui

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nebula-runner/assets"
	"github.com/vovakirdan/nebula-runner/internal/core"
	"github.com/vovakirdan/nebula-runner/internal/runner"
)

// glyphRamp orders glyphs from dim to bright.
var glyphRamp = []rune(".:-=+*#%@")

// palette is what sampled pixels snap to.
var palette = []core.Color{
	core.ColorBlack,
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorBrightWhite,
	core.ColorOrange,
	core.ColorGray,
}

// alphaCutoff is the 16-bit alpha below which a pixel counts as transparent.
const alphaCutoff = 0x8000

// Canvas draws world-space calls into a terminal screen buffer. Each cell
// shows the texture pixel under its centre.
type Canvas struct {
	screen   *core.Screen
	sx, sy   float64 // Cells per world unit
	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style
}

// NewCanvas creates a canvas mapping a worldW x worldH world onto screen.
func NewCanvas(screen *core.Screen, worldW, worldH int) *Canvas {
	c := &Canvas{screen: screen}
	c.SetWorld(worldW, worldH)
	c.SetRenderer(lipgloss.DefaultRenderer())
	return c
}

// SetRenderer picks the lipgloss renderer, and so the color profile, used
// by Render.
func (c *Canvas) SetRenderer(r *lipgloss.Renderer) {
	c.renderer = r
	c.styles = make(map[core.Color]lipgloss.Style)
}

// SetWorld recomputes the cell scale, e.g. after the screen was resized.
func (c *Canvas) SetWorld(worldW, worldH int) {
	c.sx = float64(c.screen.Width()) / float64(worldW)
	c.sy = float64(c.screen.Height()) / float64(worldH)
}

// Clear blanks the screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// DrawSprite draws the src region of tex with its top-left at pos.
func (c *Canvas) DrawSprite(tex runner.Texture, src core.Rect, pos core.Vec2) {
	t, ok := tex.(*assets.Texture)
	if !ok || t.Image == nil {
		return
	}
	b := t.Image.Bounds()
	c.blit(t.Image, core.NewRect(pos.X, pos.Y, src.W, src.H), func(wx, wy float64) (int, int) {
		return b.Min.X + int(math.Floor(src.X+wx-pos.X)), b.Min.Y + int(math.Floor(src.Y+wy-pos.Y))
	})
}

// DrawScaledTexture draws the whole of tex at pos, scaled uniformly.
func (c *Canvas) DrawScaledTexture(tex runner.Texture, pos core.Vec2, scale float64) {
	t, ok := tex.(*assets.Texture)
	if !ok || t.Image == nil || scale <= 0 {
		return
	}
	dst := core.NewRect(pos.X, pos.Y, float64(t.Width())*scale, float64(t.Height())*scale)
	b := t.Image.Bounds()
	c.blit(t.Image, dst, func(wx, wy float64) (int, int) {
		return b.Min.X + int(math.Floor((wx-pos.X)/scale)), b.Min.Y + int(math.Floor((wy-pos.Y)/scale))
	})
}

// DrawText draws text at the cell under (x, y). Terminal cells have one
// font size, so size is ignored.
func (c *Canvas) DrawText(text string, x, y, size int, color core.Color) {
	c.screen.DrawText(int(float64(x)*c.sx), int(float64(y)*c.sy), text, color)
}

// blit fills every cell whose centre lies inside dst with the pixel that
// texel maps the centre to.
func (c *Canvas) blit(img image.Image, dst core.Rect, texel func(wx, wy float64) (int, int)) {
	if dst.W <= 0 || dst.H <= 0 || c.sx <= 0 || c.sy <= 0 {
		return
	}
	x0 := max(0, int(math.Floor(dst.X*c.sx)))
	x1 := min(c.screen.Width(), int(math.Ceil(dst.Right()*c.sx)))
	y0 := max(0, int(math.Floor(dst.Y*c.sy)))
	y1 := min(c.screen.Height(), int(math.Ceil(dst.Bottom()*c.sy)))
	bounds := img.Bounds()

	for cy := y0; cy < y1; cy++ {
		wy := (float64(cy) + 0.5) / c.sy
		for cx := x0; cx < x1; cx++ {
			wx := (float64(cx) + 0.5) / c.sx
			if !dst.Contains(wx, wy) {
				continue
			}
			px, py := texel(wx, wy)
			if !image.Pt(px, py).In(bounds) {
				continue
			}
			cell, ok := sampleCell(img, px, py)
			if ok {
				c.screen.SetCell(cx, cy, cell)
			}
		}
	}
}

// sampleCell converts one pixel to a glyph. Transparent pixels report false.
func sampleCell(img image.Image, x, y int) (core.Cell, bool) {
	r, g, b, a := img.At(x, y).RGBA()
	if a < alphaCutoff {
		return core.Cell{}, false
	}
	// Un-premultiply to 8 bits.
	r8 := uint8(r * 0xff / a)
	g8 := uint8(g * 0xff / a)
	b8 := uint8(b * 0xff / a)
	return core.Cell{Rune: glyphFor(r8, g8, b8), Color: nearestColor(r8, g8, b8)}, true
}

// glyphFor picks a ramp glyph by perceived luminance.
func glyphFor(r, g, b uint8) rune {
	lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	i := int(lum / 256 * float64(len(glyphRamp)))
	return glyphRamp[core.Clamp(i, 0, len(glyphRamp)-1)]
}

// nearestColor snaps an RGB triple to the closest palette color.
func nearestColor(r, g, b uint8) core.Color {
	best := palette[0]
	bestDist := math.MaxInt
	for _, c := range palette {
		pr, pg, pb := c.RGB()
		dr := int(r) - int(pr)
		dg := int(g) - int(pg)
		db := int(b) - int(pb)
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// Render returns the screen as styled text. Runs of cells with the same
// color share one escape sequence.
func (c *Canvas) Render() string {
	s := c.screen
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(c.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

// style returns the cached foreground style for color. Cells use the same
// RGB values the window backend draws with.
func (c *Canvas) style(color core.Color) lipgloss.Style {
	if st, ok := c.styles[color]; ok {
		return st
	}
	st := c.renderer.NewStyle()
	if color != core.ColorDefault {
		r, g, b := color.RGB()
		st = st.Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)))
	}
	c.styles[color] = st
	return st
}

var _ runner.Canvas = (*Canvas)(nil)
