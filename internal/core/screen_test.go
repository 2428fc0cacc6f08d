package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())

	for y := 0; y < s.Height(); y++ {
		require.Equal(t, strings.Repeat(" ", 80), s.Row(y), "new screen should be filled with spaces")
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Color: ColorRed})
	assert.Equal(t, Cell{Rune: 'X', Color: ColorRed}, s.GetCell(5, 5))

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ColorDefault, s.GetCell(100, 0).Color)
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			s.SetCell(x, y, Cell{Rune: '#', Color: ColorBlue})
		}
	}

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, Cell{Rune: ' ', Color: ColorDefault}, s.GetCell(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorBlue)

	for i, ch := range "Hello" {
		assert.Equal(t, Cell{Rune: ch, Color: ColorBlue}, s.GetCell(2+i, 1))
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello", ColorDefault)
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(0, 0, "░▒▓", ColorDefault)
	assert.Equal(t, "░▒▓  ", s.Row(0), "multibyte runes occupy one cell each")
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorRed)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorBlue)

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"), "content preserved, row 0 = %q", s.Row(0))

	s.Resize(15, 8)
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"), "content preserved after enlarging, row 0 = %q", s.Row(0))
	assert.Len(t, s.Row(7), 15)
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	assert.Equal(t, "          ", s.Row(-1))
}
