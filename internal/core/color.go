package core

// Color represents a foreground color for text and screen cells.
// Uses ANSI 256-color codes for terminal compatibility; the window backend
// maps each value to an RGBA.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

// RGB returns an approximate 8-bit RGB triple for the color.
// ColorDefault maps to black, matching the window backend's text default.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 230, 41, 55
	case ColorGreen:
		return 0, 158, 47
	case ColorYellow:
		return 253, 249, 0
	case ColorBlue:
		return 0, 121, 241
	case ColorMagenta:
		return 255, 0, 255
	case ColorCyan:
		return 0, 205, 205
	case ColorWhite:
		return 229, 229, 229
	case ColorBrightRed:
		return 255, 85, 85
	case ColorBrightGreen:
		return 85, 255, 85
	case ColorBrightYellow:
		return 255, 255, 85
	case ColorBrightBlue:
		return 85, 85, 255
	case ColorBrightMagenta:
		return 255, 85, 255
	case ColorBrightCyan:
		return 85, 255, 255
	case ColorBrightWhite:
		return 255, 255, 255
	case ColorOrange:
		return 255, 161, 0
	case ColorGray:
		return 130, 130, 130
	default:
		return 0, 0, 0
	}
}
