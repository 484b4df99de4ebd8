package logscreen

import "image/color"

// Color identifies one of the sixteen ANSI palette colors.
// The zero value ColorNone means no color is set and the terminal default applies.
type Color uint8

const (
	ColorNone Color = iota

	// Standard colors (SGR 30-37 / 40-47)
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	// Bright colors (SGR 90-97 / 100-107)
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

var colorNames = [...]string{
	ColorBlack:         "black",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightBlack:   "black",
	ColorBrightRed:     "red",
	ColorBrightGreen:   "green",
	ColorBrightYellow:  "yellow",
	ColorBrightBlue:    "blue",
	ColorBrightMagenta: "magenta",
	ColorBrightCyan:    "cyan",
	ColorBrightWhite:   "white",
}

// Name returns the base color name (black, red, ..., white) in lowercase.
// Bright variants share the name of their standard counterpart.
// Returns empty string for ColorNone.
func (c Color) Name() string {
	if c == ColorNone || int(c) >= len(colorNames) {
		return ""
	}
	return colorNames[c]
}

// IsBright returns true for the eight bright palette colors.
func (c Color) IsBright() bool {
	return c >= ColorBrightBlack && c <= ColorBrightWhite
}

// Bright returns the bright variant of a standard color.
// Bright colors and ColorNone are returned unchanged.
func (c Color) Bright() Color {
	if c >= ColorBlack && c <= ColorWhite {
		return c + (ColorBrightBlack - ColorBlack)
	}
	return c
}

// Palette maps the sixteen ANSI colors to RGBA values used by the image renderer.
// Index 0 is black; indexes 8-15 are the bright variants.
var Palette = [16]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}
