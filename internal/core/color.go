package core

import "image/color"

// Color is a palette entry used by both frontends.
// The terminal maps it to ANSI 256-color codes, the desktop window to RGBA.
type Color uint8

// Palette entries used by the game and its overlays.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorBlue
	ColorWhite
	ColorGray
)

var rgbaPalette = [...]color.RGBA{
	ColorDefault: {0, 0, 0, 0},
	ColorBlack:   {0, 0, 0, 255},
	ColorRed:     {255, 0, 0, 255},
	ColorGreen:   {0, 255, 0, 255},
	ColorBlue:    {0, 0, 255, 255},
	ColorWhite:   {255, 255, 255, 255},
	ColorGray:    {128, 128, 128, 255},
}

// RGBA returns the true-color value of c. Unknown entries are transparent.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(rgbaPalette) {
		return rgbaPalette[ColorDefault]
	}
	return rgbaPalette[c]
}

// ParseColor maps a CSS-style name or short hex code ("#0f0") to a palette entry.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "", "default":
		return ColorDefault, true
	case "black", "#000", "#000000":
		return ColorBlack, true
	case "red", "#f00", "#ff0000":
		return ColorRed, true
	case "green", "#0f0", "#00ff00":
		return ColorGreen, true
	case "blue", "#00f", "#0000ff":
		return ColorBlue, true
	case "white", "#fff", "#ffffff":
		return ColorWhite, true
	case "gray", "grey", "#888", "#808080":
		return ColorGray, true
	}
	return ColorDefault, false
}
