package core

import "strings"

// Color is a palette entry shared by every surface.
// Terminal surfaces map it to ANSI 256-color codes, the browser to hex.
type Color uint8

// Predefined colors for game elements.
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
	ColorDarkGray
	ColorSky
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright_red",
	ColorBrightGreen:   "bright_green",
	ColorBrightYellow:  "bright_yellow",
	ColorBrightBlue:    "bright_blue",
	ColorBrightMagenta: "bright_magenta",
	ColorBrightCyan:    "bright_cyan",
	ColorBrightWhite:   "bright_white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
	ColorBlack:         "black",
	ColorDarkGray:      "dark_gray",
	ColorSky:           "sky",
}

var colorHex = map[Color]string{
	ColorDefault:       "#ffffff",
	ColorRed:           "#ff0000",
	ColorGreen:         "#00ff00",
	ColorYellow:        "#ffff00",
	ColorBlue:          "#0000ff",
	ColorMagenta:       "#ff00ff",
	ColorCyan:          "#00ffff",
	ColorWhite:         "#ffffff",
	ColorBrightRed:     "#ff5555",
	ColorBrightGreen:   "#55ff55",
	ColorBrightYellow:  "#ffff55",
	ColorBrightBlue:    "#5555ff",
	ColorBrightMagenta: "#ff55ff",
	ColorBrightCyan:    "#55ffff",
	ColorBrightWhite:   "#fafafa",
	ColorOrange:        "#ff8c00",
	ColorGray:          "#666666",
	ColorBlack:         "#000000",
	ColorDarkGray:      "#333333",
	ColorSky:           "#87ceeb",
}

// String returns the palette name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// Hex returns the CSS hex form of the color.
func (c Color) Hex() string {
	if hex, ok := colorHex[c]; ok {
		return hex
	}
	return colorHex[ColorDefault]
}

// ColorByName looks up a color by its palette name (case-insensitive).
func ColorByName(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}
