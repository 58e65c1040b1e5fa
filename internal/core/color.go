package core

// Color is a foreground color for a screen cell. The platform layer maps
// each value to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
)

var colorNames = [...]string{
	ColorDefault:      "default",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorYellow:       "yellow",
	ColorBlue:         "blue",
	ColorMagenta:      "magenta",
	ColorCyan:         "cyan",
	ColorWhite:        "white",
	ColorGray:         "gray",
	ColorOrange:       "orange",
	ColorBrightRed:    "bright-red",
	ColorBrightGreen:  "bright-green",
	ColorBrightYellow: "bright-yellow",
	ColorBrightCyan:   "bright-cyan",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
