package core

// Color is the foreground of a screen cell. The set covers the tile ramp
// from 2 up to the win tile plus the chrome around the board.
type Color uint8

const (
	ColorDefault Color = iota // terminal foreground, no styling
	ColorGray                 // empty cells, grid lines
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorYellow
	ColorBrightYellow
	ColorGreen
	ColorBrightGreen
	ColorBrightMagenta // the win tile
	ColorBrightCyan    // beyond the win tile

	numColors
)

var ansiCodes = [numColors]string{
	ColorGray:          "245",
	ColorWhite:         "7",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorRed:           "1",
	ColorBrightRed:     "9",
	ColorYellow:        "3",
	ColorBrightYellow:  "11",
	ColorGreen:         "2",
	ColorBrightGreen:   "10",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
}

// ANSI returns the 256-color code for c, or "" for ColorDefault and
// unknown values.
func (c Color) ANSI() string {
	if c >= numColors {
		return ""
	}
	return ansiCodes[c]
}

// Emphasized reports whether c is drawn bold. Tiles at or above the win
// tile stand out from the rest of the ramp.
func (c Color) Emphasized() bool {
	return c == ColorBrightMagenta || c == ColorBrightCyan
}
