package core

// Color is a foreground color for a screen cell. The palette holds only
// what the board, the sprites and the scoreboard draw with.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorBrightRed
	ColorBrightMagenta
	ColorOrange
	ColorGray
)

// ansiCodes are the 256-color codes of the palette.
var ansiCodes = [...]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorBlue:          "4",
	ColorBrightRed:     "9",
	ColorBrightMagenta: "13",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// ANSI returns the terminal color code, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

// Palette returns every color, default first.
func Palette() []Color {
	return []Color{ColorDefault, ColorRed, ColorGreen, ColorBlue, ColorBrightRed, ColorBrightMagenta, ColorOrange, ColorGray}
}
