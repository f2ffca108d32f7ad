package core

// Color is the foreground color of a screen cell.
// The platform layer maps these to ANSI 256-color codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorYellow
	ColorOrange
	ColorGreen
	ColorBrightGreen
	ColorBrown
	ColorCyan
	ColorBrightWhite
	ColorRed
	ColorGray
)
