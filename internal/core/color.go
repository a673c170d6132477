package core

// Color is a foreground color for a screen cell.
type Color uint8

// Colors used by the game; the platform maps them to terminal styles.
const (
	ColorDefault Color = iota
	ColorBall
	ColorLeft
	ColorRight
	ColorNet
	ColorText
)
