package core

// Color is a palette slot for a cell. Renderers map slots to terminal or
// raster colors.
type Color uint8

// Colors used by the board.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorWhite
	ColorGray
)
