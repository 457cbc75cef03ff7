package component

import "github.com/lixenwraith/tachyon/core"

// TerminalTransform places an entity on the terminal cell grid.
type TerminalTransform struct {
	Coords core.IntCoords2d
}
