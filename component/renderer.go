package component

import "github.com/lixenwraith/tachyon/core"

// TerminalRenderer makes an entity drawable: one display rune with colors,
// stacked by layer when entities share a cell.
type TerminalRenderer struct {
	Display    rune
	Layer      core.Layer
	Foreground core.Rgb
	Background core.Rgb

	// Opaque backgrounds overwrite the cell behind them; transparent ones
	// let the layer below show through.
	OpaqueBackground bool
}
