package component

import "github.com/lixenwraith/tachyon/core"

// Text is a UI string hung from a screen anchor. The UI text system turns
// it into one drawn character entity per cell each frame.
type Text struct {
	Value         string
	Anchor        core.Anchor
	Justification core.Alignment
	Offset        core.IntCoords2d
	Foreground    core.Rgb
}

// TerminalTextCharacter marks an entity as a drawn UI character so the UI
// text system can wipe the previous frame's layout before drawing the
// next.
type TerminalTextCharacter struct{}
