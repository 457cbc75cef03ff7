package component

import "github.com/lixenwraith/tachyon/core"

// TerminalCamera projects a rectangular window of world space onto the
// screen. Exactly one camera should be main at a time; the renderer draws
// whatever falls inside its field of view, relative to the camera's own
// transform.
type TerminalCamera struct {
	FieldOfView core.Dimensions2d
	IsMain      bool
}
