package system

import (
	"testing"

	"github.com/lixenwraith/tachyon/component"
	"github.com/lixenwraith/tachyon/core"
	"github.com/lixenwraith/tachyon/engine"
)

func renderables(store *engine.Store) engine.ResultList {
	q := engine.Has[component.TerminalTransform](
		engine.Has[component.TerminalRenderer](engine.NewQuery()))
	return store.Query(q)
}

func spawnGlyph(store *engine.Store, pos core.IntCoords2d, display rune, layer core.Layer) core.Entity {
	return store.SpawnEntity(
		&component.TerminalRenderer{Display: display, Layer: layer, Foreground: core.RgbWhite},
		&component.TerminalTransform{Coords: pos},
	)
}

func TestComposeFrameProjection(t *testing.T) {
	store := engine.NewStore()
	spawnGlyph(store, core.IntCoords2d{X: 2, Y: 1}, '@', core.LayerBase)
	spawnGlyph(store, core.IntCoords2d{X: 99, Y: 99}, '?', core.LayerBase)

	fov := core.Dimensions2d{Width: 10, Height: 5}
	frame := composeFrame(core.IntCoords2dZero(), fov, renderables(store))

	cell := frame.At(core.IntCoords2d{X: 2, Y: 1})
	if cell.display != '@' || !cell.set {
		t.Errorf("expected '@' at 2,1, got %q set=%v", cell.display, cell.set)
	}
	if got := frame.At(core.IntCoords2d{X: 0, Y: 0}); got.set {
		t.Error("empty cell should stay unset")
	}
}

func TestComposeFrameCameraOffset(t *testing.T) {
	store := engine.NewStore()
	spawnGlyph(store, core.IntCoords2d{X: 12, Y: 7}, '@', core.LayerBase)

	fov := core.Dimensions2d{Width: 10, Height: 5}
	frame := composeFrame(core.IntCoords2d{X: 10, Y: 5}, fov, renderables(store))

	if got := frame.At(core.IntCoords2d{X: 2, Y: 2}); got.display != '@' {
		t.Errorf("camera at 10,5 should place the glyph at 2,2, got %q", got.display)
	}
}

func TestComposeFrameLayerOrder(t *testing.T) {
	store := engine.NewStore()
	at := core.IntCoords2d{X: 1, Y: 1}
	spawnGlyph(store, at, 'a', core.LayerBase.Above())
	spawnGlyph(store, at, 'b', core.LayerBase)

	fov := core.Dimensions2d{Width: 3, Height: 3}
	frame := composeFrame(core.IntCoords2dZero(), fov, renderables(store))

	if got := frame.At(at).display; got != 'a' {
		t.Errorf("higher layer should win regardless of draw order, got %q", got)
	}
}

func TestComposeFrameSameLayerLaterEntityWins(t *testing.T) {
	store := engine.NewStore()
	at := core.IntCoords2d{X: 0, Y: 0}
	spawnGlyph(store, at, 'a', core.LayerBase)
	spawnGlyph(store, at, 'b', core.LayerBase)

	fov := core.Dimensions2d{Width: 1, Height: 1}
	frame := composeFrame(core.IntCoords2dZero(), fov, renderables(store))

	if got := frame.At(at).display; got != 'b' {
		t.Errorf("within a layer the later entity draws last, got %q", got)
	}
}

func TestComposeFrameTransparentBackground(t *testing.T) {
	store := engine.NewStore()
	at := core.IntCoords2d{X: 0, Y: 0}
	store.SpawnEntity(
		&component.TerminalRenderer{
			Display:          '#',
			Layer:            core.LayerBase,
			Background:       core.RgbBlue,
			OpaqueBackground: true,
		},
		&component.TerminalTransform{Coords: at},
	)
	store.SpawnEntity(
		&component.TerminalRenderer{
			Display:    '@',
			Layer:      core.LayerBase.Above(),
			Background: core.RgbRed,
			// transparent: the blue floor should show through
		},
		&component.TerminalTransform{Coords: at},
	)

	fov := core.Dimensions2d{Width: 1, Height: 1}
	frame := composeFrame(core.IntCoords2dZero(), fov, renderables(store))

	cell := frame.At(at)
	if cell.display != '@' {
		t.Fatalf("expected foreground glyph to win, got %q", cell.display)
	}
	if cell.bg != core.RgbBlue {
		t.Errorf("transparent background should keep the underlying color, got %+v", cell.bg)
	}
}
