package system

import (
	"testing"

	"github.com/lixenwraith/tachyon/component"
	"github.com/lixenwraith/tachyon/core"
	"github.com/lixenwraith/tachyon/engine"
)

var textRes = core.Dimensions2d{Width: 80, Height: 24}

func TestLayoutTextAnchors(t *testing.T) {
	tests := []struct {
		name   string
		anchor core.Anchor
		want   core.IntCoords2d
	}{
		{"top-left", core.AnchorTopLeft, core.IntCoords2d{X: 0, Y: 0}},
		{"middle-top", core.AnchorMiddleTop, core.IntCoords2d{X: 40, Y: 0}},
		{"top-right", core.AnchorTopRight, core.IntCoords2d{X: 79, Y: 0}},
		{"middle-right", core.AnchorMiddleRight, core.IntCoords2d{X: 79, Y: 12}},
		{"bottom-right", core.AnchorBottomRight, core.IntCoords2d{X: 79, Y: 23}},
		{"middle-bottom", core.AnchorMiddleBottom, core.IntCoords2d{X: 40, Y: 23}},
		{"bottom-left", core.AnchorBottomLeft, core.IntCoords2d{X: 0, Y: 23}},
		{"middle-left", core.AnchorMiddleLeft, core.IntCoords2d{X: 0, Y: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := &component.Text{Value: "x", Anchor: tt.anchor}
			placed := layoutText(text, textRes)
			if len(placed) != 1 {
				t.Fatalf("expected 1 placed char, got %d", len(placed))
			}
			if placed[0].pos != tt.want {
				t.Errorf("anchor %v placed at %+v, want %+v", tt.anchor, placed[0].pos, tt.want)
			}
		})
	}
}

func TestLayoutTextJustification(t *testing.T) {
	base := component.Text{Value: "score", Anchor: core.AnchorMiddleTop}

	left := base
	left.Justification = core.AlignLeft
	if got := layoutText(&left, textRes)[0].pos.X; got != 40 {
		t.Errorf("left justified starts at anchor, got x=%d", got)
	}

	middle := base
	middle.Justification = core.AlignMiddle
	if got := layoutText(&middle, textRes)[0].pos.X; got != 38 {
		t.Errorf("middle justified should start at 38, got %d", got)
	}

	right := base
	right.Justification = core.AlignRight
	placed := layoutText(&right, textRes)
	if got := placed[len(placed)-1].pos.X; got != 40 {
		t.Errorf("right justified should end at the anchor, got %d", got)
	}
}

func TestLayoutTextOffsetAndWideRunes(t *testing.T) {
	text := &component.Text{
		Value:  "a界b",
		Anchor: core.AnchorTopLeft,
		Offset: core.IntCoords2d{X: 2, Y: 1},
	}
	placed := layoutText(text, textRes)
	if len(placed) != 3 {
		t.Fatalf("expected 3 placed chars, got %d", len(placed))
	}
	wantX := []int{2, 3, 5} // the CJK rune is two cells wide
	for i, p := range placed {
		if p.pos.X != wantX[i] || p.pos.Y != 1 {
			t.Errorf("char %d placed at %+v, want {X:%d Y:1}", i, p.pos, wantX[i])
		}
	}
}

func TestUITextRespawnsEachFrame(t *testing.T) {
	store := engine.NewStore()
	sc := engine.NewScheduler(store, nil)
	sc.Merge(NewUITextGenerator(textRes))

	textEntity := store.SpawnEntity(&component.Text{Value: "hi", Anchor: core.AnchorTopLeft})

	chars := engine.Has[component.TerminalTextCharacter](engine.NewQuery())
	sc.RunPhase(engine.PhaseAfterUpdate)
	if got := len(store.Query(chars)); got != 2 {
		t.Fatalf("expected 2 character entities, got %d", got)
	}

	// Changing the text changes next frame's layout; old chars are wiped.
	engine.Only[component.Text](store.QueryMut(engine.Has[component.Text](engine.NewQuery()))).Value = "bye!"
	sc.RunPhase(engine.PhaseAfterUpdate)
	if got := len(store.Query(chars)); got != 4 {
		t.Errorf("expected 4 character entities after relayout, got %d", got)
	}

	// Destroying the text leaves nothing behind.
	store.RemoveEntity(textEntity)
	sc.RunPhase(engine.PhaseAfterUpdate)
	if got := len(store.Query(chars)); got != 0 {
		t.Errorf("expected no character entities after text removed, got %d", got)
	}
}

func TestUITextCharactersDrawOnTop(t *testing.T) {
	store := engine.NewStore()
	sc := engine.NewScheduler(store, nil)
	sc.Merge(NewUITextGenerator(textRes))

	store.SpawnEntity(&component.Text{Value: "z", Anchor: core.AnchorTopLeft})
	sc.RunPhase(engine.PhaseAfterUpdate)

	renderers := store.Query(engine.Has[component.TerminalRenderer](engine.NewQuery()))
	layer := engine.Only[component.TerminalRenderer](renderers).Layer
	if layer != core.LayerFurthestForeground {
		t.Errorf("text characters should render at the furthest foreground, got layer %d", layer)
	}
}
