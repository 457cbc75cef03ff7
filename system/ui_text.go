package system

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tachyon/component"
	"github.com/lixenwraith/tachyon/core"
	"github.com/lixenwraith/tachyon/engine"
)

// UITextGenerator lays Text components out against the screen edges. Each
// frame it destroys last frame's character entities and respawns one
// renderable entity per cell of every Text, so text always reflects the
// current value and screen size. Characters draw at the furthest
// foreground layer, over everything the world renderer produced.
type UITextGenerator struct {
	resolution core.Dimensions2d
}

func NewUITextGenerator(resolution core.Dimensions2d) *UITextGenerator {
	return &UITextGenerator{resolution: resolution}
}

func (g *UITextGenerator) Generate() []engine.PhasedSystem {
	texts := engine.Has[component.Text](engine.NewQuery())
	drawn := engine.Has[component.TerminalTextCharacter](engine.NewQuery())

	return []engine.PhasedSystem{
		{
			Phase: engine.PhaseAfterUpdate,
			System: engine.NewSystemWithPriority(core.PriorityLowest.Higher(),
				[]*engine.Query{texts, drawn}, g.relayout).Named("ui-text-layout"),
		},
	}
}

func (g *UITextGenerator) relayout(results []engine.ResultList, args *engine.Args) {
	texts, drawn := results[0], results[1]

	for _, r := range drawn {
		args.Commands().Issue(engine.DestroyEntity{Entity: r.Entity()})
	}

	for _, r := range texts {
		text := engine.Get[component.Text](r)
		for _, pc := range layoutText(text, g.resolution) {
			args.Commands().Issue(engine.AddEntity{Components: []engine.Component{
				&component.TerminalTextCharacter{},
				&component.TerminalTransform{Coords: pc.pos},
				&component.TerminalRenderer{
					Display:    pc.ch,
					Layer:      core.LayerFurthestForeground,
					Foreground: text.Foreground,
				},
			}})
		}
	}
}

// placedChar is one cell of laid-out text.
type placedChar struct {
	pos core.IntCoords2d
	ch  rune
}

// layoutText positions a text's runes on screen: the anchor picks the
// reference point, justification shifts the string relative to it, Offset
// nudges the final result. Wide runes advance the cursor by their display
// width.
func layoutText(text *component.Text, resolution core.Dimensions2d) []placedChar {
	origin := anchorOrigin(text.Anchor, resolution)

	switch text.Justification {
	case core.AlignMiddle:
		origin.X -= runewidth.StringWidth(text.Value) / 2
	case core.AlignRight:
		origin.X -= runewidth.StringWidth(text.Value) - 1
	}
	origin = origin.Plus(text.Offset)

	var placed []placedChar
	x := origin.X
	for _, ch := range text.Value {
		placed = append(placed, placedChar{
			pos: core.IntCoords2d{X: x, Y: origin.Y},
			ch:  ch,
		})
		x += runewidth.RuneWidth(ch)
	}
	return placed
}

func anchorOrigin(anchor core.Anchor, res core.Dimensions2d) core.IntCoords2d {
	right, bottom := res.Width-1, res.Height-1
	midX, midY := res.Width/2, res.Height/2

	switch anchor {
	case core.AnchorMiddleTop:
		return core.IntCoords2d{X: midX}
	case core.AnchorTopRight:
		return core.IntCoords2d{X: right}
	case core.AnchorMiddleRight:
		return core.IntCoords2d{X: right, Y: midY}
	case core.AnchorBottomRight:
		return core.IntCoords2d{X: right, Y: bottom}
	case core.AnchorMiddleBottom:
		return core.IntCoords2d{X: midX, Y: bottom}
	case core.AnchorBottomLeft:
		return core.IntCoords2d{Y: bottom}
	case core.AnchorMiddleLeft:
		return core.IntCoords2d{Y: midY}
	default: // AnchorTopLeft
		return core.IntCoords2d{}
	}
}
