// Package system holds the engine's built-in system generators: rendering,
// UI text layout, collision detection, and frame analysis. Each is a
// SystemsGenerator the host merges into the scheduler at startup.
package system

import (
	"github.com/lixenwraith/tachyon/component"
	"github.com/lixenwraith/tachyon/core"
	"github.com/lixenwraith/tachyon/engine"
	"github.com/lixenwraith/tachyon/terminal"
)

// RendererOptions configures the draw pass.
type RendererOptions struct {
	// Resolution is the drawable area in cells. The default camera, when
	// spawned, gets this as its field of view.
	Resolution core.Dimensions2d

	// DefaultCamera spawns a main camera at the origin during init so
	// games that never move the view don't have to create one.
	DefaultCamera bool
}

// frameCell is one composed cell of a frame before it reaches the screen.
type frameCell struct {
	display rune
	fg, bg  core.Rgb
	layer   core.Layer
	set     bool
}

// RendererGenerator produces the draw systems: camera bootstrap at init,
// the composition/diff/draw pass at the very end of after-update, and
// terminal release at cleanup. It keeps the previous frame to only push
// changed cells to the terminal.
type RendererGenerator struct {
	screen *terminal.Screen
	opts   RendererOptions
	prev   *core.Matrix[frameCell]
}

func NewRendererGenerator(screen *terminal.Screen, opts RendererOptions) *RendererGenerator {
	return &RendererGenerator{screen: screen, opts: opts}
}

func (g *RendererGenerator) Generate() []engine.PhasedSystem {
	renderables := engine.Has[component.TerminalTransform](
		engine.Has[component.TerminalRenderer](engine.NewQuery()))
	cameras := engine.Has[component.TerminalTransform](
		engine.HasWhere(engine.NewQuery(), func(c *component.TerminalCamera) bool { return c.IsMain }))

	return []engine.PhasedSystem{
		{
			Phase: engine.PhaseInit,
			System: engine.NewSystemWithPriority(core.PriorityHighest, nil,
				func(_ []engine.ResultList, args *engine.Args) {
					if g.opts.DefaultCamera {
						args.Commands().Issue(engine.AddEntity{Components: []engine.Component{
							&component.TerminalCamera{FieldOfView: g.opts.Resolution, IsMain: true},
							&component.TerminalTransform{},
						}})
					}
				}).Named("renderer-init"),
		},
		{
			Phase: engine.PhaseAfterUpdate,
			System: engine.NewSystemWithPriority(core.PriorityLowest,
				[]*engine.Query{renderables, cameras}, g.draw).Named("renderer-draw"),
		},
		{
			Phase: engine.PhaseCleanup,
			System: engine.NewSystemWithPriority(core.PriorityLowest, nil,
				func(_ []engine.ResultList, _ *engine.Args) {
					g.screen.Fini()
				}).Named("renderer-cleanup"),
		},
	}
}

func (g *RendererGenerator) draw(results []engine.ResultList, _ *engine.Args) {
	renderables, cameras := results[0], results[1]
	if len(cameras) == 0 {
		return // nothing to project through
	}
	// Two main cameras is a wiring bug; Single panics descriptively.
	camPos := engine.Get[component.TerminalTransform](cameras.Single()).Coords
	fov := engine.Get[component.TerminalCamera](cameras.Single()).FieldOfView

	frame := composeFrame(camPos, fov, renderables)

	frame.Each(func(pos core.IntCoords2d, cell *frameCell) {
		if g.prev != nil {
			if old := g.prev.At(pos); old != nil && *old == *cell {
				return
			}
		}
		g.screen.SetCell(pos, cell.display, cell.fg, cell.bg)
	})
	g.screen.Show()
	g.prev = frame
}

// composeFrame projects renderables through the camera into a cell matrix.
// Higher layers draw over lower ones; within a layer the later result wins,
// which is deterministic because results arrive in ascending entity order.
// Transparent backgrounds keep the color of whatever was beneath.
func composeFrame(camPos core.IntCoords2d, fov core.Dimensions2d, renderables engine.ResultList) *core.Matrix[frameCell] {
	frame := core.NewMatrix(fov, frameCell{display: ' ', bg: core.RgbBlack, layer: core.LayerFurthestBackground})

	for _, r := range renderables {
		rend := engine.Get[component.TerminalRenderer](r)
		pos := engine.Get[component.TerminalTransform](r).Coords.Minus(camPos)
		cell := frame.At(pos)
		if cell == nil {
			continue // outside the field of view
		}
		if cell.set && rend.Layer.IsBelow(cell.layer) {
			continue
		}
		bg := cell.bg
		if rend.OpaqueBackground {
			bg = rend.Background
		}
		*cell = frameCell{
			display: rend.Display,
			fg:      rend.Foreground,
			bg:      bg,
			layer:   rend.Layer,
			set:     true,
		}
	}
	return frame
}
