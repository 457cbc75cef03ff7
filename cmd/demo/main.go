// Command demo is a small coin-collecting game exercising the engine:
// input-driven movement, collision handling, audio cues, UI text, and the
// engine stats overlay.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tachyon"
	"github.com/lixenwraith/tachyon/audio"
	"github.com/lixenwraith/tachyon/component"
	"github.com/lixenwraith/tachyon/config"
	"github.com/lixenwraith/tachyon/core"
	"github.com/lixenwraith/tachyon/engine"
	"github.com/lixenwraith/tachyon/input"
)

const coinCount = 12

func main() {
	configPath := flag.String("config", "tachyon.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	game, err := tachyon.NewGame(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	game.Merge(&coinGame{bounds: core.Dimensions2d{Width: 60, Height: 20}})

	if err := game.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// playerTag marks the player entity.
type playerTag struct{}

// coinTag marks collectible coins.
type coinTag struct{}

// coinGame generates the demo's systems: collect every coin, q to quit.
type coinGame struct {
	bounds core.Dimensions2d
	score  int
}

func (g *coinGame) Generate() []engine.PhasedSystem {
	players := engine.Has[component.TerminalTransform](
		engine.Has[playerTag](engine.NewQuery()))
	collisions := engine.Has[component.TerminalCollision](engine.NewQuery())
	coins := engine.Has[coinTag](engine.NewQuery())
	hud := engine.Has[component.Text](
		engine.HasWhere(engine.NewQuery(), func(id *component.Identity) bool {
			return id.ID == "score"
		}))
	stats := engine.Has[component.EngineStats](engine.NewQuery())

	return []engine.PhasedSystem{
		{Phase: engine.PhaseInit, System: engine.NewSystem(nil, g.spawnWorld).Named("demo-spawn")},
		{Phase: engine.PhaseUpdate, System: engine.NewSystem([]*engine.Query{players}, g.move).Named("demo-move")},
		{Phase: engine.PhaseUpdate, System: engine.NewSystem([]*engine.Query{collisions, coins}, g.collect).Named("demo-collect")},
		{Phase: engine.PhaseUpdate, System: engine.NewSystem([]*engine.Query{hud, stats}, g.updateHud).Named("demo-hud")},
	}
}

func (g *coinGame) spawnWorld(_ []engine.ResultList, args *engine.Args) {
	args.Commands().Issue(engine.AddEntity{Components: []engine.Component{
		&playerTag{},
		&component.TerminalTransform{Coords: core.IntCoords2d{X: g.bounds.Width / 2, Y: g.bounds.Height / 2}},
		&component.TerminalRenderer{Display: '@', Layer: core.LayerBase.Above(), Foreground: core.RgbWhite},
		&component.TerminalCollider{IsActive: true},
	}})

	for i := 0; i < coinCount; i++ {
		args.Commands().Issue(engine.AddEntity{Components: []engine.Component{
			&coinTag{},
			&component.TerminalTransform{Coords: core.IntCoords2d{
				X: rand.Intn(g.bounds.Width),
				Y: rand.Intn(g.bounds.Height),
			}},
			&component.TerminalRenderer{Display: '$', Layer: core.LayerBase, Foreground: core.RgbYellow},
			&component.TerminalCollider{IsActive: true},
		}})
	}

	args.Commands().Issue(engine.AddEntity{Components: []engine.Component{
		&component.Identity{ID: "score", Name: "score readout"},
		&component.Text{
			Value:      "score 0",
			Anchor:     core.AnchorMiddleTop,
			Foreground: core.RgbGreen,
		},
	}})
}

func (g *coinGame) move(results []engine.ResultList, args *engine.Args) {
	in := args.Input()

	if in.IsKeyDown(input.CodeRune('q')) || in.IsKeyDown(input.CodeKey(tcell.KeyCtrlC)) {
		args.Commands().Issue(engine.Quit{})
		return
	}

	var step core.IntCoords2d
	switch {
	case in.IsKeyPressed(input.CodeKey(tcell.KeyLeft)) || in.IsKeyPressed(input.CodeRune('h')):
		step.X = -1
	case in.IsKeyPressed(input.CodeKey(tcell.KeyRight)) || in.IsKeyPressed(input.CodeRune('l')):
		step.X = 1
	case in.IsKeyPressed(input.CodeKey(tcell.KeyUp)) || in.IsKeyPressed(input.CodeRune('k')):
		step.Y = -1
	case in.IsKeyPressed(input.CodeKey(tcell.KeyDown)) || in.IsKeyPressed(input.CodeRune('j')):
		step.Y = 1
	default:
		return
	}

	for _, r := range results[0] {
		pos := engine.Get[component.TerminalTransform](r)
		if next := pos.Coords.Plus(step); g.bounds.Contains(next) {
			pos.Coords = next
		}
	}
}

func (g *coinGame) collect(results []engine.ResultList, args *engine.Args) {
	collisions, coins := results[0], results[1]
	if len(collisions) == 0 {
		return
	}

	coinSet := make(map[core.Entity]bool, len(coins))
	for _, r := range coins {
		coinSet[r.Entity()] = true
	}

	for _, r := range collisions {
		for _, body := range engine.Get[component.TerminalCollision](r).Bodies {
			if !coinSet[body.Entity] {
				continue
			}
			args.Commands().Issue(engine.DestroyEntity{Entity: body.Entity})
			delete(coinSet, body.Entity)
			g.score++
			if player, ok := engine.ServiceOpt[*audio.Player](args, audio.ServiceKey); ok {
				player.PlayTone(880, 80*time.Millisecond)
			}
		}
	}
}

func (g *coinGame) updateHud(results []engine.ResultList, _ *engine.Args) {
	hud, stats := results[0], results[1]
	if len(hud) == 0 {
		return
	}
	text := engine.Only[component.Text](hud)
	switch {
	case g.score == coinCount:
		text.Value = "all coins collected, q to quit"
	case len(stats) == 1:
		text.Value = fmt.Sprintf("score %d | %d fps", g.score, engine.Only[component.EngineStats](stats).FPS)
	default:
		text.Value = fmt.Sprintf("score %d", g.score)
	}
}
