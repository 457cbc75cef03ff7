// Package tachyon assembles the engine: configuration, logging, the
// terminal screen, audio, the entity store, and the phase scheduler with
// the built-in system generators, behind one Game builder.
package tachyon

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lixenwraith/tachyon/audio"
	"github.com/lixenwraith/tachyon/config"
	"github.com/lixenwraith/tachyon/core"
	"github.com/lixenwraith/tachyon/engine"
	"github.com/lixenwraith/tachyon/system"
	"github.com/lixenwraith/tachyon/terminal"
)

// Game wires engine parts together and drives the frame loop. Build one
// with NewGame, register game-specific generators and services, then Run.
type Game struct {
	cfg       *config.Config
	log       *zap.Logger
	scheduler *engine.Scheduler
	player    *audio.Player
}

// NewGame builds a game from the given configuration. A nil config uses
// the defaults.
func NewGame(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.Defaults()
	}
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		log:       log,
		scheduler: engine.NewScheduler(engine.NewStore(), log),
	}

	if cfg.Audio.Enabled {
		g.player = audio.NewPlayer()
		g.scheduler.Inject(audio.ServiceKey, g.player)
	}
	return g, nil
}

// Scheduler exposes the underlying scheduler for setup: seeding entities
// through its store, registering one-off systems, inspection in tests.
func (g *Game) Scheduler() *engine.Scheduler { return g.scheduler }

// Merge registers a generator's systems.
func (g *Game) Merge(gen engine.SystemsGenerator) *Game {
	g.scheduler.Merge(gen)
	return g
}

// Inject adds a named service to the extra-args bag.
func (g *Game) Inject(key string, service any) *Game {
	g.scheduler.Inject(key, service)
	return g
}

// Run claims the terminal, registers the built-in generators, and drives
// the scheduler until a Quit command is applied. It blocks for the life
// of the game and restores the terminal on the way out, including on
// panic.
func (g *Game) Run() error {
	defer g.log.Sync()

	mode := terminal.Color256
	if g.cfg.Screen.TrueColor {
		mode = terminal.ColorTrueColor
	}
	screen, err := terminal.NewScreen(mode)
	if err != nil {
		return fmt.Errorf("claim terminal: %w", err)
	}

	core.SetCrashLogger(g.log)
	core.OnCrashReset(func() {
		terminal.EmergencyReset(os.Stderr)
	})
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	resolution := g.resolution(screen)
	g.scheduler.Merge(system.NewRendererGenerator(screen, system.RendererOptions{
		Resolution:    resolution,
		DefaultCamera: g.cfg.Screen.DefaultCamera,
	}))
	g.scheduler.Merge(system.NewUITextGenerator(resolution))
	g.scheduler.Merge(system.NewCollisionsGenerator())
	g.scheduler.Merge(system.NewAnalysisGenerator())

	if g.player != nil {
		if err := g.player.Initialize(); err != nil {
			// Not fatal; the player drops cues and the game runs silent.
			g.log.Warn("audio unavailable", zap.Error(err))
		}
		defer g.player.Cleanup()
	}

	g.log.Info("game starting",
		zap.Int("width", resolution.Width),
		zap.Int("height", resolution.Height),
		zap.Int("frame_rate", g.cfg.Engine.FrameRate),
	)

	g.scheduler.Run(g.cfg.FrameInterval(), func() {
		g.scheduler.Input().Update(screen.DrainEvents())
	})

	g.log.Info("game stopped")
	return nil
}

// resolution caps the configured size to the live terminal; zero config
// dimensions mean use whatever the terminal has.
func (g *Game) resolution(screen *terminal.Screen) core.Dimensions2d {
	size := screen.Size()
	if w := g.cfg.Screen.Width; w > 0 && w < size.Width {
		size.Width = w
	}
	if h := g.cfg.Screen.Height; h > 0 && h < size.Height {
		size.Height = h
	}
	return size
}
