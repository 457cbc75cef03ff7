package engine

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/tachyon/input"
)

// Scheduler owns the store and drives the frame loop: within a phase it
// runs systems in ascending priority order (registration order breaks
// ties), resolving every declared query freshly against current store
// state; after the phase's systems return it drains the command queue and
// applies the mutations. Structural changes therefore never happen while
// results are being iterated.
//
// Execution is single-threaded and cooperative; systems never suspend.
type Scheduler struct {
	store    *Store
	phases   map[Phase][]*System
	seq      int
	commands *CommandQueue
	services map[string]any
	in       *input.Input
	delta    time.Duration
	quitting bool
	log      *zap.Logger
}

// NewScheduler builds a scheduler around a store. A nil logger disables
// scheduler logging.
func NewScheduler(store *Store, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	sc := &Scheduler{
		store:    store,
		phases:   make(map[Phase][]*System),
		commands: NewCommandQueue(),
		services: make(map[string]any),
		in:       input.New(),
		log:      log,
	}
	sc.services[ServiceKeyCommands] = sc.commands
	sc.services[ServiceKeyInput] = sc.in
	sc.services[ServiceKeyTime] = &sc.delta
	return sc
}

// Store exposes the scheduler-owned store. Host code uses it for setup and
// inspection; systems must go through queries and commands instead.
func (sc *Scheduler) Store() *Store { return sc.store }

// Input returns the key state snapshot the scheduler passes to systems.
// The host's event pump feeds it once per frame.
func (sc *Scheduler) Input() *input.Input { return sc.in }

// Quitting reports whether a Quit command has been applied.
func (sc *Scheduler) Quitting() bool { return sc.quitting }

// Register adds a system to a phase. Systems registered with equal
// priority run in registration order.
func (sc *Scheduler) Register(phase Phase, sys *System) {
	sys.seq = sc.seq
	sc.seq++
	systems := append(sc.phases[phase], sys)
	sort.SliceStable(systems, func(i, j int) bool {
		if systems[i].priority != systems[j].priority {
			return systems[i].priority < systems[j].priority
		}
		return systems[i].seq < systems[j].seq
	})
	sc.phases[phase] = systems

	sc.log.Debug("system registered",
		zap.Stringer("phase", phase),
		zap.Uint64("priority", uint64(sys.priority)),
		zap.String("name", sys.name),
	)
}

// Merge registers every phase/system pair a generator produces.
func (sc *Scheduler) Merge(gen SystemsGenerator) {
	for _, ps := range gen.Generate() {
		sc.Register(ps.Phase, ps.System)
	}
}

// Inject registers a named service retrievable from the extra-args bag.
// Keys under "tachyon." are reserved for the engine; injecting one is a
// wiring bug and panics.
func (sc *Scheduler) Inject(key string, service any) {
	if isReservedKey(key) {
		panic(fmt.Sprintf("service key %q is reserved", key))
	}
	sc.services[key] = service
}

// RunPhase executes one phase: every registered system in priority order,
// then command application.
func (sc *Scheduler) RunPhase(phase Phase) {
	start := time.Now()
	args := &Args{
		commands: sc.commands,
		delta:    sc.delta,
		input:    sc.in,
		services: sc.services,
	}
	for _, sys := range sc.phases[phase] {
		results := make([]ResultList, len(sys.queries))
		for i, q := range sys.queries {
			results[i] = sc.store.Query(q)
		}
		sys.operate(results, args)
	}
	applied := sc.applyCommands()

	sc.log.Debug("phase complete",
		zap.Stringer("phase", phase),
		zap.Int("systems", len(sc.phases[phase])),
		zap.Int("commands", applied),
		zap.Duration("took", time.Since(start)),
	)
}

// RunFrame executes the three per-frame phases with the given frame delta.
func (sc *Scheduler) RunFrame(delta time.Duration) {
	sc.delta = delta
	for _, phase := range FramePhases {
		sc.RunPhase(phase)
	}
}

// Run drives the whole lifecycle: the init phase once, then frames on a
// fixed interval until a Quit command is applied, then the cleanup phase.
// onFrameStart, when non-nil, runs before each frame's phases; the host
// uses it to pump terminal events into the input snapshot.
func (sc *Scheduler) Run(interval time.Duration, onFrameStart func()) {
	sc.delta = 0
	sc.RunPhase(PhaseInit)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()

	for !sc.quitting {
		<-ticker.C
		now := time.Now()
		delta := now.Sub(last)
		last = now

		if onFrameStart != nil {
			onFrameStart()
		}
		sc.RunFrame(delta)
	}

	sc.RunPhase(PhaseCleanup)
}

// applyCommands drains the queue and applies each command in issue order.
// Application is sequential and total: a destroyed entity stays destroyed,
// and later commands against it fall through to the store's idempotent
// no-ops.
func (sc *Scheduler) applyCommands() int {
	drained := sc.commands.Drain()
	for _, cmd := range drained {
		switch c := cmd.(type) {
		case AddEntity:
			sc.store.SpawnEntity(c.Components...)
		case DestroyEntity:
			sc.store.RemoveEntity(c.Entity)
		case AddComponents:
			for _, comp := range c.Components {
				sc.store.AddComponent(c.Entity, comp)
			}
		case RemoveComponents:
			for _, name := range c.Names {
				sc.store.RemoveComponent(c.Entity, name)
			}
		case ClearEntities:
			sc.store.Clear()
		case Quit:
			if !sc.quitting {
				sc.quitting = true
				sc.log.Info("quit command received")
			}
		}
	}
	return len(drained)
}
