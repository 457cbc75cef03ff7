package engine

import "github.com/lixenwraith/tachyon/core"

// Phase is a fixed stage of the frame loop. Init runs once at startup,
// Cleanup once at shutdown; the three update phases run every frame in
// declaration order.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseBeforeUpdate
	PhaseUpdate
	PhaseAfterUpdate
	PhaseCleanup
)

// FramePhases lists the phases executed each frame, in order.
var FramePhases = []Phase{PhaseBeforeUpdate, PhaseUpdate, PhaseAfterUpdate}

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseBeforeUpdate:
		return "before-update"
	case PhaseUpdate:
		return "update"
	case PhaseAfterUpdate:
		return "after-update"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// Operator is a system's logic: one result list per declared query, in
// declaration order, plus the extra-args for the current invocation.
// Operators read query views and issue commands; they never mutate the
// store directly.
type Operator func(results []ResultList, args *Args)

// System is a named, prioritized unit of work bound to its queries.
// Immutable once registered; the scheduler holds it for the process
// lifetime.
type System struct {
	name     string
	priority core.Priority
	queries  []*Query
	operate  Operator

	// registration order, set by the scheduler; breaks priority ties
	seq int
}

// NewSystem builds a system with default priority.
func NewSystem(queries []*Query, op Operator) *System {
	return NewSystemWithPriority(core.PriorityDefault, queries, op)
}

// NewSystemWithPriority builds a system that runs at the given priority
// within its phase. Lower runs first.
func NewSystemWithPriority(priority core.Priority, queries []*Query, op Operator) *System {
	return &System{
		priority: priority,
		queries:  queries,
		operate:  op,
	}
}

// Named attaches a diagnostic label used in scheduler logs. Returns the
// receiver for chaining at registration.
func (s *System) Named(name string) *System {
	s.name = name
	return s
}

func (s *System) Name() string            { return s.name }
func (s *System) Priority() core.Priority { return s.priority }
func (s *System) Queries() []*Query       { return s.queries }

// PhasedSystem pairs a system with the phase it runs in.
type PhasedSystem struct {
	Phase  Phase
	System *System
}

// SystemsGenerator is the registration interface collaborators implement:
// a bundle of phase/system pairs the scheduler merges into its phase table
// at startup. The built-in renderer, collision, UI text, and analysis
// generators all use this path.
type SystemsGenerator interface {
	Generate() []PhasedSystem
}
