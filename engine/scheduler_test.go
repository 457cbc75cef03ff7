package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/tachyon/core"
)

func TestCommandQueueFIFO(t *testing.T) {
	q := NewCommandQueue()
	q.Issue(Quit{})
	q.Issue(ClearEntities{})
	q.Issue(AddEntity{Components: []Component{&compA{}}})

	drained := q.Drain()
	if len(drained) != 3 {
		t.Fatalf("drained %d commands, want 3", len(drained))
	}
	if _, ok := drained[0].(Quit); !ok {
		t.Error("first command should be Quit")
	}
	if _, ok := drained[1].(ClearEntities); !ok {
		t.Error("second command should be ClearEntities")
	}
	if _, ok := drained[2].(AddEntity); !ok {
		t.Error("third command should be AddEntity")
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty after drain, has %d", q.Len())
	}
}

func TestCommandsApplyAtPhaseEnd(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)

	observed := -1
	sc.Register(PhaseUpdate, NewSystem(nil, func(_ []ResultList, args *Args) {
		args.Commands().Issue(AddEntity{Components: []Component{&compA{}}})
		observed = sc.Store().EntityCount() // still pre-phase state
	}))

	sc.RunPhase(PhaseUpdate)
	if observed != 0 {
		t.Errorf("system observed %d entities during the phase, want 0", observed)
	}
	if got := sc.Store().EntityCount(); got != 1 {
		t.Errorf("store has %d entities after phase, want 1", got)
	}
}

// Add-then-destroy of the same new entity within one phase leaves it gone;
// destroy-then-add leaves it alive. Ordering is by issue time, never rolled
// back or reordered.
func TestCommandOrderingAddThenDestroy(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)
	before := core.NextEntity() // the spawned entity will be the next handle

	sc.Register(PhaseUpdate, NewSystem(nil, func(_ []ResultList, args *Args) {
		args.Commands().Issue(AddEntity{Components: []Component{&compA{}}})
		args.Commands().Issue(DestroyEntity{Entity: before + 1})
	}))
	sc.RunPhase(PhaseUpdate)

	if got := sc.Store().EntityCount(); got != 0 {
		t.Errorf("add-then-destroy left %d entities, want 0", got)
	}
}

func TestCommandOrderingDestroyThenAdd(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)
	before := core.NextEntity()

	sc.Register(PhaseUpdate, NewSystem(nil, func(_ []ResultList, args *Args) {
		args.Commands().Issue(DestroyEntity{Entity: before + 1}) // no-op: not yet alive
		args.Commands().Issue(AddEntity{Components: []Component{&compA{}}})
	}))
	sc.RunPhase(PhaseUpdate)

	got := sc.Store().Query(Has[compA](NewQuery()))
	if len(got) != 1 {
		t.Fatalf("destroy-then-add should leave the entity alive with compA, got %d matches", len(got))
	}
}

func TestPriorityOrderAndSharedPrePhaseState(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)

	var order []string
	countSeenByLater := -1

	// Registered out of priority order on purpose.
	sc.Register(PhaseUpdate, NewSystemWithPriority(20, nil, func(_ []ResultList, args *Args) {
		order = append(order, "late")
		// System 10 already issued its command; it must not be applied yet.
		countSeenByLater = sc.Store().EntityCount()
	}))
	sc.Register(PhaseUpdate, NewSystemWithPriority(10, nil, func(_ []ResultList, args *Args) {
		order = append(order, "early")
		args.Commands().Issue(AddEntity{Components: []Component{&compA{}}})
	}))

	sc.RunPhase(PhaseUpdate)

	if len(order) != 2 || order[0] != "early" || order[1] != "late" {
		t.Errorf("execution order = %v", order)
	}
	if countSeenByLater != 0 {
		t.Errorf("priority-20 system saw %d entities, want pre-phase 0", countSeenByLater)
	}
}

func TestPriorityTiesBreakByRegistrationOrder(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)

	var order []string
	for _, label := range []string{"first", "second", "third"} {
		label := label
		sc.Register(PhaseUpdate, NewSystem(nil, func(_ []ResultList, _ *Args) {
			order = append(order, label)
		}))
	}
	sc.RunPhase(PhaseUpdate)

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Errorf("tie-break order = %v", order)
	}
}

func TestQueriesResolveFreshlyEachPhase(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)

	var counts []int
	sc.Register(PhaseUpdate, NewSystem([]*Query{Has[compA](NewQuery())},
		func(results []ResultList, args *Args) {
			counts = append(counts, len(results[0]))
			args.Commands().Issue(AddEntity{Components: []Component{&compA{}}})
		}))

	sc.RunPhase(PhaseUpdate)
	sc.RunPhase(PhaseUpdate)
	sc.RunPhase(PhaseUpdate)

	if len(counts) != 3 || counts[0] != 0 || counts[1] != 1 || counts[2] != 2 {
		t.Errorf("per-phase result counts = %v, want [0 1 2]", counts)
	}
}

func TestFramePhaseOrder(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)

	var order []Phase
	record := func(p Phase) *System {
		return NewSystem(nil, func(_ []ResultList, _ *Args) {
			order = append(order, p)
		})
	}
	sc.Register(PhaseAfterUpdate, record(PhaseAfterUpdate))
	sc.Register(PhaseBeforeUpdate, record(PhaseBeforeUpdate))
	sc.Register(PhaseUpdate, record(PhaseUpdate))

	sc.RunFrame(16 * time.Millisecond)

	want := []Phase{PhaseBeforeUpdate, PhaseUpdate, PhaseAfterUpdate}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("phase order = %v, want %v", order, want)
		}
	}
}

func TestRunLifecycle(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)

	var phases []Phase
	frames := 0
	sc.Register(PhaseInit, NewSystem(nil, func(_ []ResultList, args *Args) {
		phases = append(phases, PhaseInit)
		if args.DeltaTime() != 0 {
			t.Errorf("init phase delta = %v, want 0", args.DeltaTime())
		}
	}))
	sc.Register(PhaseUpdate, NewSystem(nil, func(_ []ResultList, args *Args) {
		frames++
		if frames >= 3 {
			args.Commands().Issue(Quit{})
		}
	}))
	sc.Register(PhaseCleanup, NewSystem(nil, func(_ []ResultList, _ *Args) {
		phases = append(phases, PhaseCleanup)
	}))

	done := make(chan struct{})
	go func() {
		sc.Run(time.Millisecond, nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not quit")
	}

	if frames != 3 {
		t.Errorf("ran %d frames, want 3", frames)
	}
	if len(phases) != 2 || phases[0] != PhaseInit || phases[1] != PhaseCleanup {
		t.Errorf("lifecycle phases = %v", phases)
	}
	if !sc.Quitting() {
		t.Error("scheduler should report quitting")
	}
}

func TestClearEntitiesCommand(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)
	sc.Store().SpawnEntity(&compA{})
	sc.Store().SpawnEntity(&compB{})

	sc.Register(PhaseUpdate, NewSystem(nil, func(_ []ResultList, args *Args) {
		args.Commands().Issue(ClearEntities{})
	}))
	sc.RunPhase(PhaseUpdate)

	if got := sc.Store().EntityCount(); got != 0 {
		t.Errorf("ClearEntities left %d entities", got)
	}
}

func TestComponentCommands(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)
	e := sc.Store().SpawnEntity(&compA{})

	sc.Register(PhaseUpdate, NewSystem(nil, func(_ []ResultList, args *Args) {
		args.Commands().Issue(AddComponents{Entity: e, Components: []Component{&compB{V: 5}}})
		args.Commands().Issue(RemoveComponents{Entity: e, Names: []string{Name[compA]()}})
	}))
	sc.RunPhase(PhaseUpdate)

	if got := sc.Store().Query(Has[compA](NewQuery())); len(got) != 0 {
		t.Error("compA should have been removed")
	}
	if got := Only[compB](sc.Store().Query(Has[compB](NewQuery()))); got.V != 5 {
		t.Errorf("compB not attached, got %+v", got)
	}
}

func TestServiceLookup(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)
	type clock struct{ ticks int }
	sc.Inject("demo.clock", &clock{ticks: 9})

	var got *clock
	sc.Register(PhaseUpdate, NewSystem(nil, func(_ []ResultList, args *Args) {
		got = Service[*clock](args, "demo.clock")
	}))
	sc.RunPhase(PhaseUpdate)

	if got == nil || got.ticks != 9 {
		t.Errorf("service lookup returned %+v", got)
	}
}

func TestServiceMissingKeyPanics(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)
	sc.Register(PhaseUpdate, NewSystem(nil, func(_ []ResultList, args *Args) {
		Service[int](args, "never.injected")
	}))

	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing service key")
		}
	}()
	sc.RunPhase(PhaseUpdate)
}

func TestServiceTypeMismatchPanics(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)
	sc.Inject("demo.value", "a string")
	sc.Register(PhaseUpdate, NewSystem(nil, func(_ []ResultList, args *Args) {
		Service[int](args, "demo.value")
	}))

	defer func() {
		if recover() == nil {
			t.Error("expected panic for wrong-typed service")
		}
	}()
	sc.RunPhase(PhaseUpdate)
}

func TestInjectReservedKeyPanics(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)
	defer func() {
		if recover() == nil {
			t.Error("expected panic injecting under reserved prefix")
		}
	}()
	sc.Inject("tachyon.rogue", 1)
}

func TestReservedKeysAreReachable(t *testing.T) {
	sc := NewScheduler(NewStore(), nil)

	var ok bool
	sc.Register(PhaseUpdate, NewSystem(nil, func(_ []ResultList, args *Args) {
		_, ok = ServiceOpt[*CommandQueue](args, ServiceKeyCommands)
	}))
	sc.RunPhase(PhaseUpdate)

	if !ok {
		t.Error("command queue should be reachable through the service bag")
	}
}

func TestResultListSinglePanicsOnMultiple(t *testing.T) {
	s := NewStore()
	s.SpawnEntity(&compA{})
	s.SpawnEntity(&compA{})

	defer func() {
		if recover() == nil {
			t.Error("expected panic for Single over two results")
		}
	}()
	s.Query(Has[compA](NewQuery())).Single()
}

func TestGetUnrequestedComponentPanics(t *testing.T) {
	s := NewStore()
	s.SpawnEntity(&compA{}, &compB{})
	r := s.Query(Has[compA](NewQuery())).Single()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for Get of unrequested type")
		}
	}()
	Get[compB](r)
}
