package engine

import "github.com/lixenwraith/tachyon/core"

// Command is a pending world mutation. Systems never touch the store
// directly; they issue commands that the scheduler applies after the
// current phase has finished iterating, which is what makes read-current,
// queue-future systems safe without snapshots.
type Command interface {
	isCommand()
}

// AddEntity spawns a fresh entity carrying the given component bundle.
type AddEntity struct {
	Components []Component
}

// DestroyEntity removes an entity and everything attached to it. Targeting
// an entity that no longer exists is a no-op.
type DestroyEntity struct {
	Entity core.Entity
}

// AddComponents attaches components to an existing entity, subject to the
// store's first-write-wins rule per type.
type AddComponents struct {
	Entity     core.Entity
	Components []Component
}

// RemoveComponents detaches the named component types from an entity.
type RemoveComponents struct {
	Entity core.Entity
	Names  []string
}

// ClearEntities removes every entity from the world.
type ClearEntities struct{}

// Quit ends the frame loop after the current frame completes.
type Quit struct{}

func (AddEntity) isCommand()        {}
func (DestroyEntity) isCommand()    {}
func (AddComponents) isCommand()    {}
func (RemoveComponents) isCommand() {}
func (ClearEntities) isCommand()    {}
func (Quit) isCommand()             {}

// CommandQueue is the ordered log of pending mutations for one scheduler
// phase. It is created empty, appended to by systems through the Args
// handle, and drained by the scheduler at phase end.
type CommandQueue struct {
	commands []Command
}

func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

// Issue appends a command. Issue order is application order.
func (q *CommandQueue) Issue(cmd Command) {
	q.commands = append(q.commands, cmd)
}

// Drain returns the queued commands in FIFO order and empties the queue.
func (q *CommandQueue) Drain() []Command {
	drained := q.commands
	q.commands = nil
	return drained
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int {
	return len(q.commands)
}
