package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/tachyon/input"
)

// Reserved service keys. The typed accessors on Args cover these; they are
// also reachable through the bag so generic tooling can enumerate them.
const (
	ServiceKeyCommands = "tachyon.commands"
	ServiceKeyTime     = "tachyon.time"
	ServiceKeyInput    = "tachyon.input"

	reservedKeyPrefix = "tachyon."
)

// Args is the extra-argument bag passed into every system invocation:
// the command queue handle, the frame delta, the input snapshot, and a
// string-keyed bag of injected services. The handle is only valid for the
// duration of the call; systems must not retain it.
type Args struct {
	commands *CommandQueue
	delta    time.Duration
	input    *input.Input
	services map[string]any
}

// Commands returns the queue mutations should be issued to. Applied by the
// scheduler after the current phase completes.
func (a *Args) Commands() *CommandQueue { return a.commands }

// DeltaTime returns the time elapsed since the previous frame. Zero during
// the init phase.
func (a *Args) DeltaTime() time.Duration { return a.delta }

// Input returns the frame-coherent key state snapshot.
func (a *Args) Input() *input.Input { return a.input }

// Service retrieves an injected service by key and casts it to T. A
// missing key or a type mismatch is a wiring bug and panics with a
// descriptive message.
func Service[T any](a *Args, key string) T {
	raw, ok := a.services[key]
	if !ok {
		panic(fmt.Sprintf("service not injected: %q", key))
	}
	typed, ok := raw.(T)
	if !ok {
		panic(fmt.Sprintf("service %q: type mismatch, got %T", key, raw))
	}
	return typed
}

// ServiceOpt retrieves an injected service by key, reporting false when the
// key is absent or the type does not match.
func ServiceOpt[T any](a *Args, key string) (T, bool) {
	raw, ok := a.services[key]
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := raw.(T)
	return typed, ok
}

func isReservedKey(key string) bool {
	return strings.HasPrefix(key, reservedKeyPrefix)
}
