package core

import "sync/atomic"

// Entity is an opaque handle identifying a bundle of components in a store.
// Entities carry no data of their own.
type Entity uint64

var entityCounter atomic.Uint64

// NextEntity allocates a fresh entity handle from the process-wide counter.
// Handles are unique for the process lifetime and never recycled, so the
// counter grows monotonically; at 64 bits this is not a practical concern.
func NextEntity() Entity {
	return Entity(entityCounter.Add(1))
}
