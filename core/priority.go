package core

import "math"

// Priority orders systems within a scheduler phase. Lower values run first.
type Priority uint64

const (
	// PriorityHighest runs before everything else in a phase. Reserved for
	// bootstrap work like claiming the screen.
	PriorityHighest Priority = 0

	// PriorityDefault is the midpoint most systems should use.
	PriorityDefault Priority = 100

	// PriorityLowest runs after everything else in a phase. Reserved for
	// teardown work like the final draw pass.
	PriorityLowest Priority = math.MaxUint64
)

// Higher returns a priority that sorts before p, clamped at PriorityHighest.
func (p Priority) Higher() Priority {
	if p == PriorityHighest {
		return p
	}
	return p - 1
}

// Lower returns a priority that sorts after p, clamped at PriorityLowest.
func (p Priority) Lower() Priority {
	if p == PriorityLowest {
		return p
	}
	return p + 1
}
