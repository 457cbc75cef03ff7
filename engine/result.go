package engine

import (
	"fmt"

	"github.com/lixenwraith/tachyon/core"
)

// QueryResult is one matching entity together with views of exactly the
// components the query asked for, not the entity's full component map.
// Results borrow from the store: they are valid for the current scheduler
// pass only and must not be retained across frames.
type QueryResult struct {
	entity     core.Entity
	components map[string]Component
}

func (r *QueryResult) Entity() core.Entity { return r.entity }

// Component returns the projected component with the given registry key, or
// nil when the query did not request that type.
func (r *QueryResult) Component(name string) Component {
	return r.components[name]
}

// Get returns the result's view of component type T. Asking for a type the
// query never requested is a wiring bug and panics.
func Get[T any](r *QueryResult) *T {
	c, ok := r.components[Name[T]()]
	if !ok {
		panic(fmt.Sprintf("component %q was not requested by the query that produced this result", Name[T]()))
	}
	return MustAs[T](c)
}

// GetOpt returns the result's view of component type T, or false when the
// query did not request that type.
func GetOpt[T any](r *QueryResult) (*T, bool) {
	c, ok := r.components[Name[T]()]
	if !ok {
		return nil, false
	}
	return As[T](c)
}

// ResultList holds every match of one query, in ascending entity order.
type ResultList []*QueryResult

// Entities lists the matched entity handles in result order.
func (rl ResultList) Entities() []core.Entity {
	out := make([]core.Entity, len(rl))
	for i, r := range rl {
		out[i] = r.entity
	}
	return out
}

// Single returns the sole result of a query expected to match exactly one
// entity, panicking otherwise. Used for singleton state like engine stats.
func (rl ResultList) Single() *QueryResult {
	if len(rl) != 1 {
		panic(fmt.Sprintf("expected exactly 1 query result, found %d", len(rl)))
	}
	return rl[0]
}

// Only is shorthand for Single().Get[T]: the component of the sole match.
func Only[T any](rl ResultList) *T {
	return Get[T](rl.Single())
}
