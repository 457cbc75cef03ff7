package engine

import (
	"sort"

	"github.com/lixenwraith/tachyon/core"
)

// Store associates entities with heterogeneous typed components through a
// dual inverted index: entity → {type name → component} and type name →
// {entities}. The two maps are always consistent images of each other;
// every mutation updates both.
//
// The store is not locked: the scheduler owns it exclusively and systems
// only ever see query-scoped views.
type Store struct {
	entitiesToComponents map[core.Entity]map[string]Component
	componentsToEntities map[string]map[core.Entity]struct{}
}

func NewStore() *Store {
	return &Store{
		entitiesToComponents: make(map[core.Entity]map[string]Component),
		componentsToEntities: make(map[string]map[core.Entity]struct{}),
	}
}

// AddEntity registers an entity with an initial component bundle. Returns
// false and leaves the store unchanged when the entity already exists.
// When the bundle contains two components of the same type the first wins,
// matching the component-add rule.
func (s *Store) AddEntity(entity core.Entity, components ...Component) bool {
	if _, exists := s.entitiesToComponents[entity]; exists {
		return false
	}

	componentMap := make(map[string]Component, len(components))
	for _, c := range components {
		name := NameOf(c)
		if _, dup := componentMap[name]; dup {
			continue
		}
		componentMap[name] = c
		s.indexComponent(entity, name)
	}
	s.entitiesToComponents[entity] = componentMap
	return true
}

// SpawnEntity allocates a fresh handle, registers it with the bundle, and
// returns it.
func (s *Store) SpawnEntity(components ...Component) core.Entity {
	entity := core.NextEntity()
	s.AddEntity(entity, components...)
	return entity
}

// RemoveEntity purges an entity and all its index entries. Removing an
// entity that does not exist is a no-op.
func (s *Store) RemoveEntity(entity core.Entity) {
	components, ok := s.entitiesToComponents[entity]
	if !ok {
		return
	}
	for name := range components {
		s.unindexComponent(entity, name)
	}
	delete(s.entitiesToComponents, entity)
}

// Clear removes every entity from the store.
func (s *Store) Clear() {
	s.entitiesToComponents = make(map[core.Entity]map[string]Component)
	s.componentsToEntities = make(map[string]map[core.Entity]struct{})
}

// AddComponent attaches a component to an existing entity. No-op when the
// entity is absent or already carries a component of that type: first write
// wins, there is no implicit overwrite.
func (s *Store) AddComponent(entity core.Entity, component Component) {
	componentMap, ok := s.entitiesToComponents[entity]
	if !ok {
		return
	}
	name := NameOf(component)
	if _, present := componentMap[name]; present {
		return
	}
	componentMap[name] = component
	s.indexComponent(entity, name)
}

// RemoveComponent detaches the named component type from an entity. No-op
// when the entity or component is absent.
func (s *Store) RemoveComponent(entity core.Entity, name string) {
	componentMap, ok := s.entitiesToComponents[entity]
	if !ok {
		return
	}
	if _, present := componentMap[name]; !present {
		return
	}
	delete(componentMap, name)
	s.unindexComponent(entity, name)
}

// HasEntity reports whether the entity is registered.
func (s *Store) HasEntity(entity core.Entity) bool {
	_, ok := s.entitiesToComponents[entity]
	return ok
}

// EntityCount returns the number of live entities.
func (s *Store) EntityCount() int {
	return len(s.entitiesToComponents)
}

// Query resolves a filter into a read-only result set. See resolve for the
// algorithm.
func (s *Store) Query(q *Query) ResultList {
	return s.resolve(q)
}

// QueryMut resolves a filter into an exclusive result set whose component
// views may be mutated in place. The projection is identical to Query; the
// split documents intent at the call site, mirroring the read/write
// distinction the scheduler enforces by convention.
func (s *Store) QueryMut(q *Query) ResultList {
	return s.resolve(q)
}

// resolve turns a filter into results: intersect the entity sets of every
// required type, subtract entities carrying any forbidden type, apply
// predicates, then project only the requested component types in ascending
// entity order so output is deterministic.
//
// A required type with no live entities short-circuits the whole query to
// empty — "nobody has T" can never satisfy "has T". This includes types
// that were never stored at all.
func (s *Store) resolve(q *Query) ResultList {
	required := q.ComponentNames()
	if len(required) == 0 {
		panic("query has no required component types")
	}

	// Seed from the smallest required set to keep the intersection cheap.
	var seed map[core.Entity]struct{}
	for _, name := range required {
		set, ok := s.componentsToEntities[name]
		if !ok || len(set) == 0 {
			return nil
		}
		if seed == nil || len(set) < len(seed) {
			seed = set
		}
	}

	var matched []core.Entity
candidates:
	for entity := range seed {
		for _, name := range required {
			if _, ok := s.componentsToEntities[name][entity]; !ok {
				continue candidates
			}
		}
		for _, name := range q.ForbiddenComponentNames() {
			if _, ok := s.componentsToEntities[name][entity]; ok {
				continue candidates
			}
		}
		for name, pred := range q.predicates {
			if !pred(s.entitiesToComponents[entity][name]) {
				continue candidates
			}
		}
		matched = append(matched, entity)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i] < matched[j] })

	results := make(ResultList, 0, len(matched))
	for _, entity := range matched {
		projection := make(map[string]Component, len(required))
		for _, name := range required {
			projection[name] = s.entitiesToComponents[entity][name]
		}
		results = append(results, &QueryResult{entity: entity, components: projection})
	}
	return results
}

func (s *Store) indexComponent(entity core.Entity, name string) {
	set, ok := s.componentsToEntities[name]
	if !ok {
		set = make(map[core.Entity]struct{})
		s.componentsToEntities[name] = set
	}
	set[entity] = struct{}{}
}

func (s *Store) unindexComponent(entity core.Entity, name string) {
	set, ok := s.componentsToEntities[name]
	if !ok {
		return
	}
	delete(set, entity)
	if len(set) == 0 {
		delete(s.componentsToEntities, name)
	}
}
