package engine

// Predicate gates an entity's inclusion in a query result based on a
// component's current value. Predicates read the component and must not
// mutate it, even when the overall query is resolved mutably.
type Predicate func(Component) bool

// Query is an immutable filter over the store: component types an entity
// must have, types it must not have, and optional per-type predicates.
// Build one query per system at registration time and reuse it every frame;
// the store resolves it freshly against current state on each pass.
type Query struct {
	required   []string
	forbidden  []string
	predicates map[string]Predicate
}

func NewQuery() *Query {
	return &Query{}
}

// HasNamed requires the component type with the given registry key.
// Duplicate names are ignored.
func (q *Query) HasNamed(name string) *Query {
	for _, existing := range q.required {
		if existing == name {
			return q
		}
	}
	q.required = append(q.required, name)
	return q
}

// HasNoNamed excludes entities carrying the component type with the given
// registry key.
func (q *Query) HasNoNamed(name string) *Query {
	for _, existing := range q.forbidden {
		if existing == name {
			return q
		}
	}
	q.forbidden = append(q.forbidden, name)
	return q
}

// Has requires component type T.
func Has[T any](q *Query) *Query {
	return q.HasNamed(Name[T]())
}

// HasNo excludes entities carrying component type T.
func HasNo[T any](q *Query) *Query {
	return q.HasNoNamed(Name[T]())
}

// HasWhere requires component type T and additionally filters on its
// current value. A later HasWhere for the same type replaces the predicate.
func HasWhere[T any](q *Query, pred func(*T) bool) *Query {
	name := Name[T]()
	q.HasNamed(name)
	if q.predicates == nil {
		q.predicates = make(map[string]Predicate)
	}
	q.predicates[name] = func(c Component) bool {
		return pred(MustAs[T](c))
	}
	return q
}

// ComponentNames returns the required type names in declaration order.
func (q *Query) ComponentNames() []string {
	return q.required
}

// ForbiddenComponentNames returns the excluded type names in declaration
// order.
func (q *Query) ForbiddenComponentNames() []string {
	return q.forbidden
}
