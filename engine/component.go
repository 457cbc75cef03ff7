package engine

import (
	"fmt"
	"reflect"
)

// Component marks a value that can be attached to an entity. Components are
// stored behind pointers so mutation through a query view takes effect in
// place; attach with &T{...}.
//
// The registry key for a component is its concrete struct type name with
// pointer indirection stripped, so exactly one instance of a given type can
// exist per entity.
type Component any

// NameOf returns the registry key for a component instance.
func NameOf(c Component) string {
	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Name returns the registry key for component type T without needing an
// instance.
func Name[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().Name()
}

// As coerces a stored component to *T. The second return is false when the
// stored component is a different concrete type.
func As[T any](c Component) (*T, bool) {
	p, ok := c.(*T)
	return p, ok
}

// MustAs coerces a stored component to *T and panics when the concrete type
// differs. Reserved for call sites where a mismatch is a wiring bug rather
// than a runtime condition.
func MustAs[T any](c Component) *T {
	p, ok := c.(*T)
	if !ok {
		panic(fmt.Sprintf("component %q is not %q", NameOf(c), Name[T]()))
	}
	return p
}
