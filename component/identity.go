// Package component holds the engine's built-in components. Game code
// defines its own component types the same way: a plain struct attached by
// pointer.
package component

// Identity gives an entity a stable ID and a human-readable name for game
// code that needs to find specific entities.
type Identity struct {
	ID   string
	Name string
}
