package core

import "math"

// Coords is a position or direction in continuous world space.
type Coords struct {
	X, Y, Z float64
}

// Direction constructors. Y grows upward, Z grows toward the viewer.
func CoordsZero() Coords     { return Coords{} }
func CoordsLeft() Coords     { return Coords{X: -1} }
func CoordsRight() Coords    { return Coords{X: 1} }
func CoordsUp() Coords       { return Coords{Y: 1} }
func CoordsDown() Coords     { return Coords{Y: -1} }
func CoordsForward() Coords  { return Coords{Z: -1} }
func CoordsBackward() Coords { return Coords{Z: 1} }

// Add shifts c by other in place.
func (c *Coords) Add(other Coords) {
	c.X += other.X
	c.Y += other.Y
	c.Z += other.Z
}

// Plus returns c shifted by other.
func (c Coords) Plus(other Coords) Coords {
	return Coords{X: c.X + other.X, Y: c.Y + other.Y, Z: c.Z + other.Z}
}

// DistanceFrom2d measures the straight-line distance on the XY plane,
// ignoring Z.
func (c Coords) DistanceFrom2d(other Coords) float64 {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// IntCoords2d is a discrete cell position, the native coordinate space of
// the terminal grid.
type IntCoords2d struct {
	X, Y int
}

func IntCoords2dZero() IntCoords2d { return IntCoords2d{} }

// Plus returns c shifted by other.
func (c IntCoords2d) Plus(other IntCoords2d) IntCoords2d {
	return IntCoords2d{X: c.X + other.X, Y: c.Y + other.Y}
}

// Minus returns c shifted by the negation of other.
func (c IntCoords2d) Minus(other IntCoords2d) IntCoords2d {
	return IntCoords2d{X: c.X - other.X, Y: c.Y - other.Y}
}
