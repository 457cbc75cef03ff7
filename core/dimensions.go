package core

// Dimensions2d is a width/height pair in cells.
type Dimensions2d struct {
	Width, Height int
}

// Contains reports whether the cell position lies inside a grid of these
// dimensions anchored at the origin.
func (d Dimensions2d) Contains(pos IntCoords2d) bool {
	return pos.X >= 0 && pos.X < d.Width && pos.Y >= 0 && pos.Y < d.Height
}
