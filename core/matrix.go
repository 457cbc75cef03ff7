package core

// Matrix is a dense 2D grid of cells, indexed x-then-y from the top-left.
// The renderer uses it for frame composition and diffing.
type Matrix[T any] struct {
	dims  Dimensions2d
	cells []T
}

// NewMatrix builds a matrix of the given dimensions with every cell set to
// fill.
func NewMatrix[T any](dims Dimensions2d, fill T) *Matrix[T] {
	m := &Matrix[T]{
		dims:  dims,
		cells: make([]T, dims.Width*dims.Height),
	}
	for i := range m.cells {
		m.cells[i] = fill
	}
	return m
}

func (m *Matrix[T]) Dimensions() Dimensions2d { return m.dims }

// At returns a pointer to the cell at pos, or nil when pos is out of bounds.
func (m *Matrix[T]) At(pos IntCoords2d) *T {
	if !m.dims.Contains(pos) {
		return nil
	}
	return &m.cells[pos.Y*m.dims.Width+pos.X]
}

// Set overwrites the cell at pos, reporting false when pos is out of bounds.
func (m *Matrix[T]) Set(pos IntCoords2d, value T) bool {
	if !m.dims.Contains(pos) {
		return false
	}
	m.cells[pos.Y*m.dims.Width+pos.X] = value
	return true
}

// Each visits every cell in row-major order.
func (m *Matrix[T]) Each(visit func(pos IntCoords2d, cell *T)) {
	for y := 0; y < m.dims.Height; y++ {
		for x := 0; x < m.dims.Width; x++ {
			visit(IntCoords2d{X: x, Y: y}, &m.cells[y*m.dims.Width+x])
		}
	}
}

// Fill resets every cell to value.
func (m *Matrix[T]) Fill(value T) {
	for i := range m.cells {
		m.cells[i] = value
	}
}
