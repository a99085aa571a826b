package grid

import "fmt"

// Grid is a rectangular, row-major 2-D container.
// The zero value is not usable; construct with New, Filled or From2D.
type Grid[T any] struct {
	Width, Height int
	cells         []T
}

// New allocates a Width×Height grid of zero values.
// Returns ErrBadDimensions if w < 1 or h < 1.
func New[T any](w, h int) (*Grid[T], error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, w, h)
	}
	return &Grid[T]{Width: w, Height: h, cells: make([]T, w*h)}, nil
}

// Filled allocates a Width×Height grid with every cell set to v.
func Filled[T any](w, h int, v T) (*Grid[T], error) {
	g, err := New[T](w, h)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i] = v
	}
	return g, nil
}

// From2D builds a grid from rows[y][x]. The input is deep-copied.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func From2D[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid[T]{Width: w, Height: h, cells: make([]T, 0, w*h)}
	for _, row := range rows {
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// Len returns Width×Height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index converts (x,y) to the row-major index y*Width + x.
// It does not check bounds.
func (g *Grid[T]) Index(x, y int) int { return y*g.Width + x }

// Coordinate converts a row-major index back to (x,y).
func (g *Grid[T]) Coordinate(i int) (x, y int) { return i % g.Width, i / g.Width }

// Wrap maps (x,y) onto the grid torus. Any integer coordinates are accepted.
func (g *Grid[T]) Wrap(x, y int) (int, int) {
	x %= g.Width
	if x < 0 {
		x += g.Width
	}
	y %= g.Height
	if y < 0 {
		y += g.Height
	}
	return x, y
}

// At returns the value at (x,y). It panics if (x,y) is out of range.
func (g *Grid[T]) At(x, y int) T {
	g.mustContain(x, y)
	return g.cells[g.Index(x, y)]
}

// Set stores v at (x,y). It panics if (x,y) is out of range.
func (g *Grid[T]) Set(x, y int, v T) {
	g.mustContain(x, y)
	g.cells[g.Index(x, y)] = v
}

// Get returns the value at (x,y) and whether (x,y) was in bounds.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[g.Index(x, y)], true
}

// AtIndex returns the value at row-major index i.
func (g *Grid[T]) AtIndex(i int) T { return g.cells[i] }

// SetIndex stores v at row-major index i.
func (g *Grid[T]) SetIndex(i int, v T) { g.cells[i] = v }

// Values returns a copy of the row-major backing slice.
func (g *Grid[T]) Values() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)
	return out
}

// Rows returns a deep copy as rows[y][x].
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.Height)
	for y := range rows {
		rows[y] = make([]T, g.Width)
		copy(rows[y], g.cells[y*g.Width:(y+1)*g.Width])
	}
	return rows
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{Width: g.Width, Height: g.Height, cells: g.Values()}
}

func (g *Grid[T]) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: (%d,%d) out of range %dx%d", x, y, g.Width, g.Height))
	}
}
