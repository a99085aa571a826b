package symmetry

import (
	"errors"

	"github.com/katalvlaran/wavefc/grid"
)

// ErrNotSquare indicates that a flattened pattern is not n×n.
var ErrNotSquare = errors.New("symmetry: pattern length must equal n*n")

// Count is the order of the dihedral group of the square.
const Count = 8

// Build fills an n×n row-major slice from f(x, y).
func Build[T any](n int, f func(x, y int) T) []T {
	out := make([]T, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x+y*n] = f(x, y)
		}
	}
	return out
}

// Rotate returns p rotated by 90 degrees.
// Complexity: O(n²).
func Rotate[T any](p []T, n int) []T {
	return Build(n, func(x, y int) T { return p[n-1-y+x*n] })
}

// Mirror returns p flipped horizontally.
// Complexity: O(n²).
func Mirror[T any](p []T, n int) []T {
	return Build(n, func(x, y int) T { return p[n-1-x+y*n] })
}

// Variants returns the eight dihedral images of p.
// Returns ErrNotSquare if len(p) != n*n.
// Complexity: O(8·n²).
func Variants[T any](p []T, n int) ([Count][]T, error) {
	var ps [Count][]T
	if n < 1 || len(p) != n*n {
		return ps, ErrNotSquare
	}
	ps[0] = append([]T(nil), p...)
	ps[1] = Mirror(ps[0], n)
	ps[2] = Rotate(ps[0], n)
	ps[3] = Mirror(ps[2], n)
	ps[4] = Rotate(ps[2], n)
	ps[5] = Mirror(ps[4], n)
	ps[6] = Rotate(ps[4], n)
	ps[7] = Mirror(ps[6], n)
	return ps, nil
}

// RotateGrid rotates an arbitrary W×H grid by 90 degrees using the same
// convention as Rotate. The result is H×W.
func RotateGrid[T any](g *grid.Grid[T]) *grid.Grid[T] {
	out, _ := grid.New[T](g.Height, g.Width)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			out.Set(x, y, g.At(out.Height-1-y, x))
		}
	}
	return out
}

// MirrorGrid flips an arbitrary grid horizontally.
func MirrorGrid[T any](g *grid.Grid[T]) *grid.Grid[T] {
	out, _ := grid.New[T](g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out.Set(x, y, g.At(g.Width-1-x, y))
		}
	}
	return out
}
