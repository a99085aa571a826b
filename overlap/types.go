package overlap

import (
	"errors"
	"image/color"

	"github.com/katalvlaran/wavefc/catalog"
	"github.com/katalvlaran/wavefc/wave"
)

var (
	// ErrBadPatternSize indicates N ≤ 0.
	ErrBadPatternSize = errors.New("overlap: pattern size N must be positive")
	// ErrSampleTooSmall indicates a non-periodic sample smaller than N.
	ErrSampleTooSmall = errors.New("overlap: sample is smaller than the pattern size")
	// ErrBadSymmetry indicates a symmetry count outside 1..8.
	ErrBadSymmetry = errors.New("overlap: symmetry must be in 1..8")
	// ErrPaletteTooLarge indicates more distinct colors than a uint8 index can hold.
	ErrPaletteTooLarge = errors.New("overlap: sample has more than 256 colors")
)

// MaxColors is the palette capacity of a pattern.
const MaxColors = 256

// Options configures Build.
type Options struct {
	N             int
	PeriodicInput bool
	Symmetry      int
	Ground        bool
}

// DefaultOptions returns N=3, periodic input, full 8-fold symmetry, no ground.
func DefaultOptions() Options {
	return Options{
		N:             3,
		PeriodicInput: true,
		Symmetry:      8,
	}
}

// Model is the result of Build. It is immutable.
type Model struct {
	// N is the pattern edge length.
	N int
	// Palette maps palette indices to sample colors, in first-seen order.
	Palette []color.RGBA
	// Patterns[t] holds N*N palette indices in row-major order.
	Patterns [][]uint8
	// Catalog carries weights (occurrence counts) and compatibility.
	Catalog *catalog.Catalog
	// Symmetry is the number of dihedral variants kept per window.
	Symmetry int
	// Ground mirrors Options.Ground.
	Ground bool
}

// ColorAt returns the color of pattern t at offset (dx,dy) inside its window.
func (m *Model) ColorAt(t, dx, dy int) color.RGBA {
	return m.Palette[m.Patterns[t][dx+dy*m.N]]
}

// SolverOptions returns the wave options this model implies: an N-sized
// footprint and the ground constraint.
func (m *Model) SolverOptions() []wave.Option {
	return []wave.Option{wave.WithFootprint(m.N), wave.WithGround(m.Ground)}
}
