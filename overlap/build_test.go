package overlap_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefc/catalog"
	"github.com/katalvlaran/wavefc/grid"
	"github.com/katalvlaran/wavefc/overlap"
	"github.com/katalvlaran/wavefc/wave"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func checker(w, h int) [][]color.RGBA {
	rows := make([][]color.RGBA, h)
	for y := range rows {
		rows[y] = make([]color.RGBA, w)
		for x := range rows[y] {
			if (x+y)%2 == 0 {
				rows[y][x] = black
			} else {
				rows[y][x] = white
			}
		}
	}
	return rows
}

// flowers is a small asymmetric sample that yields many distinct patterns.
func flowers() [][]color.RGBA {
	return [][]color.RGBA{
		{white, white, red, white, white},
		{white, red, blue, red, white},
		{white, white, red, white, black},
		{black, white, black, white, black},
		{black, black, black, black, black},
	}
}

func TestBuild_Checkerboard(t *testing.T) {
	opts := overlap.Options{N: 2, PeriodicInput: true, Symmetry: 1}
	m, err := overlap.Build(checker(2, 2), opts)
	require.NoError(t, err)

	assert.Equal(t, []color.RGBA{black, white}, m.Palette)
	assert.Equal(t, [][]uint8{{0, 1, 1, 0}, {1, 0, 0, 1}}, m.Patterns)
	assert.Equal(t, []float64{2, 2}, m.Catalog.Weights())
	for _, d := range catalog.Directions {
		assert.Equal(t, []int{1}, m.Catalog.Compatible(d, 0), d.String())
		assert.Equal(t, []int{0}, m.Catalog.Compatible(d, 1), d.String())
	}
	assert.Equal(t, white, m.ColorAt(0, 1, 0))
	assert.Equal(t, black, m.ColorAt(1, 1, 0))
	assert.Equal(t, 1, m.Symmetry)
}

func TestBuild_WeightsCountEveryVariant(t *testing.T) {
	cases := []struct {
		name     string
		sample   [][]color.RGBA
		opts     overlap.Options
		windows  int
		patterns int
	}{
		{"checker sym8", checker(2, 2), overlap.Options{N: 2, PeriodicInput: true, Symmetry: 8}, 4, 2},
		{"checker non-periodic", checker(3, 3), overlap.Options{N: 2, Symmetry: 1}, 4, 2},
		{"flowers sym1", flowers(), overlap.Options{N: 3, PeriodicInput: true, Symmetry: 1}, 25, 0},
		{"flowers sym4", flowers(), overlap.Options{N: 3, Symmetry: 4}, 9, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := overlap.Build(tc.sample, tc.opts)
			require.NoError(t, err)
			var sum float64
			for _, w := range m.Catalog.Weights() {
				sum += w
			}
			assert.Equal(t, float64(tc.windows*tc.opts.Symmetry), sum)
			if tc.patterns > 0 {
				assert.Equal(t, tc.patterns, m.Catalog.Len())
			}
			assert.Len(t, m.Patterns, m.Catalog.Len())
			for _, p := range m.Patterns {
				assert.Len(t, p, tc.opts.N*tc.opts.N)
			}
		})
	}
}

func TestBuild_CompatibilityIsSymmetric(t *testing.T) {
	m, err := overlap.Build(flowers(), overlap.DefaultOptions())
	require.NoError(t, err)

	n := m.Catalog.Len()
	for _, d := range catalog.Directions {
		for t1 := 0; t1 < n; t1++ {
			for t2 := 0; t2 < n; t2++ {
				assert.Equal(t,
					m.Catalog.Allows(d, t1, t2),
					m.Catalog.Allows(d.Opposite(), t2, t1))
				assert.Equal(t,
					m.Catalog.Allows(d, t1, t2),
					overlap.Agrees(m.Patterns[t1], m.Patterns[t2], d.DX(), d.DY(), m.N))
			}
		}
	}
}

func TestBuild_PatternsAreDistinct(t *testing.T) {
	m, err := overlap.Build(flowers(), overlap.DefaultOptions())
	require.NoError(t, err)
	seen := make(map[string]bool)
	for _, p := range m.Patterns {
		k := string(p)
		assert.False(t, seen[k], "duplicate pattern %v", p)
		seen[k] = true
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := overlap.Build(checker(3, 3), overlap.Options{N: 0, Symmetry: 1})
	assert.ErrorIs(t, err, overlap.ErrBadPatternSize)

	_, err = overlap.Build(checker(3, 3), overlap.Options{N: 2, Symmetry: 9})
	assert.ErrorIs(t, err, overlap.ErrBadSymmetry)

	_, err = overlap.Build(checker(2, 2), overlap.Options{N: 3, Symmetry: 1})
	assert.ErrorIs(t, err, overlap.ErrSampleTooSmall)

	_, err = overlap.Build(nil, overlap.DefaultOptions())
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = overlap.Build([][]color.RGBA{{black, white}, {black}}, overlap.DefaultOptions())
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	wide := make([]color.RGBA, 257)
	for i := range wide {
		wide[i] = color.RGBA{R: uint8(i), G: uint8(i >> 8), A: 255}
	}
	_, err = overlap.Build([][]color.RGBA{wide}, overlap.Options{N: 1, PeriodicInput: true, Symmetry: 1})
	assert.ErrorIs(t, err, overlap.ErrPaletteTooLarge)
}

func TestAgrees(t *testing.T) {
	p1 := []uint8{0, 1, 2, 3}
	assert.True(t, overlap.Agrees(p1, []uint8{1, 9, 3, 9}, 1, 0, 2))
	assert.False(t, overlap.Agrees(p1, []uint8{0, 9, 3, 9}, 1, 0, 2))
	assert.True(t, overlap.Agrees(p1, []uint8{2, 3, 9, 9}, 0, 1, 2))
	assert.True(t, overlap.Agrees(p1, []uint8{9, 0, 9, 2}, -1, 0, 2))
	assert.True(t, overlap.Agrees(p1, []uint8{9, 9, 0, 1}, 0, -1, 2))
}

func TestPatternHash(t *testing.T) {
	assert.Equal(t, uint64(0), overlap.PatternHash([]uint8{0, 0, 0, 0}, 2))
	// Most significant digit first: 1·2³ + 0·2² + 1·2 + 1.
	assert.Equal(t, uint64(11), overlap.PatternHash([]uint8{1, 0, 1, 1}, 2))
}

func TestSampleFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 7, 7, 8))
	img.SetRGBA(5, 7, red)
	img.SetRGBA(6, 7, blue)

	assert.Equal(t, [][]color.RGBA{{red, blue}}, overlap.SampleFromImage(img))
}

func TestModel_SolverOptions(t *testing.T) {
	opts := overlap.DefaultOptions()
	opts.Ground = true
	m, err := overlap.Build(flowers(), opts)
	require.NoError(t, err)

	s, err := wave.New(m.Catalog, 8, 8, m.SolverOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Footprint())
	assert.False(t, s.Periodic())

	_, err = wave.New(m.Catalog, 2, 8, m.SolverOptions()...)
	assert.ErrorIs(t, err, wave.ErrGridTooSmall)
}
