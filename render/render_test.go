package render_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefc/overlap"
	"github.com/katalvlaran/wavefc/render"
	"github.com/katalvlaran/wavefc/tiled"
	"github.com/katalvlaran/wavefc/wave"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func checkerModel(t *testing.T) *overlap.Model {
	t.Helper()
	m, err := overlap.Build([][]color.RGBA{{black, white}, {white, black}},
		overlap.Options{N: 2, PeriodicInput: true, Symmetry: 1})
	require.NoError(t, err)
	return m
}

func solid(c color.RGBA, size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func quad(a, b, c, d color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, a)
	img.SetRGBA(1, 0, b)
	img.SetRGBA(0, 1, c)
	img.SetRGBA(1, 1, d)
	return img
}

func assertCheckered(t *testing.T, img *image.RGBA, cell int) {
	t.Helper()
	b := img.Bounds()
	origin := img.RGBAAt(0, 0)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			got := img.RGBAAt(x, y)
			if ((x/cell)+(y/cell))%2 == 0 {
				assert.Equal(t, origin, got, "(%d,%d)", x, y)
			} else {
				assert.NotEqual(t, origin, got, "(%d,%d)", x, y)
			}
		}
	}
}

func TestOverlap_Solved(t *testing.T) {
	m := checkerModel(t)
	for _, periodic := range []bool{true, false} {
		s, err := wave.New(m.Catalog, 4, 4, append(m.SolverOptions(), wave.WithPeriodic(periodic))...)
		require.NoError(t, err)
		require.True(t, s.Run(7, -1))

		img := render.Overlap(m, s, render.DefaultOptions())
		assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
		assertCheckered(t, img, 1)
		assert.Contains(t, []color.RGBA{black, white}, img.RGBAAt(3, 3))
	}
}

func TestOverlap_Preview(t *testing.T) {
	m := checkerModel(t)
	s, err := wave.New(m.Catalog, 3, 3, append(m.SolverOptions(), wave.WithPeriodic(true))...)
	require.NoError(t, err)
	s.Clear()

	gray := render.Overlap(m, s, render.DefaultOptions()).RGBAAt(1, 1)
	assert.InDelta(t, 128, int(gray.R), 1)
	assert.Equal(t, gray.R, gray.G)
	assert.Equal(t, uint8(255), gray.A)

	lin := render.Overlap(m, s, render.Options{Linear: true}).RGBAAt(1, 1)
	assert.Greater(t, int(lin.R), 170)
}

func tiledPair(t *testing.T) *tiled.Model {
	t.Helper()
	m, err := tiled.Build(tiled.TileSet{
		Tiles: []tiled.Tile{{Name: "a"}, {Name: "b"}},
		Neighbors: []tiled.Neighbor{
			{Left: tiled.Ref{Name: "a"}, Right: tiled.Ref{Name: "b"}},
		},
	}, "")
	require.NoError(t, err)
	return m
}

func TestTiled_SolvedAndPreview(t *testing.T) {
	m := tiledPair(t)
	atlas, err := render.NewAtlas(m, map[string]image.Image{"a": solid(red, 2), "b": solid(blue, 2)})
	require.NoError(t, err)
	assert.Equal(t, 2, atlas.Size())

	s, err := wave.New(m.Catalog, 4, 2, append(m.SolverOptions(), wave.WithPeriodic(true))...)
	require.NoError(t, err)
	require.True(t, s.Run(1, -1))

	img := render.Tiled(m, atlas, s, render.DefaultOptions())
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())
	assertCheckered(t, img, 2)
	assert.Contains(t, []color.RGBA{red, blue}, img.RGBAAt(0, 0))

	s.Clear()
	mixed := render.Tiled(m, atlas, s, render.DefaultOptions()).RGBAAt(3, 3)
	assert.InDelta(t, 128, int(mixed.R), 1)
	assert.InDelta(t, 128, int(mixed.B), 1)
	assert.Equal(t, uint8(0), mixed.G)

	dark := render.Tiled(m, atlas, s, render.Options{BlackBackground: true}).RGBAAt(3, 3)
	assert.Equal(t, black, dark)
}

func TestNewAtlas_DerivedOrientations(t *testing.T) {
	m, err := tiled.Build(tiled.TileSet{
		Tiles: []tiled.Tile{{Name: "f", Symmetry: tiled.ClassF}},
		Neighbors: []tiled.Neighbor{
			{Left: tiled.Ref{Name: "f"}, Right: tiled.Ref{Name: "f"}},
			{Left: tiled.Ref{Name: "f", Orientation: 1}, Right: tiled.Ref{Name: "f", Orientation: 1}},
		},
	}, "")
	require.NoError(t, err)

	atlas, err := render.NewAtlas(m, map[string]image.Image{"f": quad(red, green, blue, white)})
	require.NoError(t, err)

	// Orientation 0 as given.
	assert.Equal(t, green, atlas.At(0, 1, 0))
	// Orientation 1 is a quarter turn: rot(x, y) = src(n-1-y, x).
	assert.Equal(t, green, atlas.At(1, 0, 0))
	assert.Equal(t, white, atlas.At(1, 1, 0))
	assert.Equal(t, red, atlas.At(1, 0, 1))
	assert.Equal(t, blue, atlas.At(1, 1, 1))
	// Orientation 4 mirrors orientation 0.
	assert.Equal(t, green, atlas.At(4, 0, 0))
	assert.Equal(t, red, atlas.At(4, 1, 0))
	// Orientation 2 is a half turn.
	assert.Equal(t, white, atlas.At(2, 0, 0))
}

func TestNewAtlas_Errors(t *testing.T) {
	m := tiledPair(t)

	_, err := render.NewAtlas(m, map[string]image.Image{"a": solid(red, 2)})
	assert.ErrorIs(t, err, render.ErrMissingImage)

	_, err = render.NewAtlas(m, map[string]image.Image{"a": solid(red, 2), "b": solid(red, 3)})
	assert.ErrorIs(t, err, render.ErrTileSize)

	_, err = render.NewAtlas(m, map[string]image.Image{
		"a": image.NewRGBA(image.Rect(0, 0, 2, 1)), "b": solid(red, 2),
	})
	assert.ErrorIs(t, err, render.ErrTileSize)
}

func TestNewAtlas_Unique(t *testing.T) {
	m, err := tiled.Build(tiled.TileSet{
		Unique: true,
		Tiles:  []tiled.Tile{{Name: "i", Symmetry: tiled.ClassI}},
		Neighbors: []tiled.Neighbor{
			{Left: tiled.Ref{Name: "i"}, Right: tiled.Ref{Name: "i"}},
			{Left: tiled.Ref{Name: "i", Orientation: 1}, Right: tiled.Ref{Name: "i", Orientation: 1}},
		},
	}, "")
	require.NoError(t, err)

	_, err = render.NewAtlas(m, map[string]image.Image{"i": solid(red, 1)})
	assert.ErrorIs(t, err, render.ErrMissingImage)

	atlas, err := render.NewAtlas(m, map[string]image.Image{"i 0": solid(red, 1), "i 1": solid(green, 1)})
	require.NoError(t, err)
	assert.Equal(t, green, atlas.At(1, 0, 0))
}

func TestScale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 0, blue)

	assert.Same(t, img, render.Scale(img, 1))

	big := render.Scale(img, 3)
	assert.Equal(t, image.Rect(0, 0, 6, 3), big.Bounds())
	assert.Equal(t, red, big.RGBAAt(2, 2))
	assert.Equal(t, blue, big.RGBAAt(5, 2))
}
