package job_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/katalvlaran/wavefc/config"
	"github.com/katalvlaran/wavefc/internal/job"
	"github.com/katalvlaran/wavefc/wave"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func checker() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, black)
	img.SetRGBA(1, 0, white)
	img.SetRGBA(0, 1, white)
	img.SetRGBA(1, 1, black)
	return img
}

func TestReadImage_BMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checker.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, checker()))
	require.NoError(t, f.Close())

	img, err := job.ReadImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	r, g, b, _ := img.At(1, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestReadImage_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := job.ReadImage(filepath.Join(dir, "none.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o600))
	_, err = job.ReadImage(junk)
	assert.ErrorContains(t, err, "decode")
}

func TestLoad_Overlapping(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, "checker.png")
	require.NoError(t, job.WritePNG(sample, checker()))

	j := config.DefaultJob()
	j.Sample = sample
	j.N = 2
	j.Symmetry = 1
	j.Size = 4
	j.Periodic = true
	j.HeuristicName = "mrv"

	m, err := job.Load(j)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Catalog.Len())

	s, err := m.NewSolver(j)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Footprint())
	assert.True(t, s.Periodic())
	assert.Equal(t, wave.MRV, s.Heuristic())
	require.True(t, s.Run(1, -1))

	img := m.Render(s, m.RenderOptions)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
}

func TestLoad_Tiled(t *testing.T) {
	dir := t.TempDir()
	set := filepath.Join(dir, "Lines.yaml")
	require.NoError(t, os.WriteFile(set, []byte(`
set:
  unique: true
  tiles:
    tile: {name: line, symmetry: I}
  neighbors:
    neighbor:
      - {left: line 0, right: line 0}
      - {left: line 1, right: line 1}
`), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Lines"), 0o755))
	for _, name := range []string{"line 0", "line 1"} {
		require.NoError(t, job.WritePNG(filepath.Join(dir, "Lines", name+".png"), checker()))
	}

	j := config.DefaultJob()
	j.Kind = config.Tiled
	j.TileSet = set
	j.Size = 3
	j.BlackBackground = true

	m, err := job.Load(j)
	require.NoError(t, err)
	assert.True(t, m.RenderOptions.BlackBackground)

	s, err := m.NewSolver(j)
	require.NoError(t, err)
	s.Clear()
	img := m.Render(s, m.RenderOptions)
	assert.Equal(t, image.Rect(0, 0, 6, 6), img.Bounds())
	assert.Equal(t, black, img.RGBAAt(1, 0))

	j.TileSet = filepath.Join(dir, "Missing.yaml")
	_, err = job.Load(j)
	assert.Error(t, err)
}
