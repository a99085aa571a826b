package main

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefc/internal/job"
)

func solidPNG(t *testing.T, path string, size int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	require.NoError(t, job.WritePNG(path, img))
}

func checkerPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{A: 255})
	img.SetRGBA(1, 1, color.RGBA{A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	require.NoError(t, job.WritePNG(path, img))
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestOverlapCommand(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, "checker.png")
	checkerPNG(t, sample)
	out := filepath.Join(dir, "out")

	err := execute(t, "overlap", sample,
		"--out", out, "--n", "2", "--symmetry", "1", "--size", "6",
		"--periodic", "--seed", "3", "--scale", "2", "--parallel", "1")
	require.NoError(t, err)

	img, err := job.ReadImage(filepath.Join(out, "checker 0.png"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 12), img.Bounds())
}

func TestTiledCommand(t *testing.T) {
	dir := t.TempDir()
	set := filepath.Join(dir, "Pair.yaml")
	require.NoError(t, os.WriteFile(set, []byte(`
set:
  tiles:
    tile: [{name: a}, {name: b}]
  neighbors:
    neighbor: [{left: a, right: b}]
`), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Pair"), 0o755))
	solidPNG(t, filepath.Join(dir, "Pair", "a.png"), 3, color.RGBA{R: 255, A: 255})
	solidPNG(t, filepath.Join(dir, "Pair", "b.png"), 3, color.RGBA{B: 255, A: 255})
	out := filepath.Join(dir, "out")

	err := execute(t, "tiled", set, "--out", out, "--size", "4", "--periodic",
		"--seed", "1", "--screenshots", "2", "--name", "pair")
	require.NoError(t, err)

	for _, name := range []string{"pair 0.png", "pair 1.png"} {
		img, err := job.ReadImage(filepath.Join(out, name))
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 12, 12), img.Bounds())
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	checkerPNG(t, filepath.Join(dir, "checker.png"))
	cfg := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
output_dir: results
jobs:
  - {name: small, sample: checker.png, n: 2, symmetry: 1, size: 4, periodic: true, seed: 9}
`), 0o600))

	t.Chdir(dir)

	require.NoError(t, execute(t, "batch", cfg))
	_, err := os.Stat(filepath.Join(dir, "results", "small 0.png"))
	assert.NoError(t, err)
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, execute(t, "overlap"))
	assert.Error(t, execute(t, "overlap", filepath.Join(dir, "missing.png"), "--out", dir))
	assert.Error(t, execute(t, "overlap", "x.png", "--heuristic", "greedy", "--out", dir))
}
