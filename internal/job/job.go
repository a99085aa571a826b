// Package job turns a config.Job into a solvable, renderable model, and
// reads and writes the image files around it.
package job

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/wavefc/catalog"
	"github.com/katalvlaran/wavefc/config"
	"github.com/katalvlaran/wavefc/overlap"
	"github.com/katalvlaran/wavefc/render"
	"github.com/katalvlaran/wavefc/tiled"
	"github.com/katalvlaran/wavefc/wave"
)

// Model is a built catalog with the solver options it implies and the
// renderer matching its kind.
type Model struct {
	Catalog *catalog.Catalog
	// Options holds the model and job options for wave.New, in that order.
	Options []wave.Option
	Render  func(s *wave.Solver, opts render.Options) *image.RGBA
	// RenderOptions are the job's preview settings.
	RenderOptions render.Options
}

// NewSolver builds a fresh solver of the job's dimensions.
func (m *Model) NewSolver(j config.Job, extra ...wave.Option) (*wave.Solver, error) {
	w, h := j.Dimensions()
	opts := append(append([]wave.Option(nil), m.Options...), extra...)
	return wave.New(m.Catalog, w, h, opts...)
}

// Load builds the model of j.
func Load(j config.Job) (*Model, error) {
	var (
		m   *Model
		err error
	)
	if j.Kind == config.Tiled {
		m, err = loadTiled(j)
	} else {
		m, err = loadOverlap(j)
	}
	if err != nil {
		return nil, err
	}
	jobOpts, err := j.SolverOptions()
	if err != nil {
		return nil, err
	}
	m.Options = append(m.Options, jobOpts...)
	m.RenderOptions.BlackBackground = j.BlackBackground
	return m, nil
}

func loadOverlap(j config.Job) (*Model, error) {
	img, err := ReadImage(j.Sample)
	if err != nil {
		return nil, err
	}
	om, err := overlap.Build(overlap.SampleFromImage(img), j.OverlapOptions())
	if err != nil {
		return nil, err
	}
	return &Model{
		Catalog: om.Catalog,
		Options: om.SolverOptions(),
		Render: func(s *wave.Solver, opts render.Options) *image.RGBA {
			return render.Overlap(om, s, opts)
		},
	}, nil
}

// loadTiled reads the tile set and its images. Images live next to the
// tile-set file in a directory named after it: "Knots.yaml" → "Knots/".
func loadTiled(j config.Job) (*Model, error) {
	ts, err := tiled.Load(j.TileSet)
	if err != nil {
		return nil, err
	}
	tm, err := tiled.Build(ts, j.Subset)
	if err != nil {
		return nil, err
	}

	dir := strings.TrimSuffix(j.TileSet, filepath.Ext(j.TileSet))
	var keys []string
	if tm.Unique {
		keys = tm.Names
	} else {
		for _, tile := range tm.Tiles {
			keys = append(keys, tile.Name)
		}
	}
	images := make(map[string]image.Image, len(keys))
	for _, k := range keys {
		img, err := ReadImage(filepath.Join(dir, k+".png"))
		if err != nil {
			return nil, err
		}
		images[k] = img
	}
	atlas, err := render.NewAtlas(tm, images)
	if err != nil {
		return nil, err
	}

	return &Model{
		Catalog: tm.Catalog,
		Options: tm.SolverOptions(),
		Render: func(s *wave.Solver, opts render.Options) *image.RGBA {
			return render.Tiled(tm, atlas, s, opts)
		},
	}, nil
}
