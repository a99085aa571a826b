package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/wavefc/config"
	"github.com/katalvlaran/wavefc/internal/job"
	"github.com/katalvlaran/wavefc/internal/runner"
	"github.com/katalvlaran/wavefc/internal/termview"
	"github.com/katalvlaran/wavefc/render"
	"github.com/katalvlaran/wavefc/wave"
)

// generator runs jobs and writes their images.
type generator struct {
	out      string
	show     bool
	parallel int
	log      *slog.Logger
}

func newGenerator(g *globals) *generator {
	return &generator{out: g.out, show: g.show, parallel: g.parallel, log: g.logger()}
}

func (gen *generator) run(ctx context.Context, j config.Job) error {
	label := j.Label()
	log := gen.log.With("job", label)

	m, err := job.Load(j)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	if err := os.MkdirAll(gen.out, 0o755); err != nil {
		return err
	}

	seed := j.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	for shot := 0; shot < j.Screenshots; shot++ {
		res, err := runner.Solve(ctx, func() (*wave.Solver, error) {
			return m.NewSolver(j, wave.WithLogger(log))
		}, runner.Options{
			Attempts: j.Attempts,
			Parallel: gen.parallel,
			Seed:     seed,
			Limit:    j.Limit,
			Logger:   log,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
		seed = res.Seed + 1

		img := render.Scale(m.Render(res.Solver, m.RenderOptions), j.Scale)
		path := filepath.Join(gen.out, fmt.Sprintf("%s %d.png", label, shot))
		if err := job.WritePNG(path, img); err != nil {
			return err
		}
		log.Info("wrote", "path", path, "seed", res.Seed, "attempt", res.Attempt,
			"state", res.Solver.State().String())

		if gen.show {
			if err := termview.Show(img); err != nil {
				return err
			}
		}
	}
	return nil
}
