// Package runner retries a solver over consecutive seeds until one run
// succeeds.
//
// Attempts may run in parallel, each on its own solver. The winner is always
// the successful attempt with the lowest index, so the result depends only
// on the options and never on scheduling.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wavefc/wave"
)

// ErrExhausted indicates every attempt ended in a contradiction.
var ErrExhausted = errors.New("runner: all attempts ended in contradiction")

// Options configures Solve.
type Options struct {
	// Attempts is the number of seeds tried: Seed, Seed+1, ...
	Attempts int
	// Parallel bounds the attempts in flight.
	Parallel int
	// Seed is the first seed.
	Seed int64
	// Limit is passed to wave.Solver.Run.
	Limit int
	// Logger receives one record per attempt. Nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns 10 sequential attempts from seed 1 without a step limit.
func DefaultOptions() Options {
	return Options{Attempts: 10, Parallel: 1, Seed: 1, Limit: -1}
}

// Result describes the winning attempt.
type Result struct {
	Solver  *wave.Solver
	Seed    int64
	Attempt int
}

// Solve runs up to opts.Attempts attempts. build is called once per attempt
// and must return a fresh solver; the catalog behind it may be shared.
//
// An attempt succeeds when Run returns true. Attempts with a higher index
// than a known success are skipped. A build error or a cancelled context
// stops the search and is returned as is.
func Solve(ctx context.Context, build func() (*wave.Solver, error), opts Options) (Result, error) {
	if opts.Attempts < 1 {
		return Result{}, fmt.Errorf("%w: %d attempts", ErrExhausted, opts.Attempts)
	}
	if opts.Parallel < 1 {
		opts.Parallel = 1
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var (
		mu   sync.Mutex
		best = Result{Attempt: -1}
	)
	superseded := func(i int) bool {
		mu.Lock()
		defer mu.Unlock()
		return best.Attempt >= 0 && best.Attempt < i
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)
	for i := 0; i < opts.Attempts; i++ {
		if gctx.Err() != nil || superseded(i) {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if superseded(i) {
				return nil
			}
			s, err := build()
			if err != nil {
				return err
			}
			seed := opts.Seed + int64(i)
			ok := s.Run(seed, opts.Limit)
			log.Debug("runner: attempt", "attempt", i, "seed", seed, "ok", ok, "steps", s.Steps(), "state", s.State().String())
			if !ok {
				return nil
			}

			mu.Lock()
			if best.Attempt < 0 || i < best.Attempt {
				best = Result{Solver: s, Seed: seed, Attempt: i}
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if best.Attempt >= 0 {
		log.Info("runner: solved", "attempt", best.Attempt, "seed", best.Seed)
		return best, nil
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{}, fmt.Errorf("%w: %d attempts from seed %d", ErrExhausted, opts.Attempts, opts.Seed)
}
