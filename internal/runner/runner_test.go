package runner_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefc/catalog"
	"github.com/katalvlaran/wavefc/internal/runner"
	"github.com/katalvlaran/wavefc/wave"
)

func checker(t *testing.T) *catalog.Catalog {
	t.Helper()
	var p catalog.Propagator
	for d := range p {
		p[d] = [][]int{{1}, {0}}
	}
	cat, err := catalog.New([]float64{1, 1}, p, nil)
	require.NoError(t, err)
	return cat
}

func TestSolve_FirstAttemptWins(t *testing.T) {
	cat := checker(t)
	var builds atomic.Int32
	build := func() (*wave.Solver, error) {
		builds.Add(1)
		return wave.New(cat, 4, 4, wave.WithPeriodic(true))
	}

	opts := runner.DefaultOptions()
	opts.Seed = 100
	res, err := runner.Solve(context.Background(), build, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Attempt)
	assert.Equal(t, int64(100), res.Seed)
	assert.Equal(t, wave.StateSolved, res.Solver.State())
	assert.Equal(t, int32(1), builds.Load())
}

func TestSolve_ParallelIsDeterministic(t *testing.T) {
	cat := checker(t)
	build := func() (*wave.Solver, error) {
		return wave.New(cat, 6, 6, wave.WithPeriodic(true))
	}
	opts := runner.Options{Attempts: 8, Parallel: 4, Seed: 5, Limit: -1}
	for i := 0; i < 5; i++ {
		res, err := runner.Solve(context.Background(), build, opts)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Attempt)
		assert.Equal(t, int64(5), res.Seed)
	}
}

func TestSolve_Exhausted(t *testing.T) {
	cat := checker(t)
	build := func() (*wave.Solver, error) {
		// Odd periodic grids cannot alternate.
		return wave.New(cat, 3, 3, wave.WithPeriodic(true))
	}
	_, err := runner.Solve(context.Background(), build, runner.Options{Attempts: 3, Parallel: 2, Limit: -1})
	assert.ErrorIs(t, err, runner.ErrExhausted)

	_, err = runner.Solve(context.Background(), build, runner.Options{})
	assert.ErrorIs(t, err, runner.ErrExhausted)
}

func TestSolve_BuildError(t *testing.T) {
	boom := errors.New("boom")
	_, err := runner.Solve(context.Background(), func() (*wave.Solver, error) { return nil, boom }, runner.DefaultOptions())
	assert.ErrorIs(t, err, boom)
}

func TestSolve_Cancelled(t *testing.T) {
	cat := checker(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runner.Solve(ctx, func() (*wave.Solver, error) {
		return wave.New(cat, 4, 4, wave.WithPeriodic(true))
	}, runner.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}
