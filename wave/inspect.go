package wave

import (
	"fmt"

	"github.com/katalvlaran/wavefc/catalog"
	"github.com/katalvlaran/wavefc/grid"
)

// Width returns the output grid width.
func (s *Solver) Width() int { return s.width }

// Height returns the output grid height.
func (s *Solver) Height() int { return s.height }

// Footprint returns the pattern footprint N.
func (s *Solver) Footprint() int { return s.cfg.footprint }

// Periodic reports whether the output grid wraps.
func (s *Solver) Periodic() bool { return s.cfg.periodic }

// Heuristic returns the configured cell-selection heuristic.
func (s *Solver) Heuristic() Heuristic { return s.cfg.heuristic }

// Catalog returns the shared, immutable catalog the solver was built with.
func (s *Solver) Catalog() *catalog.Catalog { return s.cat }

// State returns the run state.
func (s *Solver) State() State { return s.state }

// Steps returns the number of observe/propagate cycles since the last Clear.
func (s *Solver) Steps() int { return s.steps }

// Seed returns the seed of the current random stream.
func (s *Solver) Seed() int64 { return s.seed }

// Observed returns a copy of the observed grid: one pattern index per cell
// once the run is solved, -1 everywhere before that.
func (s *Solver) Observed() *grid.Grid[int] {
	if s.observed == nil {
		g, _ := grid.Filled(s.width, s.height, -1)
		return g
	}
	return s.observed.Clone()
}

// ObservedAt returns the observed pattern of (x, y), or -1.
func (s *Solver) ObservedAt(x, y int) int {
	if s.observed == nil {
		return -1
	}
	return s.observed.At(x, y)
}

// Possible reports whether pattern t is still a candidate at (x, y).
// Before the first Clear every pattern is possible.
func (s *Solver) Possible(x, y, t int) bool {
	s.mustContain(x, y)
	if s.state == StateUninitialized {
		return true
	}
	return s.possible(x+y*s.width, t)
}

// Candidates lists the remaining patterns of (x, y) in ascending order.
func (s *Solver) Candidates(x, y int) []int {
	s.mustContain(x, y)
	out := make([]int, 0, s.Remaining(x, y))
	for t := 0; t < s.t; t++ {
		if s.Possible(x, y, t) {
			out = append(out, t)
		}
	}
	return out
}

// Remaining returns the candidate count of (x, y).
func (s *Solver) Remaining(x, y int) int {
	s.mustContain(x, y)
	if s.state == StateUninitialized {
		return s.t
	}
	return s.sumsOfOnes[x+y*s.width]
}

// SumOfWeights returns the total weight of the candidates of (x, y).
func (s *Solver) SumOfWeights(x, y int) float64 {
	s.mustContain(x, y)
	if s.state == StateUninitialized {
		s.Init()
		return s.sumOfWeights
	}
	return s.sumsOfWeights[x+y*s.width]
}

// Entropy returns the weighted Shannon entropy of (x, y).
func (s *Solver) Entropy(x, y int) float64 {
	s.mustContain(x, y)
	if s.state == StateUninitialized {
		s.Init()
		return s.startingEntropy
	}
	return s.entropies[x+y*s.width]
}

// CellState classifies (x, y) by its candidate count.
func (s *Solver) CellState(x, y int) CellState {
	switch s.Remaining(x, y) {
	case 0:
		return Contradicted
	case 1:
		return Collapsed
	default:
		return Superposed
	}
}

// Active reports whether (x, y) takes part in observation and propagation.
func (s *Solver) Active(x, y int) bool {
	s.mustContain(x, y)
	return s.active(x + y*s.width)
}

// Contradiction returns the first cell that ran out of candidates during the
// current run, and false when there is none.
func (s *Solver) Contradiction() (x, y int, ok bool) {
	if !s.contradiction {
		return 0, 0, false
	}
	return s.contradictionCell % s.width, s.contradictionCell / s.width, true
}

func (s *Solver) mustContain(x, y int) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		panic(fmt.Sprintf("wave: (%d,%d) out of range %dx%d", x, y, s.width, s.height))
	}
}
