package wave

import (
	"fmt"
	"log/slog"
	"math"
	"math/bits"
	"math/rand"

	"github.com/katalvlaran/wavefc/catalog"
	"github.com/katalvlaran/wavefc/grid"
)

// banned is one worklist entry: pattern t was removed from cell i.
type banned struct {
	cell, pattern int
}

// Solver owns the wave, support counters and aggregates of one output grid.
type Solver struct {
	cat           *catalog.Catalog
	width, height int
	cells         int
	t             int
	words         int // uint64 words per cell bitset
	cfg           config
	log           *slog.Logger

	// Constants per catalog, filled by Init.
	weights               []float64
	weightLogWeights      []float64
	sumOfWeights          float64
	sumOfWeightLogWeights float64
	startingEntropy       float64

	// Per-run state, reset by Clear.
	wave                   []uint64
	compatible             []int32 // ((cell*T)+t)*4 + d
	sumsOfOnes             []int
	sumsOfWeights          []float64
	sumsOfWeightLogWeights []float64
	entropies              []float64
	observed               *grid.Grid[int]
	stack                  []banned
	distribution           []float64
	observedSoFar          int

	rng   *rand.Rand
	seed  int64
	state State
	steps int

	contradiction     bool
	contradictionCell int
}

// New validates the grid against cat and the options, and returns a Solver in
// StateUninitialized. No per-cell memory is allocated until Init.
//
// Errors: ErrNilCatalog, ErrBadDimensions, ErrGridTooSmall.
func New(cat *catalog.Catalog, width, height int, opts ...Option) (*Solver, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	cfg := newConfig(opts...)
	if !cfg.periodic && (width < cfg.footprint || height < cfg.footprint) {
		return nil, fmt.Errorf("%w: %dx%d with N=%d", ErrGridTooSmall, width, height, cfg.footprint)
	}
	t := cat.Len()
	return &Solver{
		cat:    cat,
		width:  width,
		height: height,
		cells:  width * height,
		t:      t,
		words:  (t + 63) / 64,
		cfg:    cfg,
		log:    cfg.logger,
		state:  StateUninitialized,
	}, nil
}

// Init allocates all per-cell buffers and precomputes the catalog constants.
// It is idempotent, leaves the state untouched and is called lazily by Clear.
// Complexity: O(C·T) memory.
func (s *Solver) Init() {
	if s.wave != nil {
		return
	}
	s.weights = s.cat.Weights()
	s.weightLogWeights = make([]float64, s.t)
	s.sumOfWeights, s.sumOfWeightLogWeights = 0, 0
	for t, w := range s.weights {
		s.weightLogWeights[t] = w * math.Log(w)
		s.sumOfWeights += w
		s.sumOfWeightLogWeights += s.weightLogWeights[t]
	}
	s.startingEntropy = math.Log(s.sumOfWeights) - s.sumOfWeightLogWeights/s.sumOfWeights

	s.wave = make([]uint64, s.cells*s.words)
	s.compatible = make([]int32, s.cells*s.t*catalog.DirectionCount)
	s.sumsOfOnes = make([]int, s.cells)
	s.sumsOfWeights = make([]float64, s.cells)
	s.sumsOfWeightLogWeights = make([]float64, s.cells)
	s.entropies = make([]float64, s.cells)
	s.observed, _ = grid.Filled(s.width, s.height, -1)
	s.stack = make([]banned, 0, s.cells*s.t)
	s.distribution = make([]float64, s.t)
	if s.rng == nil {
		s.rng = rngFromSeed(s.seed)
	}
}

// Clear resets every cell to the full candidate set and the starting
// aggregates. With the ground option it then bans the last pattern outside
// the bottom row and every other pattern inside it, and propagates.
// Complexity: O(C·T).
func (s *Solver) Clear() {
	s.Init()

	full := s.fullMask()
	for i := 0; i < s.cells; i++ {
		copy(s.wave[i*s.words:(i+1)*s.words], full)
		for t := 0; t < s.t; t++ {
			base := (i*s.t + t) * catalog.DirectionCount
			for _, d := range catalog.Directions {
				s.compatible[base+int(d)] = int32(len(s.cat.Compatible(d.Opposite(), t)))
			}
		}
		s.sumsOfOnes[i] = s.t
		s.sumsOfWeights[i] = s.sumOfWeights
		s.sumsOfWeightLogWeights[i] = s.sumOfWeightLogWeights
		s.entropies[i] = s.startingEntropy
		s.observed.SetIndex(i, -1)
	}
	s.stack = s.stack[:0]
	s.observedSoFar = 0
	s.steps = 0
	s.contradiction = false
	s.contradictionCell = -1
	s.state = StateReady

	if s.cfg.ground {
		last := s.t - 1
		bottom := (s.height - 1) * s.width
		for x := 0; x < s.width; x++ {
			for t := 0; t < last; t++ {
				s.ban(x+bottom, t)
			}
			for y := 0; y < s.height-1; y++ {
				s.ban(x+y*s.width, last)
			}
		}
		if !s.propagate() {
			s.state = StateContradiction
		}
	}
}

// Reseed restarts the random stream without touching the wave.
func (s *Solver) Reseed(seed int64) {
	s.seed = seed
	s.rng = rngFromSeed(seed)
}

// Run seeds the RNG, clears the wave and performs up to limit
// select/observe/propagate cycles (unbounded when limit < 0).
//
// It returns false as soon as propagation hits a contradiction; the wave is
// left as is and the caller should retry with another seed. It returns true
// when the wave is solved, or when the limit was reached without
// contradiction (the partial wave stays consistent and State is StateReady).
func (s *Solver) Run(seed int64, limit int) bool {
	s.Reseed(seed)
	s.Clear()
	s.log.Debug("wave: run",
		"seed", seed, "limit", limit,
		"width", s.width, "height", s.height, "patterns", s.t,
		"heuristic", s.cfg.heuristic.String())

	if s.state == StateContradiction {
		s.logContradiction()
		return false
	}
	for l := 0; limit < 0 || l < limit; l++ {
		if !s.step() {
			return false
		}
		if s.state == StateSolved {
			return true
		}
	}
	if s.HasCompleted() {
		s.finalize()
	}
	return true
}

// RunOneStep performs exactly one select/observe/propagate cycle. On first
// use it initializes and clears the wave. When no superposed cell is left it
// writes the observed grid instead. Once the run is solved or contradicted
// further calls do nothing. It returns the resulting state.
func (s *Solver) RunOneStep() State {
	if s.state == StateUninitialized {
		s.Clear()
	}
	if s.state == StateReady {
		s.step()
	}
	return s.state
}

// step runs one cycle and reports whether the wave is still consistent.
func (s *Solver) step() bool {
	node := s.nextCell()
	if node < 0 {
		s.finalize()
		return true
	}

	s.state = StatePropagating
	s.observe(node)
	ok := s.propagate()
	s.steps++
	if !ok {
		s.state = StateContradiction
		s.logContradiction()
		return false
	}
	s.state = StateReady
	return true
}

// finalize writes the first remaining candidate of every cell into the
// observed grid and marks the run solved.
func (s *Solver) finalize() {
	for i := 0; i < s.cells; i++ {
		s.observed.SetIndex(i, s.firstCandidate(i))
	}
	s.state = StateSolved
	s.log.Debug("wave: solved", "seed", s.seed, "steps", s.steps)
}

func (s *Solver) logContradiction() {
	x, y := s.contradictionCell%s.width, s.contradictionCell/s.width
	s.log.Debug("wave: contradiction", "seed", s.seed, "steps", s.steps, "x", x, "y", y)
}

// HasCompleted reports whether every active cell holds exactly one
// candidate. Active cells are all cells in periodic mode, and the cells whose
// footprint fits inside the grid otherwise.
func (s *Solver) HasCompleted() bool {
	if s.state == StateUninitialized {
		return false
	}
	for i := 0; i < s.cells; i++ {
		if s.active(i) && s.sumsOfOnes[i] != 1 {
			return false
		}
	}
	return true
}

// active reports whether cell i may be observed and propagated into.
func (s *Solver) active(i int) bool {
	if s.cfg.periodic {
		return true
	}
	n := s.cfg.footprint
	return i%s.width+n <= s.width && i/s.width+n <= s.height
}

func (s *Solver) fullMask() []uint64 {
	mask := make([]uint64, s.words)
	for w := range mask {
		mask[w] = ^uint64(0)
	}
	if r := s.t % 64; r != 0 {
		mask[s.words-1] = (uint64(1) << uint(r)) - 1
	}
	return mask
}

func (s *Solver) possible(i, t int) bool {
	return s.wave[i*s.words+t/64]&(uint64(1)<<uint(t%64)) != 0
}

func (s *Solver) firstCandidate(i int) int {
	for w := 0; w < s.words; w++ {
		if word := s.wave[i*s.words+w]; word != 0 {
			return w*64 + bits.TrailingZeros64(word)
		}
	}
	return -1
}
