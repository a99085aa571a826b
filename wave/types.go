package wave

import (
	"fmt"
	"strings"
)

// Heuristic selects which superposed cell is observed next.
type Heuristic int

const (
	// Entropy picks the cell with minimum weighted Shannon entropy.
	Entropy Heuristic = iota
	// MRV picks the cell with the fewest remaining candidates.
	MRV
	// Scanline picks the first superposed cell in row-major order.
	Scanline
)

// String implements fmt.Stringer.
func (h Heuristic) String() string {
	switch h {
	case Entropy:
		return "entropy"
	case MRV:
		return "mrv"
	case Scanline:
		return "scanline"
	default:
		return fmt.Sprintf("heuristic(%d)", int(h))
	}
}

// ParseHeuristic converts "entropy", "mrv" or "scanline" (case-insensitive).
func ParseHeuristic(s string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "entropy":
		return Entropy, nil
	case "mrv":
		return MRV, nil
	case "scanline":
		return Scanline, nil
	}
	return 0, fmt.Errorf("wave: unknown heuristic %q", s)
}

// State is the run state of a Solver.
type State int

const (
	// StateUninitialized: the wave has not been cleared yet.
	StateUninitialized State = iota
	// StateReady: the wave is consistent and more cells can be observed.
	StateReady
	// StatePropagating: a ban worklist is being drained.
	StatePropagating
	// StateSolved: every active cell is collapsed and Observed is final.
	StateSolved
	// StateContradiction: some cell ran out of candidates.
	StateContradiction
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StatePropagating:
		return "propagating"
	case StateSolved:
		return "solved"
	case StateContradiction:
		return "contradiction"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// CellState classifies one cell by its candidate count.
type CellState int

const (
	// Superposed: more than one candidate.
	Superposed CellState = iota
	// Collapsed: exactly one candidate.
	Collapsed
	// Contradicted: no candidates left.
	Contradicted
)

// String implements fmt.Stringer.
func (c CellState) String() string {
	switch c {
	case Superposed:
		return "superposed"
	case Collapsed:
		return "collapsed"
	case Contradicted:
		return "contradicted"
	default:
		return fmt.Sprintf("cellstate(%d)", int(c))
	}
}
