package catalog

import (
	"fmt"
	"math"
	"sort"
)

// Propagator is the sparse compatibility table: Propagator[d][t1] lists the
// patterns allowed in the neighbor cell in direction d of a cell holding t1.
type Propagator [DirectionCount][][]int

// Catalog is an immutable set of T weighted patterns and their adjacency.
type Catalog struct {
	weights    []float64
	propagator Propagator
	names      []string
}

// Gap reports a pattern that has no compatible neighbor in a direction.
type Gap struct {
	Pattern   int
	Direction Direction
}

// New validates and deep-copies weights, propagator and (optional) names.
// Lists are sorted ascending and de-duplicated so iteration order is stable.
//
// Errors: ErrEmptyCatalog, ErrBadWeight, ErrShapeMismatch, ErrPatternIndex,
// ErrAsymmetric (all wrapped with the offending index).
//
// Complexity: O(D·T + E·log E) time, where E is the total number of
// compatibility entries.
func New(weights []float64, propagator Propagator, names []string) (*Catalog, error) {
	t := len(weights)
	if t == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, w := range weights {
		if !(w > 0) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: pattern %d has weight %v", ErrBadWeight, i, w)
		}
	}
	if names != nil && len(names) != t {
		return nil, fmt.Errorf("%w: %d names for %d patterns", ErrShapeMismatch, len(names), t)
	}

	c := &Catalog{weights: append([]float64(nil), weights...)}
	if names != nil {
		c.names = append([]string(nil), names...)
	}
	for d := range propagator {
		if len(propagator[d]) != t {
			return nil, fmt.Errorf("%w: direction %s has %d lists, want %d",
				ErrShapeMismatch, Direction(d), len(propagator[d]), t)
		}
		c.propagator[d] = make([][]int, t)
		for t1, list := range propagator[d] {
			cp := make([]int, 0, len(list))
			for _, t2 := range list {
				if t2 < 0 || t2 >= t {
					return nil, fmt.Errorf("%w: %d in list %s/%d", ErrPatternIndex, t2, Direction(d), t1)
				}
				cp = append(cp, t2)
			}
			c.propagator[d][t1] = dedupSorted(cp)
		}
	}
	if err := c.checkSymmetry(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromDense compresses dense[d][t1][t2] boolean matrices into a Catalog.
// The matrices must be T×T for every direction.
// Complexity: O(D·T²).
func FromDense(weights []float64, dense [DirectionCount][][]bool, names []string) (*Catalog, error) {
	t := len(weights)
	var p Propagator
	for d := range dense {
		if len(dense[d]) != t {
			return nil, fmt.Errorf("%w: dense direction %s has %d rows, want %d",
				ErrShapeMismatch, Direction(d), len(dense[d]), t)
		}
		p[d] = make([][]int, t)
		for t1, row := range dense[d] {
			if len(row) != t {
				return nil, fmt.Errorf("%w: dense row %s/%d has %d columns, want %d",
					ErrShapeMismatch, Direction(d), t1, len(row), t)
			}
			for t2, ok := range row {
				if ok {
					p[d][t1] = append(p[d][t1], t2)
				}
			}
		}
	}
	return New(weights, p, names)
}

// Len returns the pattern count T.
func (c *Catalog) Len() int { return len(c.weights) }

// Weight returns the weight of pattern t.
func (c *Catalog) Weight(t int) float64 { return c.weights[t] }

// Weights returns a copy of all weights.
func (c *Catalog) Weights() []float64 { return append([]float64(nil), c.weights...) }

// Compatible returns the patterns allowed next to t in direction d.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) Compatible(d Direction, t int) []int { return c.propagator[d][t] }

// Allows reports whether t2 may sit in direction d of t1.
// Complexity: O(log k) for a list of length k.
func (c *Catalog) Allows(d Direction, t1, t2 int) bool {
	list := c.propagator[d][t1]
	i := sort.SearchInts(list, t2)
	return i < len(list) && list[i] == t2
}

// Name returns the label of pattern t, or its decimal index when the
// catalog was built without names.
func (c *Catalog) Name(t int) string {
	if c.names == nil {
		return fmt.Sprintf("%d", t)
	}
	return c.names[t]
}

// Isolated lists every (pattern, direction) whose compatibility list is empty.
// Such a pattern can never survive propagation next to an in-grid neighbor.
func (c *Catalog) Isolated() []Gap {
	var gaps []Gap
	for _, d := range Directions {
		for t, list := range c.propagator[d] {
			if len(list) == 0 {
				gaps = append(gaps, Gap{Pattern: t, Direction: d})
			}
		}
	}
	return gaps
}

func (c *Catalog) checkSymmetry() error {
	for _, d := range Directions {
		od := d.Opposite()
		for t1, list := range c.propagator[d] {
			for _, t2 := range list {
				if !c.Allows(od, t2, t1) {
					return fmt.Errorf("%w: %d allows %d to its %s but not the reverse",
						ErrAsymmetric, t1, t2, d)
				}
			}
		}
	}
	return nil
}

func dedupSorted(a []int) []int {
	if len(a) < 2 {
		return a
	}
	sort.Ints(a)
	out := a[:1]
	for _, v := range a[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
