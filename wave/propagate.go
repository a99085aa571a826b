package wave

import (
	"math"

	"github.com/katalvlaran/wavefc/catalog"
)

// ban removes pattern t from cell i, updates the cached aggregates and pushes
// the removal on the worklist. Banning an already-impossible pattern is a no-op.
// Complexity: O(1).
func (s *Solver) ban(i, t int) {
	w := i*s.words + t/64
	bit := uint64(1) << uint(t%64)
	if s.wave[w]&bit == 0 {
		return
	}
	s.wave[w] &^= bit

	base := (i*s.t + t) * catalog.DirectionCount
	for d := 0; d < catalog.DirectionCount; d++ {
		s.compatible[base+d] = 0
	}
	s.stack = append(s.stack, banned{cell: i, pattern: t})

	s.sumsOfOnes[i]--
	s.sumsOfWeights[i] -= s.weights[t]
	s.sumsOfWeightLogWeights[i] -= s.weightLogWeights[t]
	if s.sumsOfOnes[i] == 0 {
		s.sumsOfWeights[i] = 0
		s.sumsOfWeightLogWeights[i] = 0
		s.entropies[i] = 0
		if !s.contradiction {
			s.contradiction = true
			s.contradictionCell = i
		}
		return
	}
	sum := s.sumsOfWeights[i]
	s.entropies[i] = math.Log(sum) - s.sumsOfWeightLogWeights[i]/sum
}

// propagate drains the worklist. For every removed (cell, pattern) it walks
// the four neighbors and decrements the support of each pattern that the
// removed one allowed there; a support reaching zero bans that pattern too.
// In non-periodic mode neighbors whose footprint leaves the grid are skipped.
// It reports false once any cell runs out of candidates.
// Complexity: O(ΣK) over all bans, where K is the compatibility list length.
func (s *Solver) propagate() bool {
	for len(s.stack) > 0 && !s.contradiction {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		x1, y1 := top.cell%s.width, top.cell/s.width
		for _, d := range catalog.Directions {
			x2, y2, ok := s.neighbor(x1, y1, d)
			if !ok {
				continue
			}
			i2 := x2 + y2*s.width
			for _, t2 := range s.cat.Compatible(d, top.pattern) {
				idx := (i2*s.t+t2)*catalog.DirectionCount + int(d)
				s.compatible[idx]--
				if s.compatible[idx] == 0 {
					s.ban(i2, t2)
				}
			}
		}
	}
	if s.contradiction {
		s.stack = s.stack[:0]
		return false
	}
	return true
}

// neighbor returns the cell in direction d of (x, y), wrapping in periodic
// mode and rejecting cells outside the active area otherwise.
func (s *Solver) neighbor(x, y int, d catalog.Direction) (int, int, bool) {
	x2, y2 := x+d.DX(), y+d.DY()
	if !s.cfg.periodic {
		n := s.cfg.footprint
		if x2 < 0 || y2 < 0 || x2+n > s.width || y2+n > s.height {
			return 0, 0, false
		}
		return x2, y2, true
	}
	if x2 < 0 {
		x2 += s.width
	} else if x2 >= s.width {
		x2 -= s.width
	}
	if y2 < 0 {
		y2 += s.height
	} else if y2 >= s.height {
		y2 -= s.height
	}
	return x2, y2, true
}
