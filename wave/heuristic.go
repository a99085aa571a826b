package wave

import "math"

// tieNoise scales the uniform jitter that breaks ties between cells of equal
// entropy or equal remaining count.
const tieNoise = 1e-6

// nextCell returns the next superposed active cell to observe, or -1 when
// every active cell is collapsed.
//
// Scanline resumes from the last returned index. Entropy and MRV scan all
// active cells with more than one candidate and keep the minimum of
// score+noise; on equal scores the earlier row-major cell wins unless the
// noise says otherwise.
func (s *Solver) nextCell() int {
	if s.cfg.heuristic == Scanline {
		for i := s.observedSoFar; i < s.cells; i++ {
			if !s.active(i) {
				continue
			}
			if s.sumsOfOnes[i] > 1 {
				s.observedSoFar = i + 1
				return i
			}
		}
		return -1
	}

	best := math.Inf(1)
	argmin := -1
	for i := 0; i < s.cells; i++ {
		if !s.active(i) {
			continue
		}
		remaining := s.sumsOfOnes[i]
		if remaining <= 1 {
			continue
		}
		score := s.entropies[i]
		if s.cfg.heuristic == MRV {
			score = float64(remaining)
		}
		if score <= best {
			noisy := score + tieNoise*s.rng.Float64()
			if noisy < best {
				best = noisy
				argmin = i
			}
		}
	}
	return argmin
}

// observe collapses cell i to one pattern drawn with probability
// proportional to weight among its remaining candidates, and bans the rest.
// Complexity: O(T) plus the bans.
func (s *Solver) observe(i int) {
	for t := 0; t < s.t; t++ {
		if s.possible(i, t) {
			s.distribution[t] = s.weights[t]
		} else {
			s.distribution[t] = 0
		}
	}
	r := weightedIndex(s.distribution, s.rng.Float64())
	for t := 0; t < s.t; t++ {
		if t != r && s.possible(i, t) {
			s.ban(i, t)
		}
	}
}
