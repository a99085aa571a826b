package wave

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// weightedIndex returns the first index whose running sum reaches r·Σweights.
// Zero weights are never returned unless every weight is zero, in which case
// the result is 0.
// Complexity: O(len(weights)).
func weightedIndex(weights []float64, r float64) int {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	threshold := r * sum

	var partial float64
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		partial += w
		last = i
		if partial >= threshold {
			return i
		}
	}
	return last
}
