package wave

// Test bridge: exposes ban/propagate to wave_test without widening the API.

// Ban removes pattern t from (x, y) without propagating.
func (s *Solver) Ban(x, y, t int) { s.ban(x+y*s.width, t) }

// Propagate drains the pending ban worklist.
func (s *Solver) Propagate() bool { return s.propagate() }

// WeightedIndex exposes the weighted draw used by observe.
var WeightedIndex = weightedIndex

// RNGFromSeed exposes the seed policy.
var RNGFromSeed = rngFromSeed
