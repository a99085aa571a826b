// Package wave implements the Wave Function Collapse solver shared by the
// overlapping and tiled models.
//
// What:
//
//   - The wave holds, for every cell of a Width×Height grid, the set of
//     patterns that are still possible there.
//   - Support counters track, per cell, pattern and direction, how many
//     compatible neighbor patterns remain. A counter reaching zero bans the
//     pattern from the cell.
//   - Per-cell aggregates (count, Σw, Σw·log w, entropy) are maintained
//     incrementally on every ban.
//
// Loop:
//
//  1. Select the next cell (Entropy, MRV or Scanline heuristic).
//  2. Observe: pick one candidate by weight and ban the others.
//  3. Propagate: drain the ban worklist, updating neighbor counters.
//  4. Stop on contradiction (a cell with no candidates) or when no
//     superposed cell remains, in which case the observed grid is written.
//
// Run states:
//
//	StateUninitialized → StateReady → StatePropagating → {StateSolved | StateContradiction}
//
// Failure policy: a contradiction ends the run. The solver never backtracks;
// callers retry with another seed.
//
// Concurrency: a Solver is not safe for concurrent use. The Catalog it reads
// is immutable and may be shared between solvers.
//
// Complexity (C cells, T patterns, E compatibility entries):
//
//   - Init:      O(C·T) memory.
//   - Clear:     O(C·T).
//   - Propagate: O(bans·E/T) amortized per run, bounded by O(C·E).
//   - Select:    O(C) per step (Entropy/MRV), amortized O(1) for Scanline.
package wave
