// Package catalog holds the immutable pattern catalog consumed by the wave
// solver: per-pattern weights plus a 4-directional compatibility table.
//
// What:
//
//   - Catalog is produced by a builder (overlap, tiled) and never mutated
//     afterwards, so a single Catalog may back many solvers at once.
//   - Compatible(d, t) lists the patterns that may occupy the neighbor of a
//     cell holding t, in direction d.
//
// Directions:
//
//	Left (dx=-1), Down (dy=+1), Right (dx=+1), Up (dy=-1)
//
// with opposite pairs Left↔Right and Down↔Up. Every Catalog satisfies
//
//	t2 ∈ Compatible(d, t1)  ⇔  t1 ∈ Compatible(d.Opposite(), t2)
//
// and New rejects tables that do not.
//
// Errors:
//
//   - ErrEmptyCatalog:  zero patterns.
//   - ErrBadWeight:     a weight is ≤0, NaN or ±Inf.
//   - ErrShapeMismatch: propagator lists disagree with the weight count.
//   - ErrPatternIndex:  a compatibility entry is outside [0,T).
//   - ErrAsymmetric:    the opposite-direction symmetry is violated.
package catalog
