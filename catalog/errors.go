package catalog

import "errors"

var (
	// ErrEmptyCatalog indicates a catalog with no patterns.
	ErrEmptyCatalog = errors.New("catalog: at least one pattern is required")
	// ErrBadWeight indicates a non-positive or non-finite weight.
	ErrBadWeight = errors.New("catalog: weights must be positive and finite")
	// ErrShapeMismatch indicates propagator lists of the wrong length.
	ErrShapeMismatch = errors.New("catalog: propagator shape does not match pattern count")
	// ErrPatternIndex indicates a compatibility entry outside [0,T).
	ErrPatternIndex = errors.New("catalog: pattern index out of range")
	// ErrAsymmetric indicates t2∈P[d][t1] without t1∈P[opp(d)][t2].
	ErrAsymmetric = errors.New("catalog: compatibility is not symmetric under opposite directions")
)
