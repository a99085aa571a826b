// SPDX-License-Identifier: MIT
// Package: wavefc/wave
//
// errors.go - sentinel errors for the wave package.
//
// Error policy:
//   • Construction problems are returned from New before any cell work.
//   • A contradiction is not an error: Run reports it as false and State()
//     reports StateContradiction.
//   • Option constructors panic on meaningless values; the solver does not.

package wave

import "errors"

// ErrNilCatalog indicates New was called without a catalog.
var ErrNilCatalog = errors.New("wave: catalog is required")

// ErrBadDimensions indicates a width or height below 1.
var ErrBadDimensions = errors.New("wave: width and height must be at least 1")

// ErrGridTooSmall indicates a non-periodic grid smaller than the footprint N,
// which would leave no cell where a pattern fits.
var ErrGridTooSmall = errors.New("wave: non-periodic grid is smaller than the pattern footprint")
