// Package grid provides Grid[T], a rectangular row-major 2-D container used
// for sample bitmaps, tile images and solver output.
//
// What:
//
//   - Grid[T] stores Width×Height values in a single backing slice.
//   - Cells are addressed by (x, y) with x growing right and y growing down.
//   - Index/Coordinate convert between (x, y) and the flat row-major index.
//   - Wrap maps any (x, y) onto the torus, for periodic sampling.
//   - Components labels 4-connected regions of a solved output.
//
// Access:
//
//   - At/Set panic on out-of-range coordinates, the same way slice indexing does.
//   - Get is the non-panicking variant and reports whether (x, y) was in bounds.
//
// Complexity:
//
//   - At, Set, Get, Index, Coordinate, Wrap: O(1).
//   - From2D, Rows, Clone, Components:        O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadDimensions: requested width or height is below 1.
package grid
