// Package overlap derives a pattern catalog directly from a sample bitmap
// using the overlapping model of Wave Function Collapse.
//
// What:
//
//   - Quantizes the sample to a palette (first-seen order).
//   - Extracts every N×N window (wrapping when the input is periodic) and up
//     to eight dihedral variants of each.
//   - De-duplicates windows by content; the weight of a pattern is the number
//     of times it occurred.
//   - Two patterns are compatible in a direction when they agree on every
//     pixel of their overlap after shifting by that direction's unit offset.
//
// Options:
//
//   - N:             pattern edge length (≥1).
//   - PeriodicInput: treat the sample as a torus when extracting windows.
//   - Symmetry:      how many of the 8 dihedral variants to keep (1..8).
//   - Ground:        pin the last pattern to the bottom row of the output.
//
// Complexity:
//
//   - Extraction:    O(SX·SY·8·N²).
//   - Compatibility: O(4·T²·N²), computed once per Build.
//
// Errors:
//
//   - ErrBadPatternSize:  N ≤ 0.
//   - ErrSampleTooSmall:  sample narrower or shorter than N without periodic input.
//   - ErrBadSymmetry:     Symmetry outside 1..8.
//   - ErrPaletteTooLarge: more than 256 distinct colors.
//   - grid.ErrEmptyGrid, grid.ErrNonRectangular: malformed sample.
package overlap
