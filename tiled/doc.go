// Package tiled builds a pattern catalog from a declared tile set: named
// tiles with a symmetry class and weight, plus a list of left/right
// neighbor pairs.
//
// What:
//
//   - Every tile expands into its distinct orientations (1, 2, 4 or 8,
//     depending on its symmetry class). Each orientation is one pattern.
//   - Each declared neighbor pair is closed under the symmetry group: the
//     horizontal pair, its rotation into a vertical pair, and their
//     reflections and half-turns are all marked compatible.
//   - Right and up compatibilities are the transposes of left and down.
//   - A pattern left without any neighbor in some direction is an error.
//
// Symmetry classes (a = quarter turn, b = reflection):
//
//	X   1 orientation   fully symmetric
//	L   4 orientations  corner
//	T   4 orientations  T-junction
//	I   2 orientations  straight
//	\   2 orientations  diagonal
//	F   8 orientations  no symmetry
//
// The loader reads the usual tile-set document (set → tiles/neighbors/subsets)
// in YAML or JSON form.
//
// Complexity: O(T²) memory for the dense table during Build, O(#neighbors)
// marking work, O(4·T²) compression.
//
// Errors:
//
//   - ErrEmptyTileSet, ErrDuplicateTile, ErrUnknownTile, ErrUnknownSubset.
//   - ErrBadOrientation, ErrUnknownSymmetry, ErrBadWeight.
//   - ErrIsolatedTile (one per gap, combined with errors.Join).
//   - ErrBadDocument from Decode/Load.
package tiled
