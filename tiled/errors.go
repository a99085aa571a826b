package tiled

import "errors"

var (
	// ErrEmptyTileSet indicates no tiles remain after subset filtering.
	ErrEmptyTileSet = errors.New("tiled: tile set has no tiles")
	// ErrDuplicateTile indicates two tiles share a name.
	ErrDuplicateTile = errors.New("tiled: duplicate tile name")
	// ErrUnknownTile indicates a neighbor or subset names a tile that is not declared.
	ErrUnknownTile = errors.New("tiled: unknown tile")
	// ErrUnknownSubset indicates the requested subset is not declared.
	ErrUnknownSubset = errors.New("tiled: unknown subset")
	// ErrBadOrientation indicates an orientation outside the tile's cardinality.
	ErrBadOrientation = errors.New("tiled: orientation out of range")
	// ErrUnknownSymmetry indicates a symmetry letter other than X, L, T, I, \ or F.
	ErrUnknownSymmetry = errors.New("tiled: unknown symmetry class")
	// ErrBadWeight indicates a negative, NaN or infinite tile weight, or an explicit zero in a document.
	ErrBadWeight = errors.New("tiled: tile weight must be positive and finite")
	// ErrIsolatedTile indicates an orientation with no neighbor in some direction.
	ErrIsolatedTile = errors.New("tiled: tile has no neighbor")
	// ErrBadDocument indicates a tile-set document that cannot be decoded.
	ErrBadDocument = errors.New("tiled: malformed tile-set document")
)
