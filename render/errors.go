package render

import "errors"

var (
	// ErrMissingImage indicates a tile orientation without a source image.
	ErrMissingImage = errors.New("render: missing tile image")
	// ErrTileSize indicates a non-square tile image or one whose size differs
	// from the first tile.
	ErrTileSize = errors.New("render: tile images must be square and equally sized")
)
