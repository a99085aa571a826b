package config

import "errors"

var (
	// ErrNoJobs indicates a file without any job.
	ErrNoJobs = errors.New("config: no jobs")
	// ErrBadKind indicates a kind other than overlapping or tiled.
	ErrBadKind = errors.New("config: kind must be overlapping or tiled")
	// ErrMissingSample indicates an overlapping job without a sample image.
	ErrMissingSample = errors.New("config: overlapping job needs a sample")
	// ErrMissingTileSet indicates a tiled job without a tile-set file.
	ErrMissingTileSet = errors.New("config: tiled job needs a tileset")
	// ErrBadHeuristic indicates an unknown heuristic name.
	ErrBadHeuristic = errors.New("config: unknown heuristic")
	// ErrBadSize indicates a non-positive size, pattern size, attempt count,
	// screenshot count or scale.
	ErrBadSize = errors.New("config: sizes and counts must be positive")
)
