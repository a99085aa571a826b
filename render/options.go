package render

// Options tunes the preview of unsolved cells. Solved output is unaffected.
type Options struct {
	// Linear averages in linear RGB instead of sRGB.
	Linear bool
	// BlackBackground draws fully superposed tiled cells as black.
	BlackBackground bool
}

// DefaultOptions returns sRGB averaging without a black background.
func DefaultOptions() Options {
	return Options{}
}
