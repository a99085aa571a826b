// Package render turns a solver's wave into pixels.
//
// Two renderers, one per model:
//
//   - Overlap: each output pixel takes the color of the observed pattern
//     covering it. Before the run is solved the pixel is the plain average of
//     every candidate pattern, at every footprint offset, that covers it.
//   - Tiled: each cell is drawn as its tile image. Before the run is solved
//     a cell is the weight-averaged image of its candidates, or black when
//     BlackBackground is set and the cell is still fully superposed.
//
// Colors are averaged with go-colorful, in sRGB by default or in linear RGB
// with Options.Linear.
//
// The renderers read the solver through its accessors only and never modify it.
package render
