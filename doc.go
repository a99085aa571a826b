// Package wavefc is a Wave Function Collapse toolkit: it grows large images
// (or tile maps) whose local structure matches a small sample or a tile set.
//
// 🚀 What is wavefc?
//
//	A pure-Go, deterministic WFC engine with two model front ends:
//		• Overlapping model: N×N patterns cut from a sample bitmap
//		• Simple tiled model: tiles with symmetry classes and neighbor rules
//		• One solver: bitset wave, support counters, entropy/MRV/scanline picks
//		• Renderers: observed images and fuzzy in-progress previews
//
// ✨ Why choose wavefc?
//
//   - Same seed, same output – every random draw comes from one seeded source
//   - Step-by-step – RunOneStep exposes every intermediate wave state
//   - Batteries included – YAML job files, a CLI and an interactive viewer
//
// Everything is organized under these subpackages:
//
//	grid/      - Grid[T], a row-major 2-D container + connected regions
//	symmetry/  - rotate/mirror square grids, the 8 dihedral variants
//	catalog/   - patterns, weights and the directional compatibility table
//	overlap/   - overlapping model: sample → pattern catalog
//	tiled/     - simple tiled model: tile set (YAML) → pattern catalog
//	wave/      - the solver: Init, Clear, Run, RunOneStep, accessors
//	render/    - wave state → *image.RGBA, plus nearest-neighbor scaling
//	config/    - YAML job lists (samples.yaml-style)
//	cmd/wfc    - batch/one-shot generator CLI
//	cmd/wfcview - ebiten viewer that animates the solve
//
// Quick ASCII example (checkerboard catalog, 4×2, periodic):
//
//	#.#.
//	.#.#
//
// Every horizontal and vertical neighbor pair differs, exactly as in the sample.
//
//	go get github.com/katalvlaran/wavefc
package wavefc
