// Package config reads batch generation jobs from a YAML file.
//
// A file lists jobs of two kinds, overlapping (learn patterns from a sample
// image) and tiled (expand a declared tile set), plus the directory results
// are written to:
//
//	output_dir: out
//	jobs:
//	  - {name: flowers, kind: overlapping, sample: samples/Flowers.png, n: 3, ground: true}
//	  - {name: knots,   kind: tiled, tileset: tilesets/Knots.yaml, subset: Dense, size: 24}
//
// Omitted fields take the defaults of DefaultJob. Relative sample and tile-set
// paths are resolved against the directory of the file passed to Load.
package config
