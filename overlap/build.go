package overlap

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/katalvlaran/wavefc/catalog"
	"github.com/katalvlaran/wavefc/grid"
	"github.com/katalvlaran/wavefc/symmetry"
)

// SampleFromImage converts any image into rows of RGBA colors.
func SampleFromImage(img image.Image) [][]color.RGBA {
	b := img.Bounds()
	rows := make([][]color.RGBA, b.Dy())
	for y := range rows {
		rows[y] = make([]color.RGBA, b.Dx())
		for x := range rows[y] {
			rows[y][x] = color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
		}
	}
	return rows
}

// Build extracts the pattern catalog of sample (rows[y][x]).
//
// Steps:
//  1. Validate options and the sample shape (fail fast, no pattern work).
//  2. Quantize colors to palette indices.
//  3. For each window position, generate the dihedral variants, keep the first
//     opts.Symmetry, and count them into the catalog (first-seen order).
//  4. Compute directional compatibility by pixel overlap for all pairs.
//
// Complexity: see package doc.
func Build(sample [][]color.RGBA, opts Options) (*Model, error) {
	if opts.N <= 0 {
		return nil, fmt.Errorf("%w: N=%d", ErrBadPatternSize, opts.N)
	}
	if opts.Symmetry < 1 || opts.Symmetry > symmetry.Count {
		return nil, fmt.Errorf("%w: got %d", ErrBadSymmetry, opts.Symmetry)
	}
	src, err := grid.From2D(sample)
	if err != nil {
		return nil, err
	}
	if !opts.PeriodicInput && (src.Width < opts.N || src.Height < opts.N) {
		return nil, fmt.Errorf("%w: %dx%d sample, N=%d", ErrSampleTooSmall, src.Width, src.Height, opts.N)
	}

	palette, indexed, err := quantize(src)
	if err != nil {
		return nil, err
	}

	patterns, weights := extract(indexed, len(palette), opts)

	cat, err := catalog.New(weights, overlapPropagator(patterns, opts.N), nil)
	if err != nil {
		return nil, err
	}
	return &Model{
		N:        opts.N,
		Palette:  palette,
		Patterns: patterns,
		Catalog:  cat,
		Symmetry: opts.Symmetry,
		Ground:   opts.Ground,
	}, nil
}

// quantize replaces each color by its index in a first-seen palette.
func quantize(src *grid.Grid[color.RGBA]) ([]color.RGBA, *grid.Grid[uint8], error) {
	var palette []color.RGBA
	lookup := make(map[color.RGBA]uint8)
	out, _ := grid.New[uint8](src.Width, src.Height)

	for i := 0; i < src.Len(); i++ {
		c := src.AtIndex(i)
		k, ok := lookup[c]
		if !ok {
			if len(palette) == MaxColors {
				return nil, nil, ErrPaletteTooLarge
			}
			k = uint8(len(palette))
			lookup[c] = k
			palette = append(palette, c)
		}
		out.SetIndex(i, k)
	}
	return palette, out, nil
}

// extract scans all windows and returns the de-duplicated patterns and their
// occurrence counts.
func extract(sample *grid.Grid[uint8], colors int, opts Options) ([][]uint8, []float64) {
	n := opts.N
	xmax, ymax := sample.Width, sample.Height
	if !opts.PeriodicInput {
		xmax, ymax = sample.Width-n+1, sample.Height-n+1
	}

	var (
		patterns [][]uint8
		weights  []float64
		byHash   = make(map[uint64][]int)
	)
	for y := 0; y < ymax; y++ {
		for x := 0; x < xmax; x++ {
			window := symmetry.Build(n, func(dx, dy int) uint8 {
				return sample.At((x+dx)%sample.Width, (y+dy)%sample.Height)
			})
			variants, _ := symmetry.Variants(window, n)

			for k := 0; k < opts.Symmetry; k++ {
				p := variants[k]
				h := patternHash(p, colors)

				found := -1
				for _, idx := range byHash[h] {
					if slices.Equal(patterns[idx], p) {
						found = idx
						break
					}
				}
				if found >= 0 {
					weights[found]++
					continue
				}
				byHash[h] = append(byHash[h], len(patterns))
				patterns = append(patterns, p)
				weights = append(weights, 1)
			}
		}
	}
	return patterns, weights
}

// patternHash is the positional polynomial Σ p[len-1-i]·C^i. It wraps on
// overflow for large palettes, so callers confirm matches by content.
func patternHash(p []uint8, colors int) uint64 {
	var result, power uint64 = 0, 1
	for i := range p {
		result += uint64(p[len(p)-1-i]) * power
		power *= uint64(colors)
	}
	return result
}

// agrees reports whether p2, shifted by (dx,dy), matches p1 on their overlap.
func agrees(p1, p2 []uint8, dx, dy, n int) bool {
	xmin, xmax := 0, n
	if dx < 0 {
		xmax = dx + n
	} else {
		xmin = dx
	}
	ymin, ymax := 0, n
	if dy < 0 {
		ymax = dy + n
	} else {
		ymin = dy
	}
	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			if p1[x+n*y] != p2[x-dx+n*(y-dy)] {
				return false
			}
		}
	}
	return true
}

// overlapPropagator evaluates agrees for every ordered pair and direction.
func overlapPropagator(patterns [][]uint8, n int) catalog.Propagator {
	var p catalog.Propagator
	t := len(patterns)
	for _, d := range catalog.Directions {
		p[d] = make([][]int, t)
		for t1 := 0; t1 < t; t1++ {
			for t2 := 0; t2 < t; t2++ {
				if agrees(patterns[t1], patterns[t2], d.DX(), d.DY(), n) {
					p[d][t1] = append(p[d][t1], t2)
				}
			}
		}
	}
	return p
}
