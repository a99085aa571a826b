package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/wavefc/symmetry"
	"github.com/katalvlaran/wavefc/tiled"
	"github.com/katalvlaran/wavefc/wave"
)

// Atlas holds one square pixel block per tiled pattern.
type Atlas struct {
	size  int
	tiles [][]color.RGBA
}

// NewAtlas prepares the pixels of every pattern of m.
//
// For unique tile sets images is keyed by pattern name ("name k"). Otherwise
// it is keyed by tile name, and orientations 1..3 are successive quarter
// turns of orientation 0 while 4..7 mirror orientations 0..3.
func NewAtlas(m *tiled.Model, images map[string]image.Image) (*Atlas, error) {
	a := &Atlas{tiles: make([][]color.RGBA, len(m.Names))}
	for t := range m.Names {
		k := m.Orientation[t]
		switch {
		case m.Unique:
			px, err := a.load(images, m.Names[t])
			if err != nil {
				return nil, err
			}
			a.tiles[t] = px
		case k == 0:
			px, err := a.load(images, m.Tiles[m.Base[t]].Name)
			if err != nil {
				return nil, err
			}
			a.tiles[t] = px
		case k <= 3:
			a.tiles[t] = symmetry.Rotate(a.tiles[t-1], a.size)
		default:
			a.tiles[t] = symmetry.Mirror(a.tiles[t-4], a.size)
		}
	}
	return a, nil
}

func (a *Atlas) load(images map[string]image.Image, key string) ([]color.RGBA, error) {
	img, ok := images[key]
	if !ok || img == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingImage, key)
	}
	b := img.Bounds()
	if b.Dx() != b.Dy() || b.Dx() == 0 || (a.size != 0 && b.Dx() != a.size) {
		return nil, fmt.Errorf("%w: %q is %dx%d", ErrTileSize, key, b.Dx(), b.Dy())
	}
	a.size = b.Dx()
	px := make([]color.RGBA, 0, a.size*a.size)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px = append(px, color.RGBAModel.Convert(img.At(x, y)).(color.RGBA))
		}
	}
	return px, nil
}

// Size returns the tile edge length in pixels.
func (a *Atlas) Size() int { return a.size }

// At returns pixel (x, y) of pattern t.
func (a *Atlas) At(t, x, y int) color.RGBA { return a.tiles[t][x+y*a.size] }

// Tiled renders a solver built from m into a (Width·Size)×(Height·Size) image.
func Tiled(m *tiled.Model, atlas *Atlas, s *wave.Solver, opts Options) *image.RGBA {
	size := atlas.Size()
	w, h := s.Width(), s.Height()
	img := image.NewRGBA(image.Rect(0, 0, w*size, h*size))
	t := m.Catalog.Len()
	solved := s.State() == wave.StateSolved

	bl := blender{linear: opts.Linear}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ox, oy := x*size, y*size
			if solved {
				p := s.ObservedAt(x, y)
				for yt := 0; yt < size; yt++ {
					for xt := 0; xt < size; xt++ {
						img.SetRGBA(ox+xt, oy+yt, atlas.At(p, xt, yt))
					}
				}
				continue
			}

			remaining := s.Remaining(x, y)
			if remaining == 0 || (opts.BlackBackground && remaining == t) {
				fill(img, ox, oy, size, opaqueBlack)
				continue
			}
			for yt := 0; yt < size; yt++ {
				for xt := 0; xt < size; xt++ {
					bl.reset()
					for p := 0; p < t; p++ {
						if s.Possible(x, y, p) {
							bl.add(atlas.At(p, xt, yt), m.Catalog.Weight(p))
						}
					}
					img.SetRGBA(ox+xt, oy+yt, bl.mean())
				}
			}
		}
	}
	return img
}

func fill(img *image.RGBA, ox, oy, size int, c color.RGBA) {
	for y := oy; y < oy+size; y++ {
		for x := ox; x < ox+size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
