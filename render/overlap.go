package render

import (
	"image"

	"github.com/katalvlaran/wavefc/overlap"
	"github.com/katalvlaran/wavefc/wave"
)

// Overlap renders a solver built from m into a Width×Height image.
func Overlap(m *overlap.Model, s *wave.Solver, opts Options) *image.RGBA {
	w, h, n := s.Width(), s.Height(), m.N
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	if s.State() == wave.StateSolved {
		// Cells near the right and bottom edges have no pattern of their own
		// in non-periodic mode; read them from the last pattern that covers them.
		for y := 0; y < h; y++ {
			dy := 0
			if y >= h-n+1 {
				dy = n - 1
			}
			for x := 0; x < w; x++ {
				dx := 0
				if x >= w-n+1 {
					dx = n - 1
				}
				t := s.ObservedAt(mod(x-dx, w), mod(y-dy, h))
				img.SetRGBA(x, y, m.ColorAt(t, dx, dy))
			}
		}
		return img
	}

	t := m.Catalog.Len()
	bl := blender{linear: opts.Linear}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bl.reset()
			for dy := 0; dy < n; dy++ {
				for dx := 0; dx < n; dx++ {
					sx, sy := x-dx, y-dy
					if s.Periodic() {
						sx, sy = mod(sx, w), mod(sy, h)
					} else if sx < 0 || sy < 0 || sx+n > w || sy+n > h {
						continue
					}
					for p := 0; p < t; p++ {
						if s.Possible(sx, sy, p) {
							bl.add(m.ColorAt(p, dx, dy), 1)
						}
					}
				}
			}
			img.SetRGBA(x, y, bl.mean())
		}
	}
	return img
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
