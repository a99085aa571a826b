package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var opaqueBlack = color.RGBA{A: 255}

// blender accumulates a weighted color mean.
type blender struct {
	linear  bool
	r, g, b float64
	total   float64
}

func (bl *blender) reset() {
	bl.r, bl.g, bl.b, bl.total = 0, 0, 0, 0
}

func (bl *blender) add(c color.RGBA, w float64) {
	cc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := cc.R, cc.G, cc.B
	if bl.linear {
		r, g, b = cc.LinearRgb()
	}
	bl.r += w * r
	bl.g += w * g
	bl.b += w * b
	bl.total += w
}

// mean returns the accumulated average, or opaque black when nothing was added.
func (bl *blender) mean() color.RGBA {
	if bl.total <= 0 {
		return opaqueBlack
	}
	r, g, b := bl.r/bl.total, bl.g/bl.total, bl.b/bl.total
	c := colorful.Color{R: r, G: g, B: b}
	if bl.linear {
		c = colorful.LinearRgb(r, g, b)
	}
	r8, g8, b8 := c.Clamped().RGB255()
	return color.RGBA{R: r8, G: g8, B: b8, A: 255}
}
