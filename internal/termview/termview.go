// Package termview previews images in a true-color terminal.
//
// Each terminal cell shows two vertically stacked pixels with the upper half
// block glyph: the foreground paints the upper pixel and the background the
// lower one. Images larger than the screen are cropped.
package termview

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// upperHalf is the glyph whose foreground covers the top half of the cell.
const upperHalf = '▀'

// cellColors returns the upper and lower pixel of terminal cell (col, row).
// Rows past the bottom of odd-height images read as opaque black.
func cellColors(img image.Image, col, row int) (top, bottom color.RGBA) {
	b := img.Bounds()
	x, y := b.Min.X+col, b.Min.Y+2*row
	top = rgba(img, x, y)
	bottom = color.RGBA{A: 255}
	if y+1 < b.Max.Y {
		bottom = rgba(img, x, y+1)
	}
	return top, bottom
}

func rgba(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw paints img onto screen starting at the top-left corner. It does not
// call Show.
func Draw(screen tcell.Screen, img image.Image) {
	w, h := screen.Size()
	b := img.Bounds()
	cols := min(w, b.Dx())
	rows := min(h, (b.Dy()+1)/2)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top, bottom := cellColors(img, col, row)
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
}

// Show opens the terminal, draws img, redraws it on resize and returns at
// the first key press.
func Show(img image.Image) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	for {
		screen.Clear()
		Draw(screen, img)
		screen.Show()

		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey, nil:
			return nil
		}
	}
}
