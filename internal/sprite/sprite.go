// Package sprite holds the procedural pixel art used when no image assets
// are configured. Sprites are small character grids mapped through a palette.
package sprite

import (
	"image"
	"image/color"
)

// Transparent is the grid character for an empty pixel.
const Transparent = '.'

// Sprite is a pixel grid. Each byte of Rows indexes Palette.
type Sprite struct {
	Rows    []string
	Palette map[byte]color.NRGBA
}

// Size returns the grid dimensions in pixels.
func (s Sprite) Size() (w, h int) {
	if len(s.Rows) == 0 {
		return 0, 0
	}
	return len(s.Rows[0]), len(s.Rows)
}

// At returns the color of one pixel. ok is false for transparent or
// out-of-range pixels.
func (s Sprite) At(x, y int) (c color.NRGBA, ok bool) {
	if y < 0 || y >= len(s.Rows) || x < 0 || x >= len(s.Rows[y]) {
		return color.NRGBA{}, false
	}
	ch := s.Rows[y][x]
	if ch == Transparent {
		return color.NRGBA{}, false
	}
	c, ok = s.Palette[ch]
	return c, ok
}

// Image renders the sprite with every grid pixel drawn as a scale×scale block.
func (s Sprite) Image(scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	w, h := s.Size()
	img := image.NewNRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, ok := s.At(x, y)
			if !ok {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetNRGBA(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img
}
