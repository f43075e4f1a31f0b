package window

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/flappy-capy/internal/config"
)

// Palette is the parsed color set for procedural drawing.
type Palette struct {
	Capybara color.NRGBA
	Tree     color.NRGBA
	TreeDark color.NRGBA
	Ground   color.NRGBA
	Sky      color.NRGBA
	Water    color.NRGBA
	Ripple   color.NRGBA
	Mist     color.NRGBA
	Heart    color.NRGBA
}

// NewPalette parses the configured colors. Unparseable entries are left
// black; configs are validated before they reach the window.
func NewPalette(c config.Colors) Palette {
	parse := func(s string) color.NRGBA {
		col, _ := config.ParseHex(s)
		return col
	}
	p := Palette{
		Capybara: parse(c.Capybara),
		Tree:     parse(c.Tree),
		Ground:   parse(c.Ground),
		Sky:      parse(c.Sky),
		Water:    parse(c.Water),
		Mist:     parse(c.Mist),
		Heart:    parse(c.Heart),
		Ripple:   color.NRGBA{42, 90, 74, 77},
	}
	p.TreeDark = shade(p.Tree, 0.7)
	return p
}

// shade scales the RGB channels of c by f.
func shade(c color.NRGBA, f float64) color.NRGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, math.Round(float64(v)*f)))
	}
	return color.NRGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

// lerp blends a towards b by t in [0, 1].
func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// gradient renders a vertical sky-to-ground gradient: top to mid blends
// into mid, then into bottom.
func gradient(w, h int, top, mid, bottom color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		var c color.NRGBA
		if t < 0.5 {
			c = lerp(top, mid, t*2)
		} else {
			c = lerp(mid, bottom, (t-0.5)*2)
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// pulseScale is the heart size multiplier for an animation phase.
func pulseScale(phase float64) float64 {
	return 1 + math.Sin(phase)*0.1
}
