package sprite

import "image/color"

// Shine is the translucent highlight on a heart.
var Shine = color.NRGBA{0xFF, 0xFF, 0xFF, 0x66}

var heartRows = []string{
	".hh.hh.",
	"hshhhhh",
	"hhhhhhh",
	"hhhhhhh",
	".hhhhh.",
	"..hhh..",
	"...h...",
}

// Heart returns a heart sprite in the given color.
func Heart(c color.NRGBA) Sprite {
	return Sprite{
		Rows:    heartRows,
		Palette: map[byte]color.NRGBA{'h': c, 's': Shine},
	}
}
