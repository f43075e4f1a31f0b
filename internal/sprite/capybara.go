package sprite

import "image/color"

// Capybara palette
var (
	Black     = color.NRGBA{0x00, 0x00, 0x00, 0xFF}
	White     = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Tan       = color.NRGBA{0xD4, 0xA5, 0x74, 0xFF}
	LightTan  = color.NRGBA{0xE6, 0xC1, 0x9A, 0xFF}
	Brown     = color.NRGBA{0xA6, 0x7C, 0x52, 0xFF}
	DarkBrown = color.NRGBA{0x7D, 0x5A, 0x3B, 0xFF}
)

var capyPalette = map[byte]color.NRGBA{
	'k': Black,
	'w': White,
	't': Tan,
	'l': LightTan,
	'b': Brown,
	'd': DarkBrown,
}

// Lying capybara facing left: ears, eye, tooth, rounded back.
var capyBody = []string{
	"...kk........",
	"..kbdkkk.....",
	".kbkbtttk....",
	"kddbtttttk...",
	"kdkwttttttk..",
	"kdbtttttttk..",
	".ktttttttttk.",
	".ktlltttttk..",
}

var (
	legsDown = []string{
		"..kttttttk...",
		"...k...k.....",
		"...dd..dd....",
		"...kk..kk....",
	}
	legsUp = []string{
		"..kktttktk...",
		"...dd..dd....",
		".............",
		".............",
	}
)

// CapybaraPixel is the grid pixel size that fills the default 60×45 hitbox.
const CapybaraPixel = 4

// Capybara returns the capybara sprite. Legs are tucked up while an impulse
// animation runs.
func Capybara(legsRaised bool) Sprite {
	legs := legsDown
	if legsRaised {
		legs = legsUp
	}
	rows := make([]string, 0, len(capyBody)+len(legs))
	rows = append(rows, capyBody...)
	rows = append(rows, legs...)
	return Sprite{Rows: rows, Palette: capyPalette}
}
