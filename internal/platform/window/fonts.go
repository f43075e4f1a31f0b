package window

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the faces used by the HUD and overlays.
type Fonts struct {
	Title  font.Face // M+ 1p, large
	HUD    font.Face // Go Regular, small
	Button font.Face // Go Regular, medium
}

// LoadFonts parses the embedded font files.
func LoadFonts() (*Fonts, error) {
	const dpi = 72

	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return nil, fmt.Errorf("window: cannot parse title font: %w", err)
	}
	title, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    32,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return nil, fmt.Errorf("window: cannot create title face: %w", err)
	}

	goFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("window: cannot parse HUD font: %w", err)
	}

	return &Fonts{
		Title: title,
		HUD: truetype.NewFace(goFont, &truetype.Options{
			Size:    18,
			DPI:     dpi,
			Hinting: font.HintingFull,
		}),
		Button: truetype.NewFace(goFont, &truetype.Options{
			Size:    22,
			DPI:     dpi,
			Hinting: font.HintingFull,
		}),
	}, nil
}
