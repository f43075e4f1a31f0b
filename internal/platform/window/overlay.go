package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/font"
)

var (
	textColor   = color.NRGBA{R: 254, G: 255, B: 255, A: 255}
	recordColor = color.NRGBA{R: 255, G: 215, B: 0, A: 255}
	shadeColor  = color.NRGBA{R: 0, G: 0, B: 0, A: 140}
)

// overlay holds the ebitenui screens shown outside a run: the title screen
// with a Start button and the game-over panel with a Play again button.
type overlay struct {
	start   *ebitenui.UI
	over    *ebitenui.UI
	best    *widget.Text
	summary *widget.Text
	record  *widget.Text
}

func newOverlay(f *Fonts, onStart, onRestart func()) *overlay {
	o := &overlay{}

	o.best = newLabel("", f.HUD, textColor)
	o.start = &ebitenui.UI{Container: panel(
		newLabel("FLAPPY CAPY", f.Title, textColor),
		newLabel("Space to hop through the trees", f.HUD, textColor),
		o.best,
		newButton("Start", f.Button, onStart),
	)}

	o.summary = newLabel("", f.Button, textColor)
	o.record = newLabel("", f.Button, recordColor)
	o.over = &ebitenui.UI{Container: panel(
		newLabel("GAME OVER", f.Title, textColor),
		o.summary,
		o.record,
		newButton("Play again", f.Button, onRestart),
	)}

	return o
}

// setBest updates the best line on the title screen.
func (o *overlay) setBest(score, hearts int) {
	o.best.Label = fmt.Sprintf("Best: %d   Hearts: %d", score, hearts)
}

// setSummary splits the game-over lines into plain and record text.
func (o *overlay) setSummary(lines []string) {
	var plain, records []string
	for _, l := range lines {
		if strings.Contains(l, "NEW RECORD") {
			records = append(records, l)
		} else {
			plain = append(plain, l)
		}
	}
	o.summary.Label = strings.Join(plain, "\n")
	o.record.Label = strings.Join(records, "\n")
}

func panel(children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(shadeColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    160,
				Left:   40,
				Right:  40,
				Bottom: 90,
			}))),
	)
	for _, c := range children {
		root.AddChild(c)
	}
	return root
}

func newLabel(s string, face font.Face, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, face, c),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
}

func newButton(label string, face font.Face, onClick func()) *widget.Button {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 106, G: 124, B: 94, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 86, G: 104, B: 74, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 61, G: 74, B: 53, A: 255}),
	}

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:     textColor,
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	button.ClickedEvent.AddHandler(func(args interface{}) {
		onClick()
	})
	return button
}
