package capy

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/flappy-capy/internal/core"
)

// Visual characters for terminal rendering
const (
	TreeChar      = '█'
	TreeEdgeChar  = '▓'
	TreeCapTop    = '▀'
	TreeCapBottom = '▄'
	CapyChar      = '█'
	CapyEyeChar   = '•'
	CapyLegChar   = '╹'
	HeartChar     = '♥'
	HeartDimChar  = '♡'
	WaterChar     = '~'
	MistChar      = '░'
)

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	return viewport{
		sx: float64(dst.Width()) / snap.WorldW,
		sy: float64(dst.Height()) / snap.WorldH,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// cells returns the cell span [from, to) covered by a world span, at least
// one cell wide.
func cells(from, to float64, scale float64) (int, int) {
	a := int(math.Floor(from * scale))
	b := int(math.Ceil(to * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// Render draws the current game state to the screen. World coordinates are
// scaled to the screen size, so resizing never touches the simulation.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	v := newViewport(dst, snap)

	drawBackground(dst, snap)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, o, snap.WorldH)
	}
	for _, p := range snap.Pickups {
		drawPickup(dst, v, p)
	}
	drawCharacter(dst, v, snap.Character)
	drawHUD(dst, snap)

	switch {
	case snap.Phase == PhaseIdle:
		drawCenteredMessage(dst, core.ColorGold, "FLAPPY CAPY",
			"Space or Enter to start",
			fmt.Sprintf("Best: %d | %c %d", snap.BestScore, HeartChar, snap.BestHearts))
	case snap.Phase == PhaseEnded:
		sum, _ := g.Summary()
		lines := append(sum.Lines(), "R or Enter to play again")
		drawCenteredMessage(dst, core.ColorText, "GAME OVER", lines...)
	case snap.Paused:
		drawCenteredMessage(dst, core.ColorText, "PAUSED", "Press P to resume")
	}
}

// drawBackground draws water ripples on the bottom row and drifting mist.
func drawBackground(dst *core.Screen, snap Snapshot) {
	w, h := dst.Width(), dst.Height()

	dst.DrawHLine(0, h-1, w, '▁', core.ColorGround)
	for x := 0; x < w; x++ {
		if int(float64(x)+float64(snap.Frame)*0.25)%4 == 0 {
			dst.SetColor(x, h-1, WaterChar, core.ColorWater)
		}
	}

	offset := int(float64(snap.Frame)*0.5*float64(w)/snap.WorldW) % w
	for i, y := range []int{h / 5, h / 2, h * 3 / 4} {
		for k := 0; k < w/6; k++ {
			x := (offset + i*w/3 + k) % w
			dst.SetColor(x, y, MistChar, core.ColorMist)
		}
	}
}

// drawObstacle renders one gated pair: trunk columns above and below the gap.
func drawObstacle(dst *core.Screen, v viewport, o Obstacle, worldH float64) {
	x0, x1 := cells(o.X, o.Right(), v.sx)
	gapTop := v.row(o.GapTop)
	gapBottom := int(math.Ceil(o.GapBottom * v.sy))
	floor := v.row(worldH)

	for x := x0; x < x1; x++ {
		ch := TreeChar
		color := core.ColorTree
		if x == x0 || x == x1-1 {
			ch = TreeEdgeChar
			color = core.ColorTreeEdge
		}
		for y := 0; y < gapTop; y++ {
			dst.SetColor(x, y, ch, color)
		}
		for y := gapBottom; y < floor; y++ {
			dst.SetColor(x, y, ch, color)
		}
		if gapTop > 0 {
			dst.SetColor(x, gapTop-1, TreeCapTop, core.ColorTreeEdge)
		}
		dst.SetColor(x, gapBottom, TreeCapBottom, core.ColorTreeEdge)
	}
}

// drawPickup renders a heart that blinks with its pulse phase.
func drawPickup(dst *core.Screen, v viewport, p Pickup) {
	ch := HeartChar
	if math.Sin(p.Phase) < -0.5 {
		ch = HeartDimChar
	}
	dst.SetColor(v.col(p.X+p.Size/2), v.row(p.Y+p.Size/2), ch, core.ColorHeart)
}

// drawCharacter renders the capybara as a filled block with an eye and,
// while the impulse animation runs, raised legs.
func drawCharacter(dst *core.Screen, v viewport, c Character) {
	x0, x1 := cells(c.X, c.X+c.W, v.sx)
	y0, y1 := cells(c.Y, c.Y+c.H, v.sy)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColor(x, y, CapyChar, core.ColorCapy)
		}
	}
	dst.SetColor(x1-1, y0, CapyEyeChar, core.ColorCapyDark)

	if c.ImpulseFrames == 0 {
		dst.SetColor(x0, y1, CapyLegChar, core.ColorCapyDark)
		dst.SetColor(x1-1, y1, CapyLegChar, core.ColorCapyDark)
	}
}

// drawHUD renders the score line.
func drawHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf(" Score: %d  %c %d ", snap.Score, HeartChar, snap.Bonus)
	dst.DrawText(1, 0, left, core.ColorText)

	right := fmt.Sprintf(" Best: %d | %c %d ", snap.BestScore, HeartChar, snap.BestHearts)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(right)-1, 0, right, core.ColorDim)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, titleColor core.Color, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDim)

	dst.DrawText(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, titleColor)
	for i, l := range lines {
		color := core.ColorText
		if strings.Contains(l, "NEW RECORD") {
			color = core.ColorGold
		}
		dst.DrawText(boxX+(boxW-utf8.RuneCountInString(l))/2, boxY+3+i, l, color)
	}
}
