// Package window runs the game in a desktop window with Ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/vovakirdan/flappy-capy/internal/core"
	"github.com/vovakirdan/flappy-capy/internal/games/capy"
	"github.com/vovakirdan/flappy-capy/internal/sound"
	"github.com/vovakirdan/flappy-capy/internal/storage"
)

// Title is the window title.
const Title = "Flappy Capy"

// History receives finished runs.
type History interface {
	SaveRun(run storage.Run) (int64, error)
}

// Options configures the window frontend.
type Options struct {
	History History      // May be nil: runs are not recorded
	Player  sound.Player // May be nil: silent
	Logger  *log.Logger  // May be nil: discard
	Scale   float64      // Window size multiplier, defaults to 1
	Debug   bool         // Show TPS and skin name
}

// Game adapts capy.Game to ebiten.Game.
type Game struct {
	game     *capy.Game
	opts     Options
	skin     Skin
	fonts    *Fonts
	overlay  *overlay
	frame    core.InputFrame
	state    capy.GameState
	touchIDs []ebiten.TouchID
	width    int
	height   int
}

var _ ebiten.Game = (*Game)(nil)

// NewGame loads fonts, picks the skin and builds the overlays.
func NewGame(game *capy.Game, opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == nil {
		opts.Player = sound.Nop{}
	}

	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}

	cfg := game.Config()
	g := &Game{
		game:   game,
		opts:   opts,
		skin:   ChooseSkin(cfg, opts.Logger),
		fonts:  fonts,
		frame:  core.NewInputFrame(),
		state:  game.State(),
		width:  int(cfg.World.Width),
		height: int(cfg.World.Height),
	}
	g.overlay = newOverlay(fonts,
		func() { g.frame.Set(core.ActionStart) },
		func() { g.frame.Set(core.ActionRestart) },
	)
	g.overlay.setBest(g.state.BestScore, g.state.BestHearts)
	return g, nil
}

// Update polls input and advances the simulation one step.
func (g *Game) Update() error {
	switch g.state.Phase {
	case capy.PhaseIdle:
		g.overlay.start.Update()
	case capy.PhaseEnded:
		g.overlay.over.Update()
	}

	var in pressed
	in, g.touchIDs = pollInput(g.touchIDs)
	if in.apply(&g.frame, g.state.Phase) {
		return ebiten.Termination
	}

	result := g.game.Step(g.frame)
	g.frame.Clear()
	g.state = result.State

	sound.PlayEvents(g.opts.Player, result.Events)
	if result.Events.Has(capy.EventEnded) {
		g.finishRun()
	}
	return nil
}

// finishRun fills the game-over panel and appends the run to the history.
func (g *Game) finishRun() {
	sum, ok := g.game.Summary()
	if !ok {
		return
	}
	g.overlay.setSummary(sum.Lines())
	g.overlay.setBest(sum.BestScore, sum.BestHearts)

	if g.opts.History == nil {
		return
	}
	run := storage.Run{
		Score:  sum.Score,
		Hearts: sum.Hearts,
		Cause:  sum.Cause.String(),
		Steps:  g.game.Snapshot().Frame,
	}
	if _, err := g.opts.History.SaveRun(run); err != nil {
		g.opts.Logger.Warn("cannot save run", "err", err)
		return
	}
	g.opts.Logger.Info("run saved", "score", run.Score, "hearts", run.Hearts, "cause", run.Cause)
}

// Draw renders the world through the skin, then the HUD and overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.skin.Draw(screen, snap)

	switch snap.Phase {
	case capy.PhaseIdle:
		g.overlay.start.Draw(screen)
	case capy.PhaseEnded:
		g.overlay.over.Draw(screen)
	default:
		g.drawHUD(screen, snap)
		if snap.Paused {
			drawCentered(screen, "PAUSED", g.fonts.Title, color.White)
		}
	}

	if g.opts.Debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("TPS: %0.1f  skin: %s  frame: %d", ebiten.ActualTPS(), g.skin.Name(), snap.Frame),
			4, g.height-16)
	}
}

// Layout keeps the logical screen at world size; ebiten scales the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) drawHUD(screen *ebiten.Image, snap capy.Snapshot) {
	f := g.fonts.HUD
	text.Draw(screen, fmt.Sprintf("Score: %d", snap.Score), f, 12, 28, color.White)
	text.Draw(screen, fmt.Sprintf("Hearts: %d", snap.Bonus), f, 12, 52, recordColor)

	best := fmt.Sprintf("Best: %d", snap.BestScore)
	bounds, _ := font.BoundString(f, best)
	text.Draw(screen, best, f, g.width-12-(bounds.Max.X-bounds.Min.X).Ceil(), 28, color.White)
}

// drawCentered draws one line in the middle of the screen.
func drawCentered(screen *ebiten.Image, s string, f font.Face, c color.Color) {
	bounds, _ := font.BoundString(f, s)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2,
		float64(screen.Bounds().Dy())/2-float64(bounds.Max.Y>>6)/2,
	)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(screen, s, f, op)
}

// Run opens the window and blocks until it is closed.
func Run(game *capy.Game, rt core.RuntimeConfig, opts Options) error {
	g, err := NewGame(game, opts)
	if err != nil {
		return err
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowSize(int(float64(g.width)*scale), int(float64(g.height)*scale))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}

	g.opts.Logger.Info("window started", "skin", g.skin.Name(), "tps", rt.TickRate)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
