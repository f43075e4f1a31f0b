package window

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-capy/internal/config"
	"github.com/vovakirdan/flappy-capy/internal/games/capy"
	"github.com/vovakirdan/flappy-capy/internal/sprite"
)

// Skin draws the world layer of a snapshot: background, obstacles,
// pickups and the character. HUD and overlays are drawn on top by the game.
type Skin interface {
	Name() string
	Draw(screen *ebiten.Image, snap capy.Snapshot)
}

// ErrNoAssets is returned when no asset paths are configured.
var ErrNoAssets = errors.New("window: no assets configured")

// assetImages are the decoded asset files.
type assetImages struct {
	capybara   image.Image
	background image.Image
	tree       image.Image
}

// loadPNG decodes one PNG file.
func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("window: cannot open asset: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("window: cannot decode asset %s: %w", path, err)
	}
	return img, nil
}

// loadAssets decodes all three configured images. Any missing path or
// failed decode fails the whole set.
func loadAssets(a config.Assets) (assetImages, error) {
	if a.Capybara == "" || a.Background == "" || a.Tree == "" {
		return assetImages{}, ErrNoAssets
	}
	var imgs assetImages
	var err error
	if imgs.capybara, err = loadPNG(a.Capybara); err != nil {
		return assetImages{}, err
	}
	if imgs.background, err = loadPNG(a.Background); err != nil {
		return assetImages{}, err
	}
	if imgs.tree, err = loadPNG(a.Tree); err != nil {
		return assetImages{}, err
	}
	return imgs, nil
}

// ChooseSkin picks the skin once at startup: the asset skin when every
// configured image loads, the procedural skin otherwise.
func ChooseSkin(cfg config.Config, logger *log.Logger) Skin {
	pal := NewPalette(cfg.Colors)
	imgs, err := loadAssets(cfg.Assets)
	switch {
	case errors.Is(err, ErrNoAssets):
		logger.Debug("no assets configured, using procedural skin")
		return NewProceduralSkin(cfg.World, pal)
	case err != nil:
		logger.Warn("cannot load assets, using procedural skin", "err", err)
		return NewProceduralSkin(cfg.World, pal)
	}
	logger.Info("using asset skin")
	return NewAssetSkin(imgs, pal)
}

// spriteLayer holds the GPU images for the pixel-art sprites.
type spriteLayer struct {
	capyDown *ebiten.Image
	capyUp   *ebiten.Image
	heart    *ebiten.Image
}

func newSpriteLayer(pal Palette) spriteLayer {
	return spriteLayer{
		capyDown: ebiten.NewImageFromImage(sprite.Capybara(false).Image(sprite.CapybaraPixel)),
		capyUp:   ebiten.NewImageFromImage(sprite.Capybara(true).Image(sprite.CapybaraPixel)),
		heart:    ebiten.NewImageFromImage(sprite.Heart(pal.Heart).Image(3)),
	}
}

// drawCharacter draws img stretched to the hitbox and rotated by the tilt
// around the hitbox centre.
func drawCharacter(screen, img *ebiten.Image, c capy.Character) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(c.W/iw, c.H/ih)
	op.GeoM.Translate(-c.W/2, -c.H/2)
	op.GeoM.Rotate(c.Tilt * math.Pi / 180)
	op.GeoM.Translate(c.X+c.W/2, c.Y+c.H/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

// drawPickups draws pulsing hearts centred on their boxes.
func drawPickups(screen, heart *ebiten.Image, pickups []capy.Pickup) {
	b := heart.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	for _, p := range pickups {
		s := pulseScale(p.Phase)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.Size/iw*s, p.Size/ih*s)
		op.GeoM.Translate(p.X+p.Size/2-p.Size*s/2, p.Y+p.Size/2-p.Size*s/2)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(heart, op)
	}
}

// AssetSkin draws the configured PNG images.
type AssetSkin struct {
	background *ebiten.Image
	capybara   *ebiten.Image
	tree       *ebiten.Image
	sprites    spriteLayer
}

// NewAssetSkin uploads decoded images.
func NewAssetSkin(imgs assetImages, pal Palette) *AssetSkin {
	return &AssetSkin{
		background: ebiten.NewImageFromImage(imgs.background),
		capybara:   ebiten.NewImageFromImage(imgs.capybara),
		tree:       ebiten.NewImageFromImage(imgs.tree),
		sprites:    newSpriteLayer(pal),
	}
}

// Name implements Skin.
func (s *AssetSkin) Name() string { return "asset" }

// Draw implements Skin.
func (s *AssetSkin) Draw(screen *ebiten.Image, snap capy.Snapshot) {
	b := s.background.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(snap.WorldW/float64(b.Dx()), snap.WorldH/float64(b.Dy()))
	screen.DrawImage(s.background, op)

	tb := s.tree.Bounds()
	tw, th := float64(tb.Dx()), float64(tb.Dy())
	for _, o := range snap.Obstacles {
		// Top tree hangs upside down from the ceiling.
		top := &ebiten.DrawImageOptions{}
		top.GeoM.Scale(o.W/tw, -o.GapTop/th)
		top.GeoM.Translate(o.X, o.GapTop)
		screen.DrawImage(s.tree, top)

		bottom := &ebiten.DrawImageOptions{}
		bottom.GeoM.Scale(o.W/tw, (snap.WorldH-o.GapBottom)/th)
		bottom.GeoM.Translate(o.X, o.GapBottom)
		screen.DrawImage(s.tree, bottom)
	}

	drawPickups(screen, s.sprites.heart, snap.Pickups)
	drawCharacter(screen, s.capybara, snap.Character)
}

// ProceduralSkin draws the placeholder swamp: gradient sky, water ripples,
// textured trees, the pixel-art capybara and drifting mist.
type ProceduralSkin struct {
	world      config.World
	pal        Palette
	background *ebiten.Image
	sprites    spriteLayer
}

// NewProceduralSkin renders the static background once.
func NewProceduralSkin(world config.World, pal Palette) *ProceduralSkin {
	bg := gradient(int(world.Width), int(world.Height), pal.Sky, pal.Water, pal.Ground)
	return &ProceduralSkin{
		world:      world,
		pal:        pal,
		background: ebiten.NewImageFromImage(bg),
		sprites:    newSpriteLayer(pal),
	}
}

// Name implements Skin.
func (s *ProceduralSkin) Name() string { return "procedural" }

// Draw implements Skin.
func (s *ProceduralSkin) Draw(screen *ebiten.Image, snap capy.Snapshot) {
	screen.DrawImage(s.background, nil)
	s.drawRipples(screen, snap.Frame)

	for _, o := range snap.Obstacles {
		s.drawTree(screen, o.X, 0, o.W, o.GapTop, true)
		s.drawTree(screen, o.X, o.GapBottom, o.W, snap.WorldH-o.GapBottom, false)
	}

	drawPickups(screen, s.sprites.heart, snap.Pickups)

	img := s.sprites.capyDown
	if snap.Character.ImpulseFrames > 0 {
		img = s.sprites.capyUp
	}
	drawCharacter(screen, img, snap.Character)

	s.drawMist(screen, snap.Frame)
}

// rippleCount is the number of animated water lines.
const rippleCount = 5

// rippleY is the height of water line i at a frame.
func rippleY(worldH float64, frame, i int) float64 {
	return worldH*0.7 + float64(i)*20 + math.Sin(float64(frame)*0.05+float64(i))*5
}

func (s *ProceduralSkin) drawRipples(screen *ebiten.Image, frame int) {
	w := float32(s.world.Width)
	for i := 0; i < rippleCount; i++ {
		y := float32(rippleY(s.world.Height, frame, i))
		vector.DrawFilledRect(screen, 0, y, w, 2, s.pal.Ripple, false)
	}
}

// drawTree draws a trunk with bark stripes and a wider cap at the gap edge.
func (s *ProceduralSkin) drawTree(screen *ebiten.Image, x, y, w, h float64, capAtBottom bool) {
	if h <= 0 {
		return
	}
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, fh, s.pal.Tree, false)
	for sx := fx + 10; sx < fx+fw-4; sx += 15 {
		vector.DrawFilledRect(screen, sx, fy, 3, fh, s.pal.TreeDark, false)
	}

	const capH = 12
	capY := fy
	if capAtBottom {
		capY = fy + fh - capH
	}
	vector.DrawFilledRect(screen, fx-4, capY, fw+8, capH, s.pal.TreeDark, false)
}

// mistOffset is the horizontal drift of the mist band at a frame.
func mistOffset(frame int, worldW float64) float64 {
	return math.Mod(float64(frame)*0.5, worldW)
}

func (s *ProceduralSkin) drawMist(screen *ebiten.Image, frame int) {
	off := float32(mistOffset(frame, s.world.Width))
	w := float32(s.world.Width)
	y := float32(s.world.Height * 0.55)
	vector.DrawFilledRect(screen, -off, y, w*0.6, 30, s.pal.Mist, false)
	vector.DrawFilledRect(screen, w-off, y, w*0.6, 30, s.pal.Mist, false)
	vector.DrawFilledRect(screen, w*0.5-off, y+40, w*0.4, 20, s.pal.Mist, false)
	vector.DrawFilledRect(screen, w*1.5-off, y+40, w*0.4, 20, s.pal.Mist, false)
}
