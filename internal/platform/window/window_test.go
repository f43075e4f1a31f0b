package window

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappy-capy/internal/config"
	"github.com/vovakirdan/flappy-capy/internal/core"
	"github.com/vovakirdan/flappy-capy/internal/games/capy"
)

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.SetNRGBA(1, 1, color.NRGBA{R: 200, A: 255})
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadAssets(t *testing.T) {
	dir := t.TempDir()
	a := config.Assets{
		Capybara:   writePNG(t, dir, "capy.png"),
		Background: writePNG(t, dir, "bg.png"),
		Tree:       writePNG(t, dir, "tree.png"),
	}

	imgs, err := loadAssets(a)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), imgs.capybara.Bounds())
	assert.NotNil(t, imgs.background)
	assert.NotNil(t, imgs.tree)
}

func TestLoadAssetsFallbacks(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "ok.png")
	notPNG := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(notPNG, []byte("not an image"), 0o600))

	tests := []struct {
		name     string
		assets   config.Assets
		noAssets bool
	}{
		{"empty", config.Assets{}, true},
		{"partial", config.Assets{Capybara: good}, true},
		{"missing file", config.Assets{Capybara: good, Background: filepath.Join(dir, "nope.png"), Tree: good}, false},
		{"bad data", config.Assets{Capybara: good, Background: good, Tree: notPNG}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadAssets(tt.assets)
			require.Error(t, err)
			assert.Equal(t, tt.noAssets, err == ErrNoAssets)
		})
	}
}

func TestNewPaletteParsesColors(t *testing.T) {
	pal := NewPalette(config.DefaultConfig().Colors)
	sky, err := config.ParseHex(config.DefaultConfig().Colors.Sky)
	require.NoError(t, err)
	assert.Equal(t, sky, pal.Sky)
	assert.Equal(t, uint8(255), pal.Tree.A)
	assert.Equal(t, shade(pal.Tree, 0.7), pal.TreeDark)
}

func TestShade(t *testing.T) {
	c := color.NRGBA{R: 100, G: 200, B: 50, A: 128}
	assert.Equal(t, color.NRGBA{R: 50, G: 100, B: 25, A: 128}, shade(c, 0.5))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 150, A: 128}, shade(c, 3))
}

func TestGradient(t *testing.T) {
	top := color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	mid := color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	bottom := color.NRGBA{R: 200, G: 200, B: 200, A: 255}

	img := gradient(3, 101, top, mid, bottom)
	assert.Equal(t, top, img.NRGBAAt(0, 0))
	assert.Equal(t, mid, img.NRGBAAt(1, 50))
	assert.Equal(t, bottom, img.NRGBAAt(2, 100))

	// Rows are uniform and brighten downwards.
	assert.Equal(t, img.NRGBAAt(0, 30), img.NRGBAAt(2, 30))
	assert.Less(t, img.NRGBAAt(0, 30).R, img.NRGBAAt(0, 70).R)
}

func TestPulseScale(t *testing.T) {
	assert.InDelta(t, 1.0, pulseScale(0), 1e-9)
	assert.InDelta(t, 1.1, pulseScale(math.Pi/2), 1e-9)
	assert.InDelta(t, 0.9, pulseScale(3*math.Pi/2), 1e-9)
}

func TestRippleY(t *testing.T) {
	assert.InDelta(t, 420, rippleY(600, 0, 0), 1e-9)
	for i := 0; i < rippleCount; i++ {
		for _, frame := range []int{0, 17, 400} {
			y := rippleY(600, frame, i)
			base := 420 + float64(i)*20
			assert.LessOrEqual(t, math.Abs(y-base), 5.0)
		}
	}
}

func TestMistOffsetWraps(t *testing.T) {
	assert.InDelta(t, 0, mistOffset(0, 400), 1e-9)
	assert.InDelta(t, 50, mistOffset(100, 400), 1e-9)
	assert.InDelta(t, 0, mistOffset(800, 400), 1e-9)
	assert.InDelta(t, 10, mistOffset(820, 400), 1e-9)
}

func TestPressedApply(t *testing.T) {
	tests := []struct {
		name  string
		in    pressed
		phase capy.Phase
		want  core.Action
	}{
		{"hop while running", pressed{Hop: true}, capy.PhaseRunning, core.ActionImpulse},
		{"pointer while running", pressed{Pointer: true}, capy.PhaseRunning, core.ActionImpulse},
		{"pause while running", pressed{Pause: true}, capy.PhaseRunning, core.ActionPause},
		{"space starts", pressed{Hop: true}, capy.PhaseIdle, core.ActionStart},
		{"enter starts", pressed{Confirm: true}, capy.PhaseIdle, core.ActionStart},
		{"r restarts", pressed{Restart: true}, capy.PhaseEnded, core.ActionRestart},
		{"enter restarts", pressed{Confirm: true}, capy.PhaseEnded, core.ActionRestart},
		{"space ignored after the end", pressed{Hop: true}, capy.PhaseEnded, core.ActionNone},
		{"pointer after the end is for buttons", pressed{Pointer: true}, capy.PhaseEnded, core.ActionNone},
		{"pointer on title is for buttons", pressed{Pointer: true}, capy.PhaseIdle, core.ActionNone},
		{"r while running", pressed{Restart: true}, capy.PhaseRunning, core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			assert.False(t, tt.in.apply(&frame, tt.phase))
			if tt.want == core.ActionNone {
				assert.Empty(t, frame.Actions)
				return
			}
			assert.True(t, frame.Has(tt.want))
		})
	}
}

func TestPressedQuit(t *testing.T) {
	for _, phase := range []capy.Phase{capy.PhaseIdle, capy.PhaseRunning, capy.PhaseEnded} {
		frame := core.NewInputFrame()
		assert.True(t, pressed{Quit: true, Hop: true}.apply(&frame, phase))
		assert.Empty(t, frame.Actions)
	}
}
