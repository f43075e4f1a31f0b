package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.5\n"))
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Physics.Gravity)
	assert.Equal(t, -8.0, cfg.Physics.JumpStrength, "unset fields keep their defaults")
	assert.Equal(t, 100, cfg.Obstacles.SpawnInterval)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("obstacles:\n  gap_size: 180\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 180.0, cfg.Obstacles.GapSize)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("world: [not, a, map"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative gap", func(c *Config) { c.Obstacles.GapSize = -10 }},
		{"gap larger than world", func(c *Config) { c.Obstacles.GapSize = 500 }},
		{"zero spawn interval", func(c *Config) { c.Obstacles.SpawnInterval = 0 }},
		{"downward jump", func(c *Config) { c.Physics.JumpStrength = 3 }},
		{"chance above one", func(c *Config) { c.Pickups.Chance = 1.5 }},
		{"character outside world", func(c *Config) { c.Character.X = 380 }},
		{"bad color", func(c *Config) { c.Colors.Heart = "pink" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
			assert.Panics(t, func() { MustValidate(cfg) })
		})
	}
}

func TestGapTopRange(t *testing.T) {
	min, max := DefaultConfig().GapTopRange()
	assert.Equal(t, 100.0, min)
	assert.Equal(t, 300.0, max)
}

func TestScaleToBaseRateIsIdentity(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cfg, cfg.ScaleTo(BaseTickRate))
	assert.Equal(t, cfg, cfg.ScaleTo(0))
}

func TestScaleToHalfRate(t *testing.T) {
	cfg := DefaultConfig().ScaleTo(30)

	assert.InDelta(t, 3.6, cfg.Obstacles.Speed, 1e-9)
	assert.InDelta(t, 1.6, cfg.Physics.Gravity, 1e-9)
	assert.InDelta(t, -16.0, cfg.Physics.JumpStrength, 1e-9)
	assert.InDelta(t, 1.0, cfg.Physics.TiltFactor, 1e-9)
	assert.Equal(t, 50, cfg.Obstacles.SpawnInterval)
	assert.Equal(t, 5, cfg.Physics.ImpulseFrames)
	require.NoError(t, cfg.Validate())
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#FF1493")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0x14, B: 0x93, A: 0xFF}, c)

	c, err = ParseHex("#C8E6C91A")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x1A), c.A)

	_, err = ParseHex("#12")
	assert.Error(t, err)
	_, err = ParseHex("#GGGGGG")
	assert.Error(t, err)
}
