// Package config provides YAML-based configuration loading for the capy game.
// All tunables are authored for a fixed 60 steps per second.
package config

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// BaseTickRate is the step rate the default tunables are authored for.
const BaseTickRate = 60

// Config contains all tunables for the game.
type Config struct {
	World     World     `yaml:"world"`
	Character Character `yaml:"character"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Pickups   Pickups   `yaml:"pickups"`
	Assets    Assets    `yaml:"assets"`
	Colors    Colors    `yaml:"colors"`
}

// World defines the logical play field in world units (pixels at 1x).
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Character defines the capybara's fixed column and hitbox.
type Character struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines per-step kinematics.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`        // Added to velocity every step
	JumpStrength  float64 `yaml:"jump_strength"`  // Velocity set by an impulse (negative = up)
	TiltFactor    float64 `yaml:"tilt_factor"`    // Degrees of tilt per unit of velocity
	TiltMin       float64 `yaml:"tilt_min"`       // Degrees
	TiltMax       float64 `yaml:"tilt_max"`       // Degrees
	ImpulseFrames int     `yaml:"impulse_frames"` // Leg animation length after an impulse
}

// Obstacles defines the gated tree pairs.
type Obstacles struct {
	Width         float64 `yaml:"width"`
	GapSize       float64 `yaml:"gap_size"`
	Speed         float64 `yaml:"speed"`          // Leftward movement per step
	SpawnInterval int     `yaml:"spawn_interval"` // Steps between spawns
	MinMargin     float64 `yaml:"min_margin"`     // Minimum distance of the gap from top and floor
}

// Pickups defines the heart collectibles.
type Pickups struct {
	Size      float64 `yaml:"size"`
	Chance    float64 `yaml:"chance"`     // Probability of a heart per spawned obstacle
	PulseStep float64 `yaml:"pulse_step"` // Animation phase advance per step
}

// Assets lists optional image files for the window frontend.
// Empty paths mean the procedural placeholder art is used.
type Assets struct {
	Capybara   string `yaml:"capybara"`
	Background string `yaml:"background"`
	Tree       string `yaml:"tree"`
}

// Colors holds hex colors (#RRGGBB or #RRGGBBAA) for placeholder rendering.
type Colors struct {
	Capybara string `yaml:"capybara"`
	Tree     string `yaml:"tree"`
	Ground   string `yaml:"ground"`
	Sky      string `yaml:"sky"`
	Water    string `yaml:"water"`
	Mist     string `yaml:"mist"`
	Heart    string `yaml:"heart"`
}

// ScaleTo returns a copy of the config rescaled so that a simulation stepping
// at tickRate plays like the authored one at BaseTickRate.
// Velocities scale by k, accelerations by k², step counts by 1/k, with
// k = BaseTickRate / tickRate.
func (c Config) ScaleTo(tickRate int) Config {
	if tickRate <= 0 || tickRate == BaseTickRate {
		return c
	}
	k := float64(BaseTickRate) / float64(tickRate)

	c.Physics.Gravity *= k * k
	c.Physics.JumpStrength *= k
	c.Physics.TiltFactor /= k // tilt follows the unscaled velocity
	c.Physics.ImpulseFrames = scaleSteps(c.Physics.ImpulseFrames, k)
	c.Obstacles.Speed *= k
	c.Obstacles.SpawnInterval = scaleSteps(c.Obstacles.SpawnInterval, k)
	c.Pickups.PulseStep *= k
	return c
}

// scaleSteps converts a step count authored at the base rate.
func scaleSteps(steps int, k float64) int {
	n := int(math.Round(float64(steps) / k))
	if n < 1 {
		n = 1
	}
	return n
}

// GapTopRange returns the inclusive band the gap-top is drawn from.
func (c Config) GapTopRange() (min, max float64) {
	return c.Obstacles.MinMargin, c.World.Height - c.Obstacles.GapSize - c.Obstacles.MinMargin
}

// ParseHex parses #RRGGBB or #RRGGBBAA into a color.
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("config: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("config: invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
