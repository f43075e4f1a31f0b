package config

import (
	"errors"
	"fmt"
)

// Validate checks the invariants the simulation relies on.
// A failing config is a programmer error, not a runtime condition.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %v", c.World.Width)
	check(c.World.Height > 0, "world.height must be positive, got %v", c.World.Height)

	check(c.Character.Width > 0, "character.width must be positive, got %v", c.Character.Width)
	check(c.Character.Height > 0, "character.height must be positive, got %v", c.Character.Height)
	check(c.Character.Height < c.World.Height, "character.height %v must be below world.height %v", c.Character.Height, c.World.Height)
	check(c.Character.X >= 0 && c.Character.X+c.Character.Width <= c.World.Width,
		"character column [%v, %v] must lie inside the world", c.Character.X, c.Character.X+c.Character.Width)

	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %v", c.Physics.Gravity)
	check(c.Physics.JumpStrength < 0, "physics.jump_strength must be negative (upwards), got %v", c.Physics.JumpStrength)
	check(c.Physics.TiltMin <= c.Physics.TiltMax, "physics.tilt_min %v exceeds tilt_max %v", c.Physics.TiltMin, c.Physics.TiltMax)
	check(c.Physics.ImpulseFrames >= 0, "physics.impulse_frames must not be negative, got %d", c.Physics.ImpulseFrames)

	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.GapSize > 0, "obstacles.gap_size must be positive, got %v", c.Obstacles.GapSize)
	check(c.Obstacles.Speed > 0, "obstacles.speed must be positive, got %v", c.Obstacles.Speed)
	check(c.Obstacles.SpawnInterval > 0, "obstacles.spawn_interval must be positive, got %d", c.Obstacles.SpawnInterval)
	check(c.Obstacles.MinMargin >= 0, "obstacles.min_margin must not be negative, got %v", c.Obstacles.MinMargin)
	if min, max := c.GapTopRange(); min > max {
		errs = append(errs, fmt.Errorf("gap band is empty: gap_size %v with margin %v does not fit world.height %v",
			c.Obstacles.GapSize, c.Obstacles.MinMargin, c.World.Height))
	}

	check(c.Pickups.Size > 0, "pickups.size must be positive, got %v", c.Pickups.Size)
	check(c.Pickups.Size <= c.Obstacles.GapSize, "pickups.size %v must fit in the gap %v", c.Pickups.Size, c.Obstacles.GapSize)
	check(c.Pickups.Chance >= 0 && c.Pickups.Chance <= 1, "pickups.chance must be in [0, 1], got %v", c.Pickups.Chance)

	for name, hex := range map[string]string{
		"capybara": c.Colors.Capybara,
		"tree":     c.Colors.Tree,
		"ground":   c.Colors.Ground,
		"sky":      c.Colors.Sky,
		"water":    c.Colors.Water,
		"mist":     c.Colors.Mist,
		"heart":    c.Colors.Heart,
	} {
		if _, err := ParseHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// MustValidate panics if the config is invalid.
func MustValidate(c Config) {
	if err := c.Validate(); err != nil {
		panic(err)
	}
}
