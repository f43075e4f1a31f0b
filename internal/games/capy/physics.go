package capy

import (
	"github.com/vovakirdan/flappy-capy/internal/config"
	"github.com/vovakirdan/flappy-capy/internal/core"
)

// Step advances a running session by one fixed step.
// Order within a step:
//  1. frame counter, queued impulse
//  2. velocity, position, tilt, leg animation
//  3. floor (terminates, nothing else runs), then ceiling clamp
//  4. spawn, before movement, so a new obstacle is first seen at
//     World.Width - Speed
//  5. obstacles in spawn order: move, pass detection, collision; then prune
//  6. pickups in spawn order: move, pulse, collection, prune
//
// Step does nothing unless the state is running.
func Step(s *State, cfg *config.Config, sp *Spawner) Events {
	if !s.Running() {
		return nil
	}

	var events Events
	s.Frame++

	c := &s.Character
	if s.impulse {
		s.impulse = false
		c.Velocity = cfg.Physics.JumpStrength
		c.ImpulseFrames = cfg.Physics.ImpulseFrames
		events = append(events, EventImpulse)
	}

	integrate(c, cfg.Physics)

	if c.Y+c.H > cfg.World.Height {
		s.end(CauseFloor)
		return append(events, EventEnded)
	}
	if c.Y < 0 {
		c.Y = 0
		c.Velocity = 0
	}

	if sp.Due(s.Frame) {
		sp.Spawn(s)
	}

	speed := cfg.Obstacles.Speed
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		o.X -= speed

		if !o.Scored && o.Right() < c.X {
			o.Scored = true
			s.Score++
			events = append(events, EventScored)
		}

		if Collides(*c, *o) {
			s.end(CauseObstacle)
			return append(events, EventEnded)
		}
	}
	s.pruneObstacles()

	kept := s.Pickups[:0]
	for _, p := range s.Pickups {
		p.X -= speed
		p.Phase += cfg.Pickups.PulseStep

		if Collects(*c, p) {
			s.Bonus++
			events = append(events, EventPickup)
			continue
		}
		if p.X+p.Size < 0 {
			continue
		}
		kept = append(kept, p)
	}
	s.Pickups = kept

	return events
}

// integrate applies one step of gravity and derives the tilt.
func integrate(c *Character, ph config.Physics) {
	c.Velocity += ph.Gravity
	c.Y += c.Velocity
	c.Tilt = core.ClampF(c.Velocity*ph.TiltFactor, ph.TiltMin, ph.TiltMax)
	if c.ImpulseFrames > 0 {
		c.ImpulseFrames--
	}
}

// pruneObstacles removes obstacles whose trailing edge left the world.
func (s *State) pruneObstacles() {
	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if o.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	s.Obstacles = kept
}
