// Package capy implements the Flappy Capy simulation.
// A capybara falls under gravity, hops on impulses and must pass through
// gaps between cypress trees while collecting hearts.
package capy

import (
	"github.com/vovakirdan/flappy-capy/internal/config"
	"github.com/vovakirdan/flappy-capy/internal/core"
)

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhaseIdle    Phase = iota // before the first start
	PhaseRunning              // stepping
	PhaseEnded                // terminated, waiting for a restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Cause records why a run terminated.
type Cause int

const (
	CauseNone Cause = iota
	CauseFloor
	CauseObstacle
)

// String returns the cause as stored in the run history.
func (c Cause) String() string {
	switch c {
	case CauseFloor:
		return "floor"
	case CauseObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// Character is the player-controlled capybara.
// X is fixed for the whole session.
type Character struct {
	X, Y          float64 // Top-left corner in world units
	W, H          float64 // Hitbox size
	Velocity      float64 // Vertical velocity, negative = up
	Tilt          float64 // Degrees, derived from velocity
	ImpulseFrames int     // Remaining leg animation steps after an impulse
}

// Box returns the character's hitbox.
func (c Character) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.W, c.H)
}

// Obstacle is a gated pair of trees. Everything above GapTop and below
// GapBottom is solid.
type Obstacle struct {
	ID        uint64
	X         float64 // Left edge
	W         float64
	GapTop    float64 // Bottom edge of the upper tree
	GapBottom float64 // Top edge of the lower tree
	Scored    bool    // Whether the character has passed this obstacle
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// TopBox returns the upper tree's box.
func (o Obstacle) TopBox() core.Box {
	return core.NewBox(o.X, 0, o.W, o.GapTop)
}

// BottomBox returns the lower tree's box, extending to the floor.
func (o Obstacle) BottomBox(worldH float64) core.Box {
	return core.NewBox(o.X, o.GapBottom, o.W, worldH-o.GapBottom)
}

// Pickup is a heart collectible spawned inside an obstacle's gap.
type Pickup struct {
	ID    uint64
	X, Y  float64 // Top-left corner
	Size  float64 // Side of the square hitbox
	Phase float64 // Pulse animation phase
}

// Box returns the pickup's hitbox.
func (p Pickup) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}

// State is the mutable simulation state of one session.
// It is owned by a single mutator; the sequences are never shared.
type State struct {
	Character Character
	Obstacles []Obstacle // In spawn order
	Pickups   []Pickup   // In spawn order
	Score     int        // Obstacles passed
	Bonus     int        // Hearts collected
	Frame     int        // Steps since the session started
	Phase     Phase
	Cause     Cause

	impulse bool   // Queued impulse, applied at the start of the next step
	nextID  uint64 // Entity ID allocator, never reused within a session
}

// Running reports whether the session is stepping.
func (s *State) Running() bool {
	return s.Phase == PhaseRunning
}

// QueueImpulse queues an impulse for the next step.
// Returns false and does nothing unless the session is running.
func (s *State) QueueImpulse() bool {
	if !s.Running() {
		return false
	}
	s.impulse = true
	return true
}

// allocID returns a fresh entity ID.
func (s *State) allocID() uint64 {
	s.nextID++
	return s.nextID
}

// placeCharacter puts the character at mid-world height, at rest.
func (s *State) placeCharacter(cfg *config.Config) {
	s.Character = Character{
		X: cfg.Character.X,
		Y: cfg.World.Height / 2,
		W: cfg.Character.Width,
		H: cfg.Character.Height,
	}
}

// clone returns a deep copy of the state.
func (s *State) clone() State {
	c := *s
	c.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	c.Pickups = append([]Pickup(nil), s.Pickups...)
	return c
}
