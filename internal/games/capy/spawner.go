package capy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-capy/internal/config"
)

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource creates a deterministic source for the given seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Spawner creates obstacles and pickups on a fixed cadence.
type Spawner struct {
	cfg *config.Config
	src Source
}

// NewSpawner creates a spawner drawing from src.
func NewSpawner(cfg *config.Config, src Source) *Spawner {
	return &Spawner{cfg: cfg, src: src}
}

// Reseed replaces the random source, typically once per session.
func (sp *Spawner) Reseed(src Source) {
	sp.src = src
}

// Due reports whether a spawn happens on the given frame.
// Frames are counted from the session start, so the first spawn is on
// frame SpawnInterval.
func (sp *Spawner) Due(frame int) bool {
	interval := sp.cfg.Obstacles.SpawnInterval
	return interval > 0 && frame > 0 && frame%interval == 0
}

// Spawn appends one obstacle at the right edge of the world and, with
// probability Pickups.Chance, one pickup centred in its gap.
// The first draw picks the gap position, the second decides the pickup.
func (sp *Spawner) Spawn(s *State) {
	obs := sp.cfg.Obstacles
	minTop, maxTop := sp.cfg.GapTopRange()
	gapTop := minTop + sp.src.Float64()*(maxTop-minTop)

	o := Obstacle{
		ID:        s.allocID(),
		X:         sp.cfg.World.Width,
		W:         obs.Width,
		GapTop:    gapTop,
		GapBottom: gapTop + obs.GapSize,
	}
	s.Obstacles = append(s.Obstacles, o)

	if sp.src.Float64() < sp.cfg.Pickups.Chance {
		size := sp.cfg.Pickups.Size
		s.Pickups = append(s.Pickups, Pickup{
			ID:   s.allocID(),
			X:    o.X + (o.W-size)/2,
			Y:    gapTop + obs.GapSize/2 - size/2,
			Size: size,
		})
	}
}
