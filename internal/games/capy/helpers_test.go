package capy

import (
	"errors"

	"github.com/vovakirdan/flappy-capy/internal/config"
	"github.com/vovakirdan/flappy-capy/internal/core"
)

// scriptedSource replays fixed values in a loop.
type scriptedSource struct {
	vals []float64
	i    int
}

func (s *scriptedSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// failingStore is a BestStore whose every call fails.
type failingStore struct{}

var errStore = errors.New("disk on fire")

func (failingStore) Best(string) (int, error)  { return 0, errStore }
func (failingStore) SetBest(string, int) error { return errStore }

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// calmConfig has no gravity and no spawning, so tests can place entities by hand.
func calmConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Physics.Gravity = 0
	cfg.Obstacles.SpawnInterval = 1 << 30
	return cfg
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}
