package capy

import "github.com/vovakirdan/flappy-capy/internal/config"

// Start begins a new run from the idle or ended phase.
// Counters, sequences, the frame counter and the ID allocator are reset and
// the character is placed at mid-world height at rest.
// Returns false when a run is already in progress.
func (s *State) Start(cfg *config.Config) bool {
	if s.Phase == PhaseRunning {
		return false
	}

	s.Obstacles = s.Obstacles[:0]
	s.Pickups = s.Pickups[:0]
	s.Score = 0
	s.Bonus = 0
	s.Frame = 0
	s.Cause = CauseNone
	s.impulse = false
	s.nextID = 0
	s.placeCharacter(cfg)
	s.Phase = PhaseRunning
	return true
}

// Restart starts a new run after the previous one ended.
func (s *State) Restart(cfg *config.Config) bool {
	if s.Phase != PhaseEnded {
		return false
	}
	return s.Start(cfg)
}

// end terminates the run.
func (s *State) end(cause Cause) {
	s.Phase = PhaseEnded
	s.Cause = cause
	s.impulse = false
}
