package capy

// Snapshot captures the complete observable state for rendering and
// determinism testing. Its sequences are copies.
type Snapshot struct {
	Frame      int
	Phase      Phase
	Cause      Cause
	Paused     bool
	Score      int
	Bonus      int
	BestScore  int
	BestHearts int
	Character  Character
	Obstacles  []Obstacle
	Pickups    []Pickup
	WorldW     float64
	WorldH     float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.state.clone()
	best, hearts := g.records.Best()
	return Snapshot{
		Frame:      st.Frame,
		Phase:      st.Phase,
		Cause:      st.Cause,
		Paused:     g.paused,
		Score:      st.Score,
		Bonus:      st.Bonus,
		BestScore:  best,
		BestHearts: hearts,
		Character:  st.Character,
		Obstacles:  st.Obstacles,
		Pickups:    st.Pickups,
		WorldW:     g.cfg.World.Width,
		WorldH:     g.cfg.World.Height,
	}
}
