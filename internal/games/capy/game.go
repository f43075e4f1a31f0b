package capy

import (
	"github.com/vovakirdan/flappy-capy/internal/config"
	"github.com/vovakirdan/flappy-capy/internal/core"
)

// GameState is the observable state a frontend needs every frame.
type GameState struct {
	Score      int
	Bonus      int
	BestScore  int
	BestHearts int
	Phase      Phase
	Paused     bool
}

// GameOver reports whether the last run ended.
func (gs GameState) GameOver() bool {
	return gs.Phase == PhaseEnded
}

// StepResult contains the outcome of a single game step.
type StepResult struct {
	State  GameState
	Events Events
}

// Game is one player's session: the simulation state, the spawner, the
// records tracker and the pause flag.
type Game struct {
	cfg      config.Config // Scaled to the runtime tick rate
	rt       core.RuntimeConfig
	state    State
	spawner  *Spawner
	records  *Records
	paused   bool
	sessions int64 // Runs started so far, mixed into the seed
	summary  Summary
}

// New creates a game in the idle phase. cfg is authored for
// config.BaseTickRate and is rescaled to rt.TickRate.
// A nil records tracker keeps bests in memory. New panics on an invalid
// config.
func New(cfg config.Config, rt core.RuntimeConfig, records *Records) *Game {
	config.MustValidate(cfg)
	if records == nil {
		records = NewRecords(nil, nil)
	}
	g := &Game{
		cfg:     cfg.ScaleTo(rt.TickRate),
		rt:      rt,
		records: records,
	}
	g.spawner = NewSpawner(&g.cfg, NewSource(rt.Seed))
	g.state.placeCharacter(&g.cfg)
	return g
}

// Config returns the scaled configuration the simulation runs with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Start begins a run from the idle or ended phase.
// Each run reseeds the spawner: the first run uses the runtime seed as is,
// later runs offset it by the number of runs started.
func (g *Game) Start() bool {
	if !g.state.Start(&g.cfg) {
		return false
	}
	g.spawner.Reseed(NewSource(g.rt.Seed + g.sessions))
	g.sessions++
	g.paused = false
	g.summary = Summary{}
	return true
}

// Restart begins a new run after the previous one ended.
func (g *Game) Restart() bool {
	if g.state.Phase != PhaseEnded {
		return false
	}
	return g.Start()
}

// Impulse queues an impulse for the next step.
// Ignored unless a run is in progress and not paused.
func (g *Game) Impulse() bool {
	if g.paused {
		return false
	}
	return g.state.QueueImpulse()
}

// TogglePause pauses or resumes a running game.
func (g *Game) TogglePause() {
	if g.state.Running() {
		g.paused = !g.paused
	}
}

// Step applies the queued input and advances one step while running.
func (g *Game) Step(in core.InputFrame) StepResult {
	switch g.state.Phase {
	case PhaseIdle:
		if in.Has(core.ActionStart) {
			g.Start()
		}
		return StepResult{State: g.State()}
	case PhaseEnded:
		if in.Has(core.ActionRestart) || in.Has(core.ActionStart) {
			g.Restart()
		}
		return StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if g.paused {
		return StepResult{State: g.State()}
	}

	if in.Has(core.ActionImpulse) {
		g.Impulse()
	}

	events := Step(&g.state, &g.cfg, g.spawner)
	if g.state.Phase == PhaseEnded {
		g.summary = g.records.Finish(g.state.Score, g.state.Bonus, g.state.Cause)
		if g.summary.Record() {
			events = append(events, EventRecord)
		}
	}

	return StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() GameState {
	best, hearts := g.records.Best()
	return GameState{
		Score:      g.state.Score,
		Bonus:      g.state.Bonus,
		BestScore:  best,
		BestHearts: hearts,
		Phase:      g.state.Phase,
		Paused:     g.paused,
	}
}

// Summary returns the result of the last finished run.
// ok is false while no run has ended since the last start.
func (g *Game) Summary() (sum Summary, ok bool) {
	return g.summary, g.state.Phase == PhaseEnded
}
