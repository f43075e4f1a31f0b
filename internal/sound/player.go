package sound

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/flappy-capy/internal/games/capy"
)

// Player plays cues. Implementations must not block the game loop.
type Player interface {
	Play(c Cue)
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// PlayEvents plays the cues for one step's events.
func PlayEvents(p Player, events capy.Events) {
	if p == nil {
		return
	}
	for _, c := range CuesFor(events) {
		p.Play(c)
	}
}

// Engine mixes active cues into one endless stream. The audio device pulls
// from Stream on its own goroutine while the game loop calls Play.
type Engine struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	muted  bool
}

// NewEngine creates an engine at the given master volume (0..1).
func NewEngine(rate beep.SampleRate, volume float64) *Engine {
	return &Engine{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: volume,
	}
}

// Play starts a cue on top of whatever is playing.
func (e *Engine) Play(c Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.muted {
		return
	}
	if s := Streamer(c, e.volume, e.rate); s != nil {
		e.mixer.Add(s)
	}
}

// SetMuted silences new cues and drops the ones playing.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.muted = muted
	if muted {
		e.mixer.Clear()
	}
}

// Active returns the number of cues still playing.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mixer.Len()
}

// Stream fills samples with the mix. It never ends: silence is produced
// when nothing plays, so the device keeps pulling.
func (e *Engine) Stream(samples [][2]float64) (n int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n, _ = e.mixer.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

// Err always returns nil.
func (e *Engine) Err() error { return nil }

var (
	_ Player        = (*Engine)(nil)
	_ Player        = Nop{}
	_ beep.Streamer = (*Engine)(nil)
)
