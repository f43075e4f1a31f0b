// Package speakerout connects a sound engine to the system audio device.
// It is kept apart from package sound because the device backend needs cgo.
package speakerout

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy-capy/internal/sound"
)

// BufferDuration is the device buffer length. Shorter buffers lower cue
// latency at the cost of underruns on slow machines.
const BufferDuration = 50 * time.Millisecond

// Start initializes the speaker and plays the engine's mix on it.
func Start(volume float64) (*sound.Engine, error) {
	rate := sound.SampleRate
	if err := speaker.Init(rate, rate.N(BufferDuration)); err != nil {
		return nil, fmt.Errorf("speakerout: cannot initialize speaker: %w", err)
	}

	engine := sound.NewEngine(rate, volume)
	speaker.Play(engine)
	return engine, nil
}

// Stop silences the device.
func Stop() {
	speaker.Clear()
}
