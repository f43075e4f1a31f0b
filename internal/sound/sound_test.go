package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappy-capy/internal/games/capy"
)

const testRate = beep.SampleRate(8000)

// drain streams s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestToneLengthAndRange(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveNoise} {
		samples := drain(t, Tone(440, 100*time.Millisecond, wave, testRate))
		assert.Len(t, samples, testRate.N(100*time.Millisecond))
		for i, s := range samples {
			require.LessOrEqual(t, math.Abs(s[0]), 1.0, "wave %d sample %d", wave, i)
			require.Equal(t, s[0], s[1], "mono signal on both channels")
		}
	}
}

func TestEnvelopeFadesOut(t *testing.T) {
	d := 100 * time.Millisecond
	samples := drain(t, Envelope(Tone(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 50*time.Millisecond, testRate))
	require.NotEmpty(t, samples)

	assert.Equal(t, 0.0, samples[0][0], "attack starts silent")
	assert.InDelta(t, 1.0, samples[len(samples)/3][0], 1e-9, "sustain at full level")
	assert.Less(t, math.Abs(samples[len(samples)-1][0]), 0.05, "release ends near silence")
}

func TestCueStreamersEnd(t *testing.T) {
	for _, c := range []Cue{CueImpulse, CueHeart, CueCrash, CueRecord} {
		s := Streamer(c, 1, testRate)
		require.NotNil(t, s, c.String())
		samples := drain(t, s)
		assert.NotEmpty(t, samples, c.String())
	}
	assert.Nil(t, Streamer(Cue(99), 1, testRate))
}

func TestCoinIsTwoNotes(t *testing.T) {
	samples := drain(t, Streamer(CueHeart, 1, testRate))
	assert.Len(t, samples, testRate.N(CoinNote1)+testRate.N(CoinNote2))
}

func TestSilentVolume(t *testing.T) {
	samples := drain(t, Streamer(CueImpulse, 0, testRate))
	for _, s := range samples {
		require.Equal(t, 0.0, s[0])
	}
}

func TestCuesFor(t *testing.T) {
	events := capy.Events{capy.EventImpulse, capy.EventScored, capy.EventPickup, capy.EventEnded, capy.EventRecord}
	assert.Equal(t, []Cue{CueImpulse, CueHeart, CueCrash, CueRecord}, CuesFor(events))
	assert.Empty(t, CuesFor(capy.Events{capy.EventScored}))
}

type recorder struct{ cues []Cue }

func (r *recorder) Play(c Cue) { r.cues = append(r.cues, c) }

func TestPlayEvents(t *testing.T) {
	r := &recorder{}
	PlayEvents(r, capy.Events{capy.EventPickup, capy.EventPickup})
	assert.Equal(t, []Cue{CueHeart, CueHeart}, r.cues)

	PlayEvents(nil, capy.Events{capy.EventEnded})
	PlayEvents(Nop{}, capy.Events{capy.EventEnded})
}

func TestEngineMixesAndDrains(t *testing.T) {
	e := NewEngine(testRate, 1)
	e.Play(CueImpulse)
	e.Play(CueHeart)
	assert.Equal(t, 2, e.Active())

	buf := make([][2]float64, 512)
	for i := 0; i < 100; i++ {
		n, ok := e.Stream(buf)
		require.True(t, ok, "engine stream never ends")
		require.Equal(t, len(buf), n)
	}
	assert.Equal(t, 0, e.Active())

	e.SetMuted(true)
	e.Play(CueCrash)
	assert.Equal(t, 0, e.Active())
}
