// Package sound synthesizes the game's sound cues with beep and mixes them
// into a single stream for an audio device.
package sound

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/flappy-capy/internal/games/capy"
)

// SampleRate is the rate all cues are synthesized at.
const SampleRate = beep.SampleRate(44100)

// Cue identifies a sound effect.
type Cue int

const (
	CueImpulse Cue = iota // rising chirp
	CueHeart              // two-note coin
	CueCrash              // noise burst
	CueRecord             // bell
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueImpulse:
		return "impulse"
	case CueHeart:
		return "heart"
	case CueCrash:
		return "crash"
	case CueRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Cue lengths
const (
	ImpulseDuration = 90 * time.Millisecond
	CoinNote1       = 70 * time.Millisecond
	CoinNote2       = 160 * time.Millisecond
	CrashDuration   = 280 * time.Millisecond
	BellDuration    = 600 * time.Millisecond
)

// Streamer builds a fresh stream for the cue at the given volume (0..1).
func Streamer(c Cue, vol float64, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueImpulse:
		chirp := Sweep(440, 880, ImpulseDuration, WaveSquare, rate)
		return volume(Envelope(chirp, ImpulseDuration, 5*time.Millisecond, 40*time.Millisecond, rate), vol*0.4)

	case CueHeart:
		n1 := Envelope(Tone(987.77, CoinNote1, WaveSquare, rate), CoinNote1, 2*time.Millisecond, 10*time.Millisecond, rate)
		n2 := Envelope(Tone(1318.51, CoinNote2, WaveSquare, rate), CoinNote2, 2*time.Millisecond, 120*time.Millisecond, rate)
		return volume(beep.Seq(n1, n2), vol*0.35)

	case CueCrash:
		noise := Tone(0, CrashDuration, WaveNoise, rate)
		thud := Sweep(160, 40, CrashDuration, WaveSine, rate)
		mixed := beep.Mix(volume(noise, 0.6), volume(thud, 0.8))
		return volume(Envelope(mixed, CrashDuration, 2*time.Millisecond, 220*time.Millisecond, rate), vol*0.5)

	case CueRecord:
		fund := Envelope(Tone(880, BellDuration, WaveSine, rate), BellDuration, 5*time.Millisecond, 550*time.Millisecond, rate)
		over := Envelope(Tone(1760, BellDuration, WaveSine, rate), BellDuration, 5*time.Millisecond, 300*time.Millisecond, rate)
		return volume(beep.Mix(volume(fund, 0.7), volume(over, 0.3)), vol*0.5)
	}
	return nil
}

// CuesFor maps step events to the cues to play.
func CuesFor(events capy.Events) []Cue {
	var cues []Cue
	for _, e := range events {
		switch e {
		case capy.EventImpulse:
			cues = append(cues, CueImpulse)
		case capy.EventPickup:
			cues = append(cues, CueHeart)
		case capy.EventEnded:
			cues = append(cues, CueCrash)
		case capy.EventRecord:
			cues = append(cues, CueRecord)
		}
	}
	return cues
}
