// Package audio synthesises the game's sound cues and plays them through the
// system speaker.
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/emoji-flappy/internal/flappy"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueFlap Cue = iota
	CueScore
	CueCrash
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueScore:
		return "score"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Cue lengths.
const (
	flapDuration  = 80 * time.Millisecond
	scoreNote     = 70 * time.Millisecond
	crashDuration = 250 * time.Millisecond
)

// CueFor maps a simulation event to its cue.
func CueFor(e flappy.Event) (Cue, bool) {
	switch e {
	case flappy.EventScored:
		return CueScore, true
	case flappy.EventCrashed:
		return CueCrash, true
	default:
		return 0, false
	}
}

// Synth builds a fresh streamer for the cue at unity gain.
func Synth(c Cue, rate beep.SampleRate) (beep.Streamer, error) {
	switch c {
	case CueFlap:
		return sweep(rate, 600, 1200, rate.N(flapDuration)), nil
	case CueScore:
		lo, err := generators.SineTone(rate, 880)
		if err != nil {
			return nil, fmt.Errorf("audio: score tone: %w", err)
		}
		hi, err := generators.SineTone(rate, 1320)
		if err != nil {
			return nil, fmt.Errorf("audio: score tone: %w", err)
		}
		n := rate.N(scoreNote)
		return beep.Seq(
			fade(beep.Take(n, lo), n),
			fade(beep.Take(n, hi), n),
		), nil
	case CueCrash:
		return noise(rate.N(crashDuration)), nil
	default:
		return nil, fmt.Errorf("audio: unknown cue %d", c)
	}
}

// sweep is a sine chirp from f0 to f1 Hz over n samples.
func sweep(rate beep.SampleRate, f0, f1 float64, n int) beep.Streamer {
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= n {
				return i, i > 0
			}
			t := float64(pos) / float64(n)
			freq := f0 + (f1-f0)*t
			v := math.Sin(2*math.Pi*phase) * (1 - t)
			samples[i][0] = v
			samples[i][1] = v
			phase += freq / float64(rate)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	})
}

// noise is a white noise burst with a linear decay over n samples.
func noise(n int) beep.Streamer {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= n {
				return i, i > 0
			}
			v := (rng.Float64()*2 - 1) * (1 - float64(pos)/float64(n))
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// fade applies a linear release over the last quarter of n samples.
func fade(s beep.Streamer, n int) beep.Streamer {
	pos := 0
	release := n / 4
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		got, ok := s.Stream(samples)
		for i := 0; i < got; i++ {
			if left := n - pos; release > 0 && left < release {
				g := float64(left) / float64(release)
				samples[i][0] *= g
				samples[i][1] *= g
			}
			pos++
		}
		return got, ok
	})
}

// withVolume scales s by a linear gain in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
