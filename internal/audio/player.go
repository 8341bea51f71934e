package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/emoji-flappy/internal/config"
	"github.com/vovakirdan/emoji-flappy/internal/flappy"
)

// Sink receives streamers to play.
type Sink interface {
	Play(s ...beep.Streamer)
}

// speakerSink plays through the system speaker.
type speakerSink struct{}

func (speakerSink) Play(s ...beep.Streamer) { speaker.Play(s...) }

// Player plays cues through a sink, honouring mute and master volume.
// A Player with no sink is silent. Safe for concurrent use.
type Player struct {
	mu     sync.Mutex
	sink   Sink
	rate   beep.SampleRate
	volume float64
	muted  bool
}

// NewPlayer creates a player writing to sink.
func NewPlayer(sink Sink, cfg config.Audio) *Player {
	return &Player{
		sink:   sink,
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		muted:  cfg.Muted,
	}
}

// Open initialises the speaker and returns a player on it. When the device
// cannot be opened it returns a silent player together with the error, so
// the caller can log it and carry on.
func Open(cfg config.Audio) (*Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return NewPlayer(nil, cfg), fmt.Errorf("audio: init speaker: %w", err)
	}
	return NewPlayer(speakerSink{}, cfg), nil
}

// SetMuted sets the mute flag.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Silent reports whether the player has no output device.
func (p *Player) Silent() bool {
	return p.sink == nil
}

// Play plays a cue. It reports whether anything was sent to the sink.
func (p *Player) Play(c Cue) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sink == nil || p.muted {
		return false, nil
	}

	s, err := Synth(c, p.rate)
	if err != nil {
		return false, err
	}
	p.sink.Play(withVolume(s, p.volume))
	return true, nil
}

// PlayEvents plays the cue of every event in a step result.
func (p *Player) PlayEvents(events []flappy.Event) error {
	for _, e := range events {
		c, ok := CueFor(e)
		if !ok {
			continue
		}
		if _, err := p.Play(c); err != nil {
			return err
		}
	}
	return nil
}

// Close stops anything still playing. It is safe on a nil player.
func (p *Player) Close() {
	if p == nil {
		return
	}
	if _, ok := p.sink.(speakerSink); ok {
		speaker.Clear()
	}
}
