// Package flappy implements the simulation core of a Flappy Bird-style game:
// a player falls under gravity, flaps upward, and must pass through gaps in
// scrolling obstacles. The package draws nothing and performs no I/O; hosts
// feed it inputs and elapsed time and read back a Snapshot.
package flappy

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/emoji-flappy/internal/config"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Cause tells what ended a run.
type Cause int

const (
	CauseNone Cause = iota
	CauseBoundary
	CauseObstacle
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseBoundary:
		return "boundary"
	case CauseObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// Event is something that happened during an Update, used as an audio cue.
type Event int

const (
	EventScored Event = iota + 1
	EventCrashed
)

// State is the public status of a session.
type State struct {
	Score     int
	HighScore int
	GameOver  bool
	Running   bool
	Muted     bool
}

// StepResult is returned by Update.
type StepResult struct {
	State  State
	Events []Event
}

// Has reports whether the step produced the given event.
func (r StepResult) Has(e Event) bool {
	return slices.Contains(r.Events, e)
}

// Option configures a Session.
type Option func(*Session)

// WithRand makes the session draw all randomness from rng.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithSeed seeds the session's randomness. A zero seed keeps the default
// entropy-seeded source.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		if seed != 0 {
			s.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// Session is one player's game: the player, the live obstacles, the score and
// the Playing/GameOver state machine. A Session is driven from a single
// goroutine and is not safe for concurrent use.
type Session struct {
	cfg       config.Config
	rng       *rand.Rand
	player    Body
	obstacles []Obstacle
	spawner   *Spawner
	collider  Collider
	score     int
	highScore int
	phase     Phase
	cause     Cause
	running   bool
	muted     bool
	clock     float64 // seconds of play simulated so far
}

// New creates a session in the Playing state. The config is validated first.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	s := &Session{
		cfg:       cfg,
		obstacles: make([]Obstacle, 0, 8),
		collider:  NewCollider(cfg.Playfield),
		running:   true,
		muted:     cfg.Audio.Muted,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.spawner = NewSpawner(cfg, s.rng)
	s.player = s.newPlayer()
	return s, nil
}

// newPlayer creates the player at the fixed start position, at rest.
func (s *Session) newPlayer() Body {
	p := s.cfg.Player
	return NewBody(p.StartX, p.StartY, p.HalfExtent, s.cfg.Physics)
}

// Flap applies the flap impulse. It does nothing once the run is over and
// reports whether the impulse was applied.
func (s *Session) Flap() bool {
	if s.phase != PhasePlaying || !s.running {
		return false
	}
	s.player.Flap()
	return true
}

// Restart starts a new run after a game over, keeping the high score and the
// mute setting. It does nothing while playing and reports whether it restarted.
func (s *Session) Restart() bool {
	if s.phase != PhaseGameOver {
		return false
	}

	s.highScore = RecordGameOver(s.score, s.highScore)
	s.score = 0
	s.obstacles = s.obstacles[:0]
	s.player = s.newPlayer()
	s.spawner.Schedule(s.clock)
	s.phase = PhasePlaying
	s.cause = CauseNone
	return true
}

// ToggleMute flips the mute flag and returns the new value. Mute only
// matters to audio hosts; the simulation ignores it.
func (s *Session) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

// Quit clears the running flag. A session that is not running ignores
// Update and Flap.
func (s *Session) Quit() {
	s.running = false
}

// Update advances the simulation by dt seconds. It does nothing once the run
// is over. dt must be positive.
//
// Order within a step: player physics, boundary check, spawn, then for every
// obstacle in spawn order advance, collision check and pass check, and last
// the removal of retired obstacles. The first collision ends the step.
func (s *Session) Update(dt float64) StepResult {
	if s.phase != PhasePlaying || !s.running {
		return StepResult{State: s.State()}
	}

	s.clock += dt
	var events []Event

	s.player.Update(dt)
	if s.collider.CollidesWithBoundary(s.player.Rect()) {
		return s.crash(CauseBoundary, events)
	}

	if o, ok := s.spawner.MaybeSpawn(s.clock); ok {
		s.obstacles = append(s.obstacles, o)
	}

	hitbox := s.player.Rect()
	for i := range s.obstacles {
		o := &s.obstacles[i]
		s.spawner.Advance(o, dt)

		if s.collider.CollidesWithObstacle(hitbox, *o) {
			return s.crash(CauseObstacle, events)
		}
		if CheckPassed(o, s.player.X()) {
			s.score++
			events = append(events, EventScored)
		}
	}

	s.obstacles = slices.DeleteFunc(s.obstacles, s.spawner.IsRetired)

	return StepResult{State: s.State(), Events: events}
}

// crash moves the session to GameOver.
func (s *Session) crash(cause Cause, events []Event) StepResult {
	s.phase = PhaseGameOver
	s.cause = cause
	events = append(events, EventCrashed)
	return StepResult{State: s.State(), Events: events}
}

// State returns the current public status.
func (s *Session) State() State {
	return State{
		Score:     s.score,
		HighScore: s.highScore,
		GameOver:  s.phase == PhaseGameOver,
		Running:   s.running,
		Muted:     s.muted,
	}
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Cause returns what ended the current run, or CauseNone while playing.
func (s *Session) Cause() Cause { return s.cause }

// Player returns a copy of the player's body.
func (s *Session) Player() Body { return s.player }

// Obstacles returns a copy of the live obstacles in spawn order.
func (s *Session) Obstacles() []Obstacle { return slices.Clone(s.obstacles) }

// Score returns the score of the current run.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score committed by a restart.
func (s *Session) HighScore() int { return s.highScore }

// GameOver reports whether the current run has ended.
func (s *Session) GameOver() bool { return s.phase == PhaseGameOver }

// Running reports whether the session has not been quit.
func (s *Session) Running() bool { return s.running }

// Muted reports whether sound cues are muted.
func (s *Session) Muted() bool { return s.muted }

// Clock returns the simulated play time in seconds.
func (s *Session) Clock() float64 { return s.clock }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Config { return s.cfg }
