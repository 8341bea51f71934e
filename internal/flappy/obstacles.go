package flappy

import (
	"math/rand"

	"github.com/vovakirdan/emoji-flappy/internal/config"
	"github.com/vovakirdan/emoji-flappy/internal/core"
)

// Obstacle is a pair of blocking columns with a passable gap between them.
type Obstacle struct {
	X         float64 // Left edge, decreases as the world scrolls
	Width     float64
	GapTop    float64 // Bottom edge of the top column
	GapBottom float64 // Top edge of the bottom column
	Passed    bool    // Set once the player has cleared it
}

// GapSize returns the height of the passable gap.
func (o Obstacle) GapSize() float64 {
	return o.GapBottom - o.GapTop
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// TopRect returns the collision rectangle of the upper column.
func (o Obstacle) TopRect() core.Rect {
	return core.NewRect(o.X, 0, o.Width, o.GapTop)
}

// BottomRect returns the collision rectangle of the lower column.
func (o Obstacle) BottomRect(playfieldHeight float64) core.Rect {
	return core.NewRect(o.X, o.GapBottom, o.Width, playfieldHeight-o.GapBottom)
}

// Spawner creates obstacles at randomised intervals and moves them.
type Spawner struct {
	rng      *rand.Rand
	cfg      config.Obstacles
	width    float64 // playfield width, spawn x
	height   float64 // playfield height
	speed    float64 // scroll speed, px/s
	deadline float64 // session time of the next spawn
}

// NewSpawner creates a spawner drawing from rng. The first deadline is
// scheduled relative to time zero.
func NewSpawner(cfg config.Config, rng *rand.Rand) *Spawner {
	s := &Spawner{
		rng:    rng,
		cfg:    cfg.Obstacles,
		width:  cfg.Playfield.Width,
		height: cfg.Playfield.Height,
		speed:  cfg.Physics.ScrollSpeed,
	}
	s.Schedule(0)
	return s
}

// Schedule sets the next spawn deadline to now plus a random interval.
func (s *Spawner) Schedule(now float64) {
	s.deadline = now + s.uniform(s.cfg.MinInterval, s.cfg.MaxInterval)
}

// Deadline returns the session time at which the next obstacle spawns.
func (s *Spawner) Deadline() float64 {
	return s.deadline
}

// MaybeSpawn returns a new obstacle at the right edge when now has reached
// the deadline, and schedules the next one.
func (s *Spawner) MaybeSpawn(now float64) (Obstacle, bool) {
	if now < s.deadline {
		return Obstacle{}, false
	}

	gap := s.uniform(s.cfg.MinGap, s.cfg.MaxGap)
	// A uniform top edge in [margin, height-margin-gap] is a uniform centre
	// in [gap/2+margin, height-gap/2-margin].
	top := s.uniform(s.cfg.Margin, s.height-s.cfg.Margin-gap)

	s.Schedule(now)

	return Obstacle{
		X:         s.width,
		Width:     s.cfg.Width,
		GapTop:    top,
		GapBottom: top + gap,
	}, true
}

// Advance scrolls an obstacle left by dt seconds of travel.
func (s *Spawner) Advance(o *Obstacle, dt float64) {
	o.X -= s.speed * dt
}

// IsRetired reports whether the obstacle has fully left the playfield.
func (s *Spawner) IsRetired(o Obstacle) bool {
	return o.Right() < 0
}

// uniform draws from [lo, hi). A degenerate range returns lo.
func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
