package flappy

import "github.com/vovakirdan/emoji-flappy/internal/config"

// PlayerView is the drawable state of the player.
type PlayerView struct {
	X, Y       float64 // Centre
	Velocity   float64
	HalfExtent float64
}

// Snapshot is a read-only copy of everything a renderer needs for a frame.
type Snapshot struct {
	Playfield config.Playfield
	Player    PlayerView
	Obstacles []Obstacle
	State     State
	Cause     Cause
	Clock     float64 // Seconds of play, for decoration that scrolls with the world
	Scroll    float64 // Scroll speed in px/s
}

// Snapshot copies the session state for drawing.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Playfield: s.cfg.Playfield,
		Player: PlayerView{
			X:          s.player.X(),
			Y:          s.player.Y(),
			Velocity:   s.player.Velocity(),
			HalfExtent: s.player.HalfExtent(),
		},
		Obstacles: s.Obstacles(),
		State:     s.State(),
		Cause:     s.cause,
		Clock:     s.clock,
		Scroll:    s.cfg.Physics.ScrollSpeed,
	}
}

// BestScore returns the high score as it will stand after this run.
func (s Snapshot) BestScore() int {
	return RecordGameOver(s.State.Score, s.State.HighScore)
}
