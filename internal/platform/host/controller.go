// Package host holds the frame logic shared by the terminal and window
// hosts: applying a frame's inputs to the session, stepping it, firing audio
// cues and keeping the in-memory list of finished runs.
package host

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/emoji-flappy/internal/audio"
	"github.com/vovakirdan/emoji-flappy/internal/core"
	"github.com/vovakirdan/emoji-flappy/internal/flappy"
)

// RunRecord is one finished run of this process. Nothing is written to disk.
type RunRecord struct {
	Number   int
	Score    int
	Best     int
	Duration time.Duration
	Cause    flappy.Cause
	EndedAt  time.Time
}

// Controller drives a session for a host. It is used from the host's single
// update goroutine.
type Controller struct {
	session  *flappy.Session
	audio    *audio.Player
	logger   *log.Logger
	runs     []RunRecord // Newest first
	runStart float64     // Session clock when the current run began
	paused   bool
	overlay  bool // Runs list shown
	quit     bool
}

// NewController wraps session. The audio player and logger are optional.
func NewController(session *flappy.Session, player *audio.Player, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player != nil {
		player.SetMuted(session.Muted())
	}
	return &Controller{
		session: session,
		audio:   player,
		logger:  logger,
	}
}

// Apply applies the actions collected for a frame. Quit wins over
// everything; mute, pause and the runs overlay toggle; flap restarts a
// finished run and flaps otherwise.
func (c *Controller) Apply(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		c.Quit()
		return
	}

	if in.Has(core.ActionRuns) {
		c.overlay = !c.overlay
	}
	if in.Has(core.ActionPause) && !c.session.GameOver() {
		c.paused = !c.paused
		c.logger.Debug("pause toggled", "paused", c.paused)
	}
	if in.Has(core.ActionMute) {
		muted := c.session.ToggleMute()
		if c.audio != nil {
			c.audio.SetMuted(muted)
		}
		c.logger.Debug("mute toggled", "muted", muted)
	}
	if c.Frozen() {
		return
	}

	switch {
	case c.session.GameOver() && (in.Has(core.ActionFlap) || in.Has(core.ActionRestart)):
		c.restart()
	case in.Has(core.ActionFlap):
		if c.session.Flap() {
			c.playCue(audio.CueFlap)
		}
	}
}

// Step advances the session by dt seconds unless the host is frozen.
// now stamps a run that ends during this step.
func (c *Controller) Step(dt float64, now time.Time) flappy.StepResult {
	if c.Frozen() || c.quit {
		return flappy.StepResult{State: c.session.State()}
	}

	result := c.session.Update(dt)
	if len(result.Events) > 0 && c.audio != nil {
		if err := c.audio.PlayEvents(result.Events); err != nil {
			c.logger.Warn("audio cue failed", "err", err)
		}
	}
	if result.Has(flappy.EventCrashed) {
		c.recordRun(now)
	}
	return result
}

// Quit ends the session.
func (c *Controller) Quit() {
	if c.quit {
		return
	}
	c.quit = true
	c.session.Quit()
	c.logger.Info("quit", "score", c.session.Score(), "high_score", c.session.HighScore(), "runs", len(c.runs))
}

func (c *Controller) restart() {
	if !c.session.Restart() {
		return
	}
	c.runStart = c.session.Clock()
	c.logger.Info("restart", "high_score", c.session.HighScore())
}

func (c *Controller) recordRun(now time.Time) {
	snap := c.session.Snapshot()
	rec := RunRecord{
		Number:   len(c.runs) + 1,
		Score:    snap.State.Score,
		Best:     snap.BestScore(),
		Duration: time.Duration((snap.Clock - c.runStart) * float64(time.Second)),
		Cause:    snap.Cause,
		EndedAt:  now,
	}
	c.runs = append([]RunRecord{rec}, c.runs...)
	c.logger.Info("game over",
		"score", rec.Score,
		"high_score", rec.Best,
		"cause", rec.Cause,
		"duration", rec.Duration.Round(time.Millisecond),
	)
}

func (c *Controller) playCue(cue audio.Cue) {
	if c.audio == nil {
		return
	}
	if _, err := c.audio.Play(cue); err != nil {
		c.logger.Warn("audio cue failed", "cue", cue, "err", err)
	}
}

// Session returns the driven session.
func (c *Controller) Session() *flappy.Session { return c.session }

// Runs returns the finished runs, newest first.
func (c *Controller) Runs() []RunRecord { return c.runs }

// Paused reports whether the host paused the game.
func (c *Controller) Paused() bool { return c.paused }

// ShowRuns reports whether the runs list is open.
func (c *Controller) ShowRuns() bool { return c.overlay }

// Frozen reports whether steps are currently skipped.
func (c *Controller) Frozen() bool { return c.paused || c.overlay }

// Quitting reports whether the player asked to quit.
func (c *Controller) Quitting() bool { return c.quit }
