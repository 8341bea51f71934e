package flappy

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/emoji-flappy/internal/config"
)

const frame = 1.0 / 60

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	s, err := New(config.Default(), WithSeed(seed))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// runUntilGameOver steps the session until it crashes or maxFrames pass.
func runUntilGameOver(s *Session, maxFrames int) StepResult {
	var res StepResult
	for i := 0; i < maxFrames; i++ {
		res = s.Update(frame)
		if res.State.GameOver {
			break
		}
	}
	return res
}

func TestNewInitialState(t *testing.T) {
	s := newTestSession(t, 1)
	cfg := config.Default()

	if s.Phase() != PhasePlaying || s.GameOver() {
		t.Error("expected Playing")
	}
	if !s.Running() {
		t.Error("expected running")
	}
	if s.Score() != 0 || s.HighScore() != 0 {
		t.Errorf("expected zero scores, got %d/%d", s.Score(), s.HighScore())
	}
	if len(s.Obstacles()) != 0 {
		t.Error("expected no obstacles")
	}
	p := s.Player()
	if p.X() != cfg.Player.StartX || p.Y() != cfg.Player.StartY || p.Velocity() != 0 {
		t.Errorf("unexpected start player %+v", p)
	}
	if s.Muted() != cfg.Audio.Muted {
		t.Errorf("expected muted=%v", cfg.Audio.Muted)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Obstacles.MinGap = 300
	cfg.Obstacles.MaxGap = 200

	_, err := New(cfg)
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestFallThroughFloor(t *testing.T) {
	s := newTestSession(t, 5)

	res := runUntilGameOver(s, 120)
	if !res.State.GameOver {
		t.Fatal("expected game over after falling")
	}
	if !res.Has(EventCrashed) {
		t.Error("expected crash event")
	}
	if s.Cause() != CauseBoundary {
		t.Errorf("expected boundary crash, got %v", s.Cause())
	}
	if res.State.Score != 0 {
		t.Errorf("score changed to %d", res.State.Score)
	}

	before := s.Snapshot()
	again := s.Update(frame)
	if len(again.Events) != 0 {
		t.Errorf("update during game over produced events %v", again.Events)
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("update during game over changed the session")
	}

	if !s.Restart() {
		t.Fatal("restart refused after game over")
	}
	if s.GameOver() || s.Score() != 0 {
		t.Error("expected Playing with score 0 after restart")
	}
}

func TestPlayerBelowFloorEndsRunInOneUpdate(t *testing.T) {
	s := newTestSession(t, 5)
	s.player.y = s.cfg.Playfield.Height + 100

	res := s.Update(frame)
	if !res.State.GameOver || s.Phase() != PhaseGameOver {
		t.Fatal("expected game over after a single update below the floor")
	}
	if s.Cause() != CauseBoundary {
		t.Errorf("expected boundary crash, got %v", s.Cause())
	}
	if res.State.Score != 0 || len(s.Obstacles()) != 0 {
		t.Errorf("expected score 0 and no spawn, got score %d with %d obstacles", res.State.Score, len(s.Obstacles()))
	}

	y := s.Player().Y()
	s.Update(frame)
	if s.Player().Y() != y {
		t.Error("update during game over moved the player")
	}

	if !s.Restart() || s.GameOver() || s.Score() != 0 {
		t.Fatal("expected Playing with score 0 after restart")
	}
	if s.Player().Y() != s.cfg.Player.StartY {
		t.Errorf("restart left the player at y=%v", s.Player().Y())
	}
}

func TestFlapIgnoredInGameOver(t *testing.T) {
	s := newTestSession(t, 5)
	runUntilGameOver(s, 120)

	v := s.Player().Velocity()
	if s.Flap() {
		t.Error("flap applied during game over")
	}
	if s.Player().Velocity() != v {
		t.Error("flap changed velocity during game over")
	}
}

func TestFlapLastOneWins(t *testing.T) {
	s := newTestSession(t, 5)
	cfg := config.Default()

	if !s.Flap() || !s.Flap() {
		t.Fatal("flap refused while playing")
	}
	s.Update(frame)

	want := cfg.Physics.FlapVelocity + cfg.Physics.Gravity*frame
	if got := s.Player().Velocity(); got != want {
		t.Errorf("velocity after double flap = %v, want %v", got, want)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	s := newTestSession(t, 5)
	s.Update(frame)
	y := s.Player().Y()

	if s.Restart() {
		t.Error("restart accepted while playing")
	}
	if s.Player().Y() != y {
		t.Error("restart changed the player while playing")
	}
}

func TestRestartResetsRun(t *testing.T) {
	s := newTestSession(t, 5)
	cfg := config.Default()

	// Keep the player aloft long enough to see obstacles.
	for i := 0; i < 200 && !s.GameOver(); i++ {
		if s.Player().Y() > cfg.Player.StartY {
			s.Flap()
		}
		s.Update(frame)
	}
	if len(s.Obstacles()) == 0 && !s.GameOver() {
		t.Fatal("expected obstacles after 200 frames")
	}

	s.score = 7
	s.phase = PhaseGameOver
	clock := s.Clock()

	if !s.Restart() {
		t.Fatal("restart refused")
	}
	if s.HighScore() != 7 {
		t.Errorf("expected high score 7, got %d", s.HighScore())
	}
	if s.Score() != 0 {
		t.Errorf("expected score 0, got %d", s.Score())
	}
	if len(s.Obstacles()) != 0 {
		t.Error("obstacles not cleared")
	}
	p := s.Player()
	if p.Y() != cfg.Player.StartY || p.Velocity() != 0 {
		t.Errorf("player not reset: y=%v v=%v", p.Y(), p.Velocity())
	}
	d := s.spawner.Deadline() - clock
	if d < cfg.Obstacles.MinInterval-eps || d > cfg.Obstacles.MaxInterval+eps {
		t.Errorf("deadline not rescheduled from session clock: %v", d)
	}
	if s.Cause() != CauseNone {
		t.Errorf("cause not cleared: %v", s.Cause())
	}
}

func TestHighScoreTraceAcrossRestarts(t *testing.T) {
	s := newTestSession(t, 9)

	scores := []int{25, 10, 30, 5}
	want := []int{25, 25, 30, 30}
	for i, score := range scores {
		s.score = score
		s.phase = PhaseGameOver
		if !s.Restart() {
			t.Fatalf("run %d: restart refused", i)
		}
		if s.HighScore() != want[i] {
			t.Errorf("run %d: high = %d, want %d", i, s.HighScore(), want[i])
		}
	}
}

func TestMuteSurvivesRestart(t *testing.T) {
	s := newTestSession(t, 5)

	if !s.ToggleMute() {
		t.Fatal("expected muted after toggle")
	}
	runUntilGameOver(s, 120)
	s.Restart()
	if !s.Muted() {
		t.Error("mute lost across restart")
	}
	if s.ToggleMute() {
		t.Error("expected unmuted after second toggle")
	}
}

func TestObstacleCollisionEndsRun(t *testing.T) {
	s := newTestSession(t, 5)
	// A column whose gap sits well below the player.
	s.obstacles = append(s.obstacles, Obstacle{X: 190, Width: 64, GapTop: 400, GapBottom: 560})

	res := s.Update(frame)
	if !res.State.GameOver {
		t.Fatal("expected game over on obstacle hit")
	}
	if s.Cause() != CauseObstacle {
		t.Errorf("expected obstacle crash, got %v", s.Cause())
	}
}

func TestPassingObstacleScoresOnce(t *testing.T) {
	s := newTestSession(t, 5)
	// Trailing edge moves past the player's centre this frame, gap around the player.
	s.obstacles = append(s.obstacles, Obstacle{X: 130, Width: 64, GapTop: 250, GapBottom: 350})

	res := s.Update(frame)
	if res.State.GameOver {
		t.Fatal("unexpected crash inside gap")
	}
	if res.State.Score != 1 || !res.Has(EventScored) {
		t.Fatalf("expected one point, got score %d events %v", res.State.Score, res.Events)
	}

	res = s.Update(frame)
	if res.State.Score != 1 || res.Has(EventScored) {
		t.Errorf("obstacle scored twice: score %d", res.State.Score)
	}
}

func TestRetiredObstaclesRemovedInOrder(t *testing.T) {
	s := newTestSession(t, 5)
	s.obstacles = append(s.obstacles,
		Obstacle{X: -63, Width: 64, GapTop: 100, GapBottom: 500, Passed: true},
		Obstacle{X: 400, Width: 64, GapTop: 100, GapBottom: 500},
		Obstacle{X: 600, Width: 64, GapTop: 100, GapBottom: 500},
	)

	s.Update(frame)
	obs := s.Obstacles()
	if len(obs) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(obs))
	}
	if obs[0].X >= obs[1].X {
		t.Error("obstacle order not preserved")
	}
}

func TestObstaclesReturnsCopy(t *testing.T) {
	s := newTestSession(t, 5)
	s.obstacles = append(s.obstacles, Obstacle{X: 400, Width: 64, GapTop: 100, GapBottom: 500})

	obs := s.Obstacles()
	obs[0].X = -1000
	if s.Obstacles()[0].X != 400 {
		t.Error("Obstacles exposed internal state")
	}
}

func TestQuitStopsUpdates(t *testing.T) {
	s := newTestSession(t, 5)
	s.Quit()

	y := s.Player().Y()
	s.Update(frame)
	if s.Running() {
		t.Error("still running after quit")
	}
	if s.Player().Y() != y || s.Clock() != 0 {
		t.Error("update ran after quit")
	}
	if s.Flap() {
		t.Error("flap applied after quit")
	}
}

func TestSessionDeterminism(t *testing.T) {
	play := func() (Snapshot, float64) {
		s, err := New(config.Default(), WithRand(rand.New(rand.NewSource(12345))))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		for i := 0; i < 900 && !s.GameOver(); i++ {
			if i%18 == 0 {
				s.Flap()
			}
			s.Update(frame)
		}
		return s.Snapshot(), s.Clock()
	}

	snap1, clock1 := play()
	snap2, clock2 := play()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
	if clock1 != clock2 {
		t.Errorf("clocks differ: %v vs %v", clock1, clock2)
	}
}

func TestSessionGapInvariantsDuringPlay(t *testing.T) {
	cfg := config.Default()
	s := newTestSession(t, 77)

	for i := 0; i < 3000; i++ {
		if s.GameOver() {
			s.Restart()
		}
		if s.Player().Y() > cfg.Player.StartY {
			s.Flap()
		}
		s.Update(frame)

		for _, o := range s.Obstacles() {
			if o.GapTop < cfg.Obstacles.Margin-eps || o.GapBottom > cfg.Playfield.Height-cfg.Obstacles.Margin+eps {
				t.Fatalf("frame %d: gap out of bounds %+v", i, o)
			}
			if o.Right() < 0 {
				t.Fatalf("frame %d: retired obstacle still live %+v", i, o)
			}
		}
		v := s.Player().Velocity()
		if v < cfg.Physics.MaxUpVelocity || v > cfg.Physics.MaxDownVelocity {
			t.Fatalf("frame %d: velocity %v out of range", i, v)
		}
	}
}

func TestSnapshotBestScore(t *testing.T) {
	s := newTestSession(t, 5)
	s.highScore = 10
	s.score = 12

	snap := s.Snapshot()
	if snap.BestScore() != 12 {
		t.Errorf("expected best 12, got %d", snap.BestScore())
	}
	if snap.Playfield != config.Default().Playfield {
		t.Error("snapshot playfield mismatch")
	}
}
