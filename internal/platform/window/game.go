// Package window runs the game in a desktop window with Ebitengine. The debug
// font cannot draw emoji, so the player and obstacles use plain shapes.
package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/emoji-flappy/internal/audio"
	"github.com/vovakirdan/emoji-flappy/internal/config"
	"github.com/vovakirdan/emoji-flappy/internal/core"
	"github.com/vovakirdan/emoji-flappy/internal/flappy"
	"github.com/vovakirdan/emoji-flappy/internal/platform/host"
)

const windowTitle = "Emoji Flappy"

// Options configures the window host.
type Options struct {
	Config config.Config
	Seed   int64
	TPS    int           // Updates per second, also the fixed step
	Audio  *audio.Player // Optional
	Logger *log.Logger   // Optional
}

// Game implements ebiten.Game.
type Game struct {
	ctrl  *host.Controller
	cfg   config.Config
	tps   int
	input core.InputFrame
}

// keyBindings maps keys to actions.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeySpace:  core.ActionFlap,
	ebiten.KeyUp:     core.ActionFlap,
	ebiten.KeyW:      core.ActionFlap,
	ebiten.KeyR:      core.ActionRestart,
	ebiten.KeyM:      core.ActionMute,
	ebiten.KeyP:      core.ActionPause,
	ebiten.KeyTab:    core.ActionRuns,
	ebiten.KeyQ:      core.ActionQuit,
	ebiten.KeyEscape: core.ActionQuit,
}

// New creates the window game and its session.
func New(opts Options) (*Game, error) {
	session, err := flappy.New(opts.Config, flappy.WithSeed(opts.Seed))
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	return &Game{
		ctrl:  host.NewController(session, opts.Audio, opts.Logger),
		cfg:   opts.Config,
		tps:   opts.TPS,
		input: core.NewInputFrame(),
	}, nil
}

// Update polls input and advances the session by one fixed step.
func (g *Game) Update() error {
	for k, a := range keyBindings {
		if inpututil.IsKeyJustPressed(k) {
			g.input.Set(a)
		}
	}

	g.ctrl.Apply(g.input)
	g.input.Clear()
	if g.ctrl.Quitting() {
		return ebiten.Termination
	}

	g.ctrl.Step(1/float64(g.tps), time.Now())
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.ctrl.Session().Snapshot()

	screen.Fill(skyColor)
	for _, o := range snap.Obstacles {
		drawObstacle(screen, o, snap.Playfield.Height)
	}
	drawPlayer(screen, snap.Player)
	drawHUD(screen, snap.State)

	switch {
	case g.ctrl.ShowRuns():
		drawRuns(screen, g.ctrl.Runs())
	case snap.State.GameOver:
		drawGameOver(screen, snap)
	case g.ctrl.Paused():
		drawBanner(screen, "PAUSED")
	}
}

// Layout keeps the logical screen at the playfield size.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.Playfield.Width), int(g.cfg.Playfield.Height)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(opts.Config.Playfield.Width), int(opts.Config.Playfield.Height))
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(g.tps)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
