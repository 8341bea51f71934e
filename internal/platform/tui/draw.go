package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/emoji-flappy/internal/config"
	"github.com/vovakirdan/emoji-flappy/internal/core"
	"github.com/vovakirdan/emoji-flappy/internal/flappy"
	"github.com/vovakirdan/emoji-flappy/internal/skin"
)

// Layout: one HUD row on top, one ground row at the bottom, the world in
// between scaled to fit.
const (
	hudRows    = 1
	groundRows = 1
)

// cloud is a decorative background object in world coordinates.
type cloud struct {
	x, y  float64
	speed float64 // Fraction of the scroll speed
}

var clouds = []cloud{
	{x: 120, y: 90, speed: 0.2},
	{x: 420, y: 160, speed: 0.15},
	{x: 690, y: 60, speed: 0.25},
}

// viewport maps world coordinates onto the screen's world area.
type viewport struct {
	cols, rows int
	worldW     float64
	worldH     float64
	top        int // First world row on screen
}

func newViewport(dst *core.Screen, pf config.Playfield) viewport {
	return viewport{
		cols:   dst.Width(),
		rows:   max(dst.Height()-hudRows-groundRows, 1),
		worldW: pf.Width,
		worldH: pf.Height,
		top:    hudRows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * float64(v.cols) / v.worldW))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*float64(v.rows)/v.worldH))
}

func (v viewport) bottom() int {
	return v.top + v.rows
}

// Draw renders a frame of the game into dst.
func Draw(dst *core.Screen, snap flappy.Snapshot, sk skin.Skin, emojiOK bool) {
	dst.Clear()
	v := newViewport(dst, snap.Playfield)

	drawClouds(dst, v, snap, sk, emojiOK)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, o, sk, emojiOK)
	}
	drawPlayer(dst, v, snap.Player, sk, emojiOK)
	drawGround(dst, v, sk)
	drawHUD(dst, snap.State)

	if snap.State.GameOver {
		drawGameOver(dst, snap)
	}
}

// put writes a resolved glyph at (x, y).
func put(dst *core.Screen, x, y int, g skin.Glyph) {
	if g.Wide {
		dst.SetWide(x, y, g.Rune, g.Color)
		return
	}
	dst.SetColored(x, y, g.Rune, g.Color)
}

func drawClouds(dst *core.Screen, v viewport, snap flappy.Snapshot, sk skin.Skin, emojiOK bool) {
	g := sk.Glyph(skin.TagCloud, emojiOK)
	span := v.worldW + 100
	for _, c := range clouds {
		x := math.Mod(c.x-snap.Clock*snap.Scroll*c.speed, span)
		if x < 0 {
			x += span
		}
		x -= 50
		put(dst, v.col(x), v.row(c.y), g)
	}
}

func drawObstacle(dst *core.Screen, v viewport, o flappy.Obstacle, sk skin.Skin, emojiOK bool) {
	body := sk.Glyph(skin.TagObstacle, emojiOK)
	edge := sk.Glyph(skin.TagObstacleEdge, emojiOK)

	c0 := v.col(o.X)
	c1 := max(v.col(o.Right()), c0+1)
	gapTop := v.row(o.GapTop)
	gapBottom := max(v.row(o.GapBottom), gapTop+1)

	for y := v.top; y < gapTop; y++ {
		fill := body
		if y == gapTop-1 {
			fill = edge
		}
		fillRow(dst, c0, c1, y, fill)
	}
	for y := gapBottom; y < v.bottom(); y++ {
		fill := body
		if y == gapBottom {
			fill = edge
		}
		fillRow(dst, c0, c1, y, fill)
	}
}

// fillRow fills columns [c0, c1) of row y. Wide glyphs step two cells and
// an odd leftover cell gets a plain block.
func fillRow(dst *core.Screen, c0, c1, y int, g skin.Glyph) {
	if !g.Wide {
		dst.FillRect(c0, y, c1-c0, 1, g.Rune, g.Color)
		return
	}
	x := c0
	for ; x+1 < c1; x += 2 {
		dst.SetWide(x, y, g.Rune, g.Color)
	}
	if x < c1 {
		dst.SetColored(x, y, '▌', g.Color)
	}
}

func drawPlayer(dst *core.Screen, v viewport, p flappy.PlayerView, sk skin.Skin, emojiOK bool) {
	g := sk.Glyph(skin.TagPlayer, emojiOK)
	x := v.col(p.X)
	if g.Wide {
		x--
	}
	put(dst, x, v.row(p.Y), g)
}

func drawGround(dst *core.Screen, v viewport, sk skin.Skin) {
	g := sk.Glyph(skin.TagGround, false)
	for y := v.bottom(); y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), g.Rune, g.Color)
	}
}

func drawHUD(dst *core.Screen, st flappy.State) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", st.Score), core.ColorText)
	dst.DrawText(14, 0, fmt.Sprintf("Best: %d", st.HighScore), core.ColorDim)

	sound := "sound on"
	if st.Muted {
		sound = "muted"
	}
	dst.DrawText(dst.Width()-len(sound)-1, 0, sound, core.ColorDim)
}

func drawGameOver(dst *core.Screen, snap flappy.Snapshot) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{"GAME OVER", core.ColorAlert},
		{causeText(snap.Cause), core.ColorDim},
		{fmt.Sprintf("Score: %d", snap.State.Score), core.ColorText},
		{fmt.Sprintf("Best:  %d", snap.BestScore()), core.ColorText},
		{"space / r  restart", core.ColorDim},
	}

	w, h := 26, len(lines)+2
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	dst.FillRect(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h, core.ColorText)
	for i, l := range lines {
		dst.DrawText(x+(w-len([]rune(l.text)))/2, y+1+i, l.text, l.color)
	}
}

// DrawPaused overlays the pause banner.
func DrawPaused(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2, " PAUSED ", core.ColorAlert)
}

func causeText(c flappy.Cause) string {
	switch c {
	case flappy.CauseBoundary:
		return "Flew out of bounds"
	case flappy.CauseObstacle:
		return "Hit an obstacle"
	default:
		return ""
	}
}
