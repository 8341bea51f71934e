package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/emoji-flappy/internal/flappy"
	"github.com/vovakirdan/emoji-flappy/internal/platform/host"
)

// Debug font cell size.
const (
	charW = 6
	lineH = 16
)

var (
	skyColor      = color.RGBA{R: 200, G: 232, B: 255, A: 255}
	playerColor   = color.RGBA{R: 255, G: 220, A: 255}
	eyeColor      = color.RGBA{A: 255}
	obstacleColor = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	edgeColor     = color.RGBA{G: 100, A: 255}
	shadeColor    = color.RGBA{A: 128}
	panelColor    = color.RGBA{R: 20, G: 20, B: 30, A: 200}
)

func drawObstacle(dst *ebiten.Image, o flappy.Obstacle, height float64) {
	for _, r := range []struct{ y, h float64 }{
		{0, o.GapTop},
		{o.GapBottom, height - o.GapBottom},
	} {
		x, y := float32(o.X), float32(r.y)
		w, h := float32(o.Width), float32(r.h)
		vector.FillRect(dst, x, y, w, h, obstacleColor, false)
		vector.StrokeRect(dst, x, y, w, h, 2, edgeColor, false)
	}
}

func drawPlayer(dst *ebiten.Image, p flappy.PlayerView) {
	cx, cy := float32(p.X), float32(p.Y)
	vector.DrawFilledCircle(dst, cx, cy, float32(p.HalfExtent), playerColor, true)
	vector.DrawFilledCircle(dst, cx+5, cy-5, 3, eyeColor, true)
}

func drawHUD(dst *ebiten.Image, st flappy.State) {
	sound := "sound on"
	if st.Muted {
		sound = "muted"
	}
	text := fmt.Sprintf("Score: %d   Best: %d   %s", st.Score, st.HighScore, sound)
	vector.FillRect(dst, 6, 6, float32(len(text)*charW+12), lineH+4, panelColor, false)
	ebitenutil.DebugPrintAt(dst, text, 12, 8)
}

func drawGameOver(dst *ebiten.Image, snap flappy.Snapshot) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	vector.FillRect(dst, 0, 0, float32(w), float32(h), shadeColor, false)

	sound := "Sound: ON"
	if snap.State.Muted {
		sound = "Sound: OFF"
	}
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", snap.State.Score),
		fmt.Sprintf("High Score: %d", snap.BestScore()),
		"",
		"Press Space to Restart",
		sound + " (M to toggle)",
	}
	drawCentered(dst, lines, h/2-60)
}

func drawRuns(dst *ebiten.Image, runs []host.RunRecord) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	vector.FillRect(dst, 0, 0, float32(w), float32(h), panelColor, false)

	lines := []string{"RUNS THIS SESSION", ""}
	if len(runs) == 0 {
		lines = append(lines, "No finished runs yet.")
	}
	for i, r := range runs {
		if i == 20 {
			lines = append(lines, fmt.Sprintf("... %d more", len(runs)-i))
			break
		}
		lines = append(lines, fmt.Sprintf("#%-3d score %-4d best %-4d %-8s %s",
			r.Number, r.Score, r.Best, r.Cause, r.EndedAt.Format("15:04:05")))
	}
	lines = append(lines, "", "Tab to return")
	drawCentered(dst, lines, 60)
}

func drawBanner(dst *ebiten.Image, text string) {
	drawCentered(dst, []string{text}, dst.Bounds().Dy()/2)
}

// drawCentered prints lines centred horizontally from y downward.
func drawCentered(dst *ebiten.Image, lines []string, y int) {
	w := dst.Bounds().Dx()
	for i, l := range lines {
		ebitenutil.DebugPrintAt(dst, l, (w-len(l)*charW)/2, y+i*lineH)
	}
}
