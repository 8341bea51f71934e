package flappy

// CheckPassed reports the pass event for an obstacle: true exactly once, the
// first time playerX is beyond the obstacle's trailing edge.
func CheckPassed(o *Obstacle, playerX float64) bool {
	if o.Passed || playerX <= o.Right() {
		return false
	}
	o.Passed = true
	return true
}

// RecordGameOver returns the high score after a run that ended with score.
func RecordGameOver(score, highScore int) int {
	return max(score, highScore)
}
