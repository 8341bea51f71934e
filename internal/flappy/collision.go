package flappy

import (
	"github.com/vovakirdan/emoji-flappy/internal/config"
	"github.com/vovakirdan/emoji-flappy/internal/core"
)

// Collider tests the player's hitbox against the playfield geometry.
type Collider struct {
	height float64
}

// NewCollider creates a collider for the given playfield.
func NewCollider(pf config.Playfield) Collider {
	return Collider{height: pf.Height}
}

// CollidesWithBoundary reports whether the hitbox touches or crosses the top
// or bottom edge of the playfield.
func (c Collider) CollidesWithBoundary(player core.Rect) bool {
	return player.Y <= 0 || player.Bottom() >= c.height
}

// CollidesWithObstacle reports whether the hitbox overlaps either column.
func (c Collider) CollidesWithObstacle(player core.Rect, o Obstacle) bool {
	return player.Intersects(o.TopRect()) || player.Intersects(o.BottomRect(c.height))
}
