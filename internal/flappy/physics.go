package flappy

import (
	"github.com/vovakirdan/emoji-flappy/internal/config"
	"github.com/vovakirdan/emoji-flappy/internal/core"
)

// Body is the player's gravity-driven hitbox. Its x never changes; y and
// velocity are only written by Update and Flap.
type Body struct {
	x, y       float64
	velocity   float64
	halfExtent float64
	physics    config.Physics
}

// NewBody creates a body at rest centred on (x, y).
func NewBody(x, y, halfExtent float64, physics config.Physics) Body {
	return Body{
		x:          x,
		y:          y,
		halfExtent: halfExtent,
		physics:    physics,
	}
}

// Update integrates one step of dt seconds: gravity, velocity clamp, position.
// dt must be positive.
func (b *Body) Update(dt float64) {
	b.velocity += b.physics.Gravity * dt
	b.velocity = core.ClampF(b.velocity, b.physics.MaxUpVelocity, b.physics.MaxDownVelocity)
	b.y += b.velocity * dt
}

// Flap replaces the current velocity with the flap velocity.
func (b *Body) Flap() {
	b.velocity = b.physics.FlapVelocity
}

// X returns the horizontal centre.
func (b Body) X() float64 { return b.x }

// Y returns the vertical centre.
func (b Body) Y() float64 { return b.y }

// Velocity returns the vertical velocity in px/s, negative is up.
func (b Body) Velocity() float64 { return b.velocity }

// HalfExtent returns half the hitbox side length.
func (b Body) HalfExtent() float64 { return b.halfExtent }

// Rect returns the body's collision rectangle.
func (b Body) Rect() core.Rect {
	return core.RectAround(b.x, b.y, b.halfExtent)
}
