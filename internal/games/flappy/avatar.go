package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Rotation tuning. The sprite tilts with velocity but never past maxRotation radians.
const (
	rotationFactor = 0.05
	maxRotation    = 0.5
)

// Avatar is the player-controlled bird. X never changes during a session.
type Avatar struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64 // Vertical, positive = down
	Gravity       float64 // Added to Velocity every tick
	JumpImpulse   float64 // Velocity after a flap, negative
}

// NewAvatar returns an avatar in the reset pose described by cfg.
func NewAvatar(cfg config.FlappyConfig) Avatar {
	return Avatar{
		X:           cfg.Player.X,
		Y:           cfg.Player.Y,
		Width:       cfg.Player.Width,
		Height:      cfg.Player.Height,
		Gravity:     cfg.Physics.Gravity,
		JumpImpulse: cfg.Physics.JumpImpulse,
	}
}

// Integrate advances the avatar by one tick.
// Bounds are not checked here; see ClampToPlayfield.
func (a *Avatar) Integrate() {
	a.Velocity += a.Gravity
	a.Y += a.Velocity
}

// Impulse replaces any accumulated velocity with the jump impulse.
func (a *Avatar) Impulse() {
	a.Velocity = a.JumpImpulse
}

// Rotation returns the sprite tilt in radians, derived from velocity.
func (a Avatar) Rotation() float64 {
	return core.ClampF(a.Velocity*rotationFactor, -maxRotation, maxRotation)
}

// Box returns the avatar's hitbox.
func (a Avatar) Box() core.Box {
	return core.NewBox(a.X, a.Y, a.Width, a.Height)
}
