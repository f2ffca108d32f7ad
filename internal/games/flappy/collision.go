package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Outcome is the result of a collision check.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGround
	OutcomeObstacle
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeGround:
		return "ground"
	case OutcomeObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// ClampToPlayfield keeps the avatar between the ceiling and the ground.
// The ceiling is soft: it stops the avatar and zeroes its velocity.
// Reports whether the ceiling clamp fired.
func ClampToPlayfield(a *Avatar, groundLevel float64) (ceiling bool) {
	if a.Y+a.Height > groundLevel {
		a.Y = groundLevel - a.Height
	}
	if a.Y <= 0 {
		a.Y = 0
		a.Velocity = 0
		return true
	}
	return false
}

// HitsObstacle reports whether the avatar box touches the solid part of o.
func HitsObstacle(avatar core.Box, o Obstacle) bool {
	if !avatar.OverlapsX(o.Span()) {
		return false
	}
	return avatar.Top() < o.GapY || avatar.Bottom() > o.GapBottom()
}

// Detect checks the avatar against the ground and every live obstacle.
// Which obstacle was hit does not matter, only that one was.
func Detect(avatar core.Box, obstacles []Obstacle, groundLevel float64) Outcome {
	if avatar.Bottom() >= groundLevel {
		return OutcomeGround
	}
	for _, o := range obstacles {
		if HitsObstacle(avatar, o) {
			return OutcomeObstacle
		}
	}
	return OutcomeNone
}
