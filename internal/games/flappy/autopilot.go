package flappy

// Autopilot is a simple bot that flaps whenever the avatar is about to sink
// below the next gap. It is used by the headless bot command and by tests.
type Autopilot struct {
	// Margin keeps the avatar this far above the bottom of the gap.
	Margin float64
	// Restart makes the bot start a new session after a collision.
	Restart bool
}

// Decide returns the command to submit for the next tick.
func (a Autopilot) Decide(s Snapshot) Command {
	switch s.Phase {
	case PhaseIdle:
		return CommandStart
	case PhaseEnded:
		if a.Restart {
			return CommandRestart
		}
		return CommandNone
	}

	// With no obstacle in sight, cruise in the lower third of the sky.
	floor := s.GroundLevel - s.GroundLevel/3
	if o, ok := s.NextObstacle(); ok {
		floor = o.GapBottom()
	}

	predictedBottom := s.Avatar.Y + s.Avatar.Height + s.Avatar.Velocity
	if s.Avatar.Velocity >= 0 && predictedBottom > floor-a.Margin {
		return CommandImpulse
	}
	return CommandNone
}
