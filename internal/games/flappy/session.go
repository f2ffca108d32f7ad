package flappy

// Phase is the discrete state of a play session.
type Phase int

const (
	PhaseIdle    Phase = iota // Waiting for the first start
	PhaseRunning              // Simulation active
	PhaseEnded                // Collided, waiting for restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session owns the phase, the current score and the best score.
// It is the only place phase transitions happen; any transition not listed
// on its methods is rejected.
type Session struct {
	phase Phase
	score int
	best  int
}

// NewSession creates an idle session with a previously stored best score.
func NewSession(best int) *Session {
	return &Session{best: max(best, 0)}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Best returns the best score seen so far.
func (s *Session) Best() int { return s.best }

// Start moves idle -> running and zeroes the score.
func (s *Session) Start() bool {
	if s.phase != PhaseIdle {
		return false
	}
	s.begin()
	return true
}

// Restart moves ended -> running and zeroes the score.
func (s *Session) Restart() bool {
	if s.phase != PhaseEnded {
		return false
	}
	s.begin()
	return true
}

func (s *Session) begin() {
	s.phase = PhaseRunning
	s.score = 0
}

// AddPoint increments the score by one. Only valid while running.
func (s *Session) AddPoint() bool {
	if s.phase != PhaseRunning {
		return false
	}
	s.score++
	return true
}

// End moves running -> ended, freezing the score.
// Reports whether the score became the new best.
func (s *Session) End() (newBest bool) {
	if s.phase != PhaseRunning {
		return false
	}
	s.phase = PhaseEnded
	if s.score > s.best {
		s.best = s.score
		return true
	}
	return false
}
