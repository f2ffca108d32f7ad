package flappy

import (
	"sync"
	"time"
)

// Events receives fire-and-forget notifications from the simulation.
// Implementations must not block; whatever they do cannot change the outcome of a tick.
type Events interface {
	OnFlap()
	OnScore(score int)
	OnCollision(outcome Outcome)
	OnSessionEnd(score, best int)
}

// NopEvents ignores every notification.
type NopEvents struct{}

func (NopEvents) OnFlap()               {}
func (NopEvents) OnScore(int)           {}
func (NopEvents) OnCollision(Outcome)   {}
func (NopEvents) OnSessionEnd(int, int) {}

// BestScoreStore persists the single best-score scalar.
// Both methods swallow their own failures: a failed load reports 0.
type BestScoreStore interface {
	LoadBestScore() int
	SaveBestScore(score int)
}

// MemoryBestScore keeps the best score in memory only.
type MemoryBestScore struct {
	mu    sync.Mutex
	score int
}

// LoadBestScore implements BestScoreStore.
func (m *MemoryBestScore) LoadBestScore() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// SaveBestScore implements BestScoreStore.
func (m *MemoryBestScore) SaveBestScore(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
}

// Clock supplies monotonically non-decreasing timestamps for spawn gating.
type Clock interface {
	Now() time.Duration
}

// TickClock is a clock that only moves when ticks advance it, so time spent
// suspended between ticks never reaches the simulation.
type TickClock struct {
	now time.Duration
}

// Now implements Clock.
func (c *TickClock) Now() time.Duration { return c.now }

// Advance moves the clock forward. Negative durations are ignored.
func (c *TickClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}
