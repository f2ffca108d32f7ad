// Package flappy implements the Flappy Bird simulation: physics, obstacle
// spawning, collision detection and the play session state machine.
// It knows nothing about terminals, sound devices or databases; those are
// collaborators injected through options.
package flappy

import (
	"sync/atomic"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

const (
	// ID is the storage key and CLI name of the game.
	ID = "flappy"
	// Title is the display name of the game.
	Title = "Flappy Bird"
)

// Game is the simulation loop. It is the only writer of world state; every
// mutation happens inside Tick. Submit may be called from any goroutine.
type Game struct {
	cfg         config.FlappyConfig
	groundLevel float64

	avatar     Avatar
	obstacles  []Obstacle
	generator  *Generator
	session    *Session
	background float64
	ticks      uint64

	clock     Clock
	tickClock *TickClock // Non-nil when the game owns its clock
	events    Events
	store     BestScoreStore
	seed      int64

	pending atomic.Int32
}

// Option configures a Game.
type Option func(*Game)

// WithEvents sets the receiver of flap/score/collision notifications.
func WithEvents(e Events) Option {
	return func(g *Game) {
		if e != nil {
			g.events = e
		}
	}
}

// WithBestScoreStore sets where the best score is loaded from and saved to.
func WithBestScoreStore(s BestScoreStore) Option {
	return func(g *Game) {
		if s != nil {
			g.store = s
		}
	}
}

// WithClock replaces the built-in tick clock with an external one.
func WithClock(c Clock) Option {
	return func(g *Game) {
		if c != nil {
			g.clock = c
			g.tickClock = nil
		}
	}
}

// WithSeed sets the obstacle RNG seed.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// New creates an idle game. The best score is loaded once, here.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	tc := &TickClock{}
	g := &Game{
		cfg:         cfg,
		groundLevel: cfg.Playfield.GroundLevel(),
		avatar:      NewAvatar(cfg),
		obstacles:   make([]Obstacle, 0, 8),
		clock:       tc,
		tickClock:   tc,
		events:      NopEvents{},
		store:       &MemoryBestScore{},
	}
	for _, opt := range opts {
		opt(g)
	}

	g.generator = NewGenerator(cfg, g.seed)
	g.session = NewSession(g.store.LoadBestScore())
	return g
}

// Submit buffers a command for the next tick. Only the latest command
// submitted between two ticks is kept.
func (g *Game) Submit(cmd Command) {
	g.pending.Store(int32(cmd))
}

// Tick advances the simulation by one frame. elapsed is the wall time since
// the previous tick and only drives the clock; physics is integrated per tick.
func (g *Game) Tick(elapsed time.Duration) {
	if g.tickClock != nil {
		g.tickClock.Advance(elapsed)
	}
	g.ticks++

	cmd := Command(g.pending.Swap(int32(CommandNone)))
	if g.apply(cmd) {
		// A start or restart is the whole tick.
		return
	}

	if g.session.Phase() != PhaseRunning {
		return
	}
	g.step()
}

// apply executes a command at the tick boundary.
// Reports whether the session was (re)started.
func (g *Game) apply(cmd Command) bool {
	switch cmd {
	case CommandImpulse:
		switch g.session.Phase() {
		case PhaseRunning:
			g.avatar.Impulse()
			g.notify(g.events.OnFlap)
			return false
		case PhaseIdle:
			return g.start(g.session.Start)
		case PhaseEnded:
			return g.start(g.session.Restart)
		}
	case CommandStart:
		return g.start(g.session.Start)
	case CommandRestart:
		return g.start(g.session.Restart)
	}
	return false
}

// start runs a session transition and, if it was legal, resets the world.
func (g *Game) start(transition func() bool) bool {
	if !transition() {
		return false
	}
	g.avatar = NewAvatar(g.cfg)
	g.obstacles = g.obstacles[:0]
	g.generator.Reset(g.clock.Now())
	return true
}

// step runs one running-phase tick in fixed order:
// integrate, clamp, scroll, spawn, advance, score, prune, collide.
func (g *Game) step() {
	g.avatar.Integrate()
	ClampToPlayfield(&g.avatar, g.groundLevel)
	g.scrollBackground()

	if o, ok := g.generator.Next(g.clock.Now()); ok {
		g.obstacles = append(g.obstacles, o)
	}

	g.advanceObstacles()

	if outcome := Detect(g.avatar.Box(), g.obstacles, g.groundLevel); outcome != OutcomeNone {
		g.end(outcome)
	}
}

// advanceObstacles moves obstacles left, scores the ones the avatar has
// passed and drops the ones that left the playfield.
func (g *Game) advanceObstacles() {
	speed := g.cfg.Obstacles.Speed
	for i := range g.obstacles {
		g.obstacles[i].X -= speed
	}

	for i := range g.obstacles {
		o := &g.obstacles[i]
		if !o.Scored && o.Right() < g.avatar.X {
			o.Scored = true
			if g.session.AddPoint() {
				score := g.session.Score()
				g.notify(func() { g.events.OnScore(score) })
			}
		}
	}

	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.Right() >= 0 {
			live = append(live, o)
		}
	}
	g.obstacles = live
}

func (g *Game) scrollBackground() {
	g.background -= g.cfg.Obstacles.Speed * g.cfg.Background.ScrollFactor
	if g.background <= -g.cfg.Playfield.Width {
		g.background = 0
	}
}

func (g *Game) end(outcome Outcome) {
	newBest := g.session.End()
	score, best := g.session.Score(), g.session.Best()

	g.notify(func() { g.events.OnCollision(outcome) })
	if newBest {
		g.notify(func() { g.store.SaveBestScore(best) })
	}
	g.notify(func() { g.events.OnSessionEnd(score, best) })
}

// notify calls a collaborator. A panicking collaborator must not take the
// committed tick down with it.
func (g *Game) notify(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase { return g.session.Phase() }

// Score returns the current score.
func (g *Game) Score() int { return g.session.Score() }

// Best returns the best score.
func (g *Game) Best() int { return g.session.Best() }

// Config returns the configuration the game was created with.
func (g *Game) Config() config.FlappyConfig { return g.cfg }

// Snapshot returns a read-only copy of the world for rendering.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.obstacles))
	copy(obstacles, g.obstacles)

	return Snapshot{
		Phase: g.session.Phase(),
		Score: g.session.Score(),
		Best:  g.session.Best(),
		Avatar: Pose{
			X:        g.avatar.X,
			Y:        g.avatar.Y,
			Width:    g.avatar.Width,
			Height:   g.avatar.Height,
			Velocity: g.avatar.Velocity,
			Rotation: g.avatar.Rotation(),
		},
		Obstacles:        obstacles,
		BackgroundOffset: g.background,
		Width:            g.cfg.Playfield.Width,
		Height:           g.cfg.Playfield.Height,
		GroundLevel:      g.groundLevel,
		Tick:             g.ticks,
	}
}
