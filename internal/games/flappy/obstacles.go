package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pipe pair with a passable gap.
type Obstacle struct {
	X         float64 // Left edge, decreases every tick
	GapY      float64 // Top of the gap
	GapHeight float64
	Width     float64
	Scored    bool // Set once the avatar has passed it
}

// Left returns the x-coordinate of the left edge.
func (o Obstacle) Left() float64 { return o.X }

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 { return o.X + o.Width }

// GapBottom returns the y-coordinate of the bottom of the gap.
func (o Obstacle) GapBottom() float64 { return o.GapY + o.GapHeight }

// Span returns a box covering the obstacle's horizontal extent at the gap.
func (o Obstacle) Span() core.Box {
	return core.NewBox(o.X, o.GapY, o.Width, o.GapHeight)
}

// Generator emits obstacles on a time-gated interval.
type Generator struct {
	rng       *rand.Rand
	interval  time.Duration
	spawnX    float64
	width     float64
	gap       float64
	minGapY   float64
	maxGapY   float64
	lastSpawn time.Duration
}

// NewGenerator creates a generator for the given configuration and RNG seed.
func NewGenerator(cfg config.FlappyConfig, seed int64) *Generator {
	minGapY := cfg.Obstacles.TopMargin
	maxGapY := cfg.Playfield.GroundLevel() - cfg.Obstacles.GapSize - cfg.Obstacles.BottomMargin
	if maxGapY < minGapY {
		maxGapY = minGapY // Playfield too small for the gap, collapse to one point
	}

	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		interval: cfg.Obstacles.SpawnInterval,
		spawnX:   cfg.Playfield.Width,
		width:    cfg.Obstacles.Width,
		gap:      cfg.Obstacles.GapSize,
		minGapY:  minGapY,
		maxGapY:  maxGapY,
	}
}

// Reset restarts the spawn timer from now.
func (g *Generator) Reset(now time.Duration) {
	g.lastSpawn = now
}

// GapRange returns the inclusive range the gap start is sampled from.
func (g *Generator) GapRange() (lo, hi float64) {
	return g.minGapY, g.maxGapY
}

// Next returns a new obstacle if more than one interval has passed since the
// last spawn. At most one obstacle is produced per call no matter how much
// time has passed; missed spawns are dropped, not backfilled.
func (g *Generator) Next(now time.Duration) (Obstacle, bool) {
	if now-g.lastSpawn <= g.interval {
		return Obstacle{}, false
	}
	g.lastSpawn = now

	return Obstacle{
		X:         g.spawnX,
		GapY:      g.minGapY + g.rng.Float64()*(g.maxGapY-g.minGapY),
		GapHeight: g.gap,
		Width:     g.width,
	}, true
}
