package flappy

import (
	"context"
	"time"
)

// Driver ticks a game at a fixed rate on the calling goroutine.
// It stands in for a display refresh signal when there is no display.
type Driver struct {
	game     *Game
	interval time.Duration
	onTick   func(Snapshot)
}

// NewDriver creates a driver ticking tickRate times per second.
// onTick, if set, is called after every tick with the committed snapshot.
func NewDriver(game *Game, tickRate int, onTick func(Snapshot)) *Driver {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Driver{
		game:     game,
		interval: time.Second / time.Duration(tickRate),
		onTick:   onTick,
	}
}

// Run ticks until ctx is cancelled, then returns ctx.Err().
// A cancelled driver never leaves a tick half-applied, and running it again
// continues from the last committed state: the first elapsed value after a
// restart is measured from the restart, not from the stop.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			d.game.Tick(now.Sub(last))
			last = now
			if d.onTick != nil {
				d.onTick(d.game.Snapshot())
			}
		}
	}
}
