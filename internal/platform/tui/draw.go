package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Scenery repeats every so many world units.
const (
	hillPeriod  = 120.0
	hillWidth   = 45.0
	cloudPeriod = 170.0
	cloudWidth  = 35.0
)

// Overlay is front-end state drawn on top of the world.
type Overlay struct {
	Paused  bool
	NewBest bool
	Muted   bool
}

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(snap flappy.Snapshot, w, h int) viewport {
	v := viewport{sx: 1, sy: 1}
	if snap.Width > 0 {
		v.sx = float64(w) / snap.Width
	}
	if snap.Height > 0 {
		v.sy = float64(h) / snap.Height
	}
	return v
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// span returns the cells covering [from, to), at least one cell wide.
func span(from, to int) (int, int) {
	if to <= from {
		to = from + 1
	}
	return from, to
}

// Draw renders a snapshot into the screen buffer.
func Draw(scr *core.Screen, snap flappy.Snapshot, ov Overlay) {
	scr.Clear()
	if scr.Width() == 0 || scr.Height() == 0 {
		return
	}

	v := newViewport(snap, scr.Width(), scr.Height())
	groundRow := v.row(snap.GroundLevel)

	drawScenery(scr, v, snap.BackgroundOffset, groundRow)
	for _, o := range snap.Obstacles {
		drawObstacle(scr, v, o, groundRow)
	}
	drawGround(scr, groundRow)
	drawAvatar(scr, v, snap.Avatar)
	drawHUD(scr, snap, ov)

	switch {
	case ov.Paused:
		drawBanner(scr, "PAUSED", "Press P to resume")
	case snap.Phase == flappy.PhaseIdle:
		drawBanner(scr, "FLAPPY BIRD", "Press SPACE to start")
	case snap.Phase == flappy.PhaseEnded:
		drawGameOver(scr, snap, ov.NewBest)
	}
}

// drawScenery draws distant hills and clouds that scroll slower than the pipes.
func drawScenery(scr *core.Screen, v viewport, offset float64, groundRow int) {
	hillRow := groundRow - 1
	cloudRow := max(groundRow/5, 1)

	for x := 0; x < scr.Width(); x++ {
		wx := float64(x)/v.sx - offset
		if math.Mod(wx, hillPeriod) < hillWidth {
			scr.Set(x, hillRow, '▄', core.ColorGreen)
		}
		if math.Mod(wx+cloudPeriod/2, cloudPeriod) < cloudWidth {
			scr.Set(x, cloudRow, '~', core.ColorGray)
		}
	}
}

func drawObstacle(scr *core.Screen, v viewport, o flappy.Obstacle, groundRow int) {
	left, right := span(v.col(o.Left()), v.col(o.Right()))
	gapTop := v.row(o.GapY)
	gapBottom := v.row(o.GapBottom())

	for x := left; x < right; x++ {
		for y := 0; y < gapTop; y++ {
			scr.Set(x, y, '█', core.ColorGreen)
		}
		for y := gapBottom; y < groundRow; y++ {
			scr.Set(x, y, '█', core.ColorGreen)
		}
		// Pipe lips
		scr.Set(x, gapTop-1, '▀', core.ColorBrightGreen)
		if gapBottom < groundRow {
			scr.Set(x, gapBottom, '▄', core.ColorBrightGreen)
		}
	}
}

func drawGround(scr *core.Screen, groundRow int) {
	scr.DrawHLine(0, groundRow, scr.Width(), '▀', core.ColorBrightGreen)
	scr.FillRect(core.NewRect(0, groundRow+1, scr.Width(), scr.Height()-groundRow-1), '▒', core.ColorBrown)
}

func drawAvatar(scr *core.Screen, v viewport, p flappy.Pose) {
	left, right := span(v.col(p.X), v.col(p.X+p.Width))
	top, bottom := span(v.row(p.Y), v.row(p.Y+p.Height))

	for y := top; y < bottom; y++ {
		for x := left; x < right-1; x++ {
			scr.Set(x, y, '█', core.ColorYellow)
		}
		scr.Set(right-1, y, beakRune(p.Rotation), core.ColorOrange)
	}
}

// beakRune picks a beak glyph for the avatar tilt.
func beakRune(rotation float64) rune {
	switch {
	case rotation < -0.2:
		return '/'
	case rotation > 0.2:
		return '\\'
	default:
		return '>'
	}
}

func drawHUD(scr *core.Screen, snap flappy.Snapshot, ov Overlay) {
	scr.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)

	best := fmt.Sprintf("Best: %d", snap.Best)
	scr.DrawText(scr.Width()-len(best)-1, 0, best, core.ColorBrightWhite)

	if ov.Muted {
		scr.DrawTextCentered(0, "muted", core.ColorGray)
	}
}

func drawBanner(scr *core.Screen, title, hint string) {
	mid := scr.Height() / 2
	scr.DrawTextCentered(mid-1, title, core.ColorBrightWhite)
	scr.DrawTextCentered(mid+1, hint, core.ColorCyan)
}

func drawGameOver(scr *core.Screen, snap flappy.Snapshot, newBest bool) {
	mid := scr.Height() / 2
	scr.DrawTextCentered(mid-2, "GAME OVER", core.ColorRed)
	scr.DrawTextCentered(mid, fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.Best), core.ColorBrightWhite)
	if newBest {
		scr.DrawTextCentered(mid+1, "NEW BEST!", core.ColorYellow)
	}
	scr.DrawTextCentered(mid+3, "Press R to restart", core.ColorCyan)
}
