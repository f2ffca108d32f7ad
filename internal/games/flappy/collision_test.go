package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// gapObstacle is 52 wide at x=5 with a gap from y=20 to y=150.
var gapObstacle = Obstacle{X: 5, GapY: 20, GapHeight: 130, Width: 52}

func TestHitsObstacleLiteralBoxes(t *testing.T) {
	tests := []struct {
		name     string
		avatar   core.Box
		expected bool
	}{
		{"top above gap start", core.BoxFromCorners(10, 10, 40, 40), true},
		{"inside gap", core.BoxFromCorners(10, 30, 40, 60), false},
		{"bottom below gap end", core.BoxFromCorners(10, 130, 40, 160), true},
		{"exactly filling gap", core.BoxFromCorners(10, 20, 40, 150), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HitsObstacle(tc.avatar, gapObstacle); got != tc.expected {
				t.Errorf("HitsObstacle(%+v) = %v, expected %v", tc.avatar, got, tc.expected)
			}
		})
	}
}

func TestHitsObstacleNeedsHorizontalOverlap(t *testing.T) {
	avatar := core.BoxFromCorners(10, 10, 40, 40)

	tests := []struct {
		name string
		x    float64
	}{
		{"obstacle to the right", 40},
		{"obstacle to the left", -42}, // right edge at 10
		{"far away", 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := gapObstacle
			o.X = tc.x
			if HitsObstacle(avatar, o) {
				t.Errorf("obstacle at x=%v should not collide without horizontal overlap", tc.x)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	const groundLevel = 520

	tests := []struct {
		name      string
		avatar    core.Box
		obstacles []Obstacle
		expected  Outcome
	}{
		{"open sky", core.NewBox(100, 300, 30, 30), nil, OutcomeNone},
		{"on the ground", core.NewBox(100, 490, 30, 30), nil, OutcomeGround},
		{"below the ground", core.NewBox(100, 500, 30, 30), nil, OutcomeGround},
		{"just above the ground", core.NewBox(100, 489.5, 30, 30), nil, OutcomeNone},
		{
			"hits second obstacle",
			core.BoxFromCorners(10, 10, 40, 40),
			[]Obstacle{{X: 300, GapY: 0, GapHeight: 50, Width: 52}, gapObstacle},
			OutcomeObstacle,
		},
		{
			"passes through gap",
			core.BoxFromCorners(10, 30, 40, 60),
			[]Obstacle{gapObstacle},
			OutcomeNone,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.avatar, tc.obstacles, groundLevel); got != tc.expected {
				t.Errorf("Detect() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClampCeiling(t *testing.T) {
	a := Avatar{Y: -5, Height: 30, Velocity: -8}

	if !ClampToPlayfield(&a, 520) {
		t.Error("ceiling clamp should fire above the top")
	}
	if a.Y != 0 || a.Velocity != 0 {
		t.Errorf("after ceiling clamp: y=%v v=%v, expected y=0 v=0", a.Y, a.Velocity)
	}
}

func TestClampLeavesMidAirAlone(t *testing.T) {
	a := Avatar{Y: 10, Height: 30, Velocity: -3}

	if ClampToPlayfield(&a, 520) {
		t.Error("ceiling clamp should not fire below the top")
	}
	if a.Y != 10 || a.Velocity != -3 {
		t.Errorf("avatar changed: y=%v v=%v", a.Y, a.Velocity)
	}
}

func TestClampGround(t *testing.T) {
	a := Avatar{Y: 600, Height: 30, Velocity: 12}
	ClampToPlayfield(&a, 520)

	if a.Y != 490 {
		t.Errorf("ground clamp: y=%v, expected 490", a.Y)
	}
	if a.Velocity != 12 {
		t.Errorf("ground clamp must not touch velocity, got %v", a.Velocity)
	}
}

func TestClampKeepsAvatarInBounds(t *testing.T) {
	const groundLevel = 520
	rng := rand.New(rand.NewSource(99))
	a := Avatar{Y: 300, Height: 30, Gravity: 0.5, JumpImpulse: -8}

	for i := 0; i < 10000; i++ {
		if rng.Intn(6) == 0 {
			a.Impulse()
		}
		a.Integrate()
		ceiling := ClampToPlayfield(&a, groundLevel)

		if a.Y+a.Height > groundLevel {
			t.Fatalf("tick %d: bottom %v below ground %v", i, a.Y+a.Height, groundLevel)
		}
		if a.Y < 0 {
			t.Fatalf("tick %d: top %v above ceiling", i, a.Y)
		}
		if ceiling && a.Velocity != 0 {
			t.Fatalf("tick %d: ceiling clamp fired but velocity is %v", i, a.Velocity)
		}
	}
}
