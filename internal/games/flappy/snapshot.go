package flappy

// Pose is the avatar as the renderer sees it.
type Pose struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64
	Rotation      float64 // Radians, positive = nose down
}

// Snapshot is a read-only view of the world after a tick.
// It shares no memory with the game and may be kept across ticks.
type Snapshot struct {
	Phase Phase
	Score int
	Best  int

	Avatar           Pose
	Obstacles        []Obstacle
	BackgroundOffset float64

	Width       float64
	Height      float64
	GroundLevel float64

	Tick uint64
}

// NextObstacle returns the first obstacle whose right edge is still ahead of
// the avatar's left edge.
func (s Snapshot) NextObstacle() (Obstacle, bool) {
	for _, o := range s.Obstacles {
		if o.Right() >= s.Avatar.X {
			return o, true
		}
	}
	return Obstacle{}, false
}
