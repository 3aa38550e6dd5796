package breakout

import "math"

// Snapshot is a flat copy of a State for determinism checks and replay
// comparison. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Phase     string
	Destroyed int

	// Ball: X, Y, DirX, DirY, Speed
	BallData [5]float64

	// Paddle: X, Velocity, Width
	PaddleData [3]float64

	// One entry per brick in row-major order, 1 when alive
	BrickData []int
}

// Snapshot returns the state as a Snapshot.
func (s State) Snapshot() Snapshot {
	bricks := make([]int, len(s.Bricks))
	for i := range s.Bricks {
		if s.Bricks[i].Alive() {
			bricks[i] = 1
		}
	}

	return Snapshot{
		Tick:       s.Tick,
		Phase:      s.Phase.String(),
		Destroyed:  s.Destroyed,
		BallData:   [5]float64{s.Ball.Pos.X, s.Ball.Pos.Y, s.Ball.Dir.X, s.Ball.Dir.Y, s.Ball.Speed},
		PaddleData: [3]float64{s.Paddle.X, s.Paddle.Velocity, s.Paddle.Width},
		BrickData:  bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Phase {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Destroyed) //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.PaddleData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
