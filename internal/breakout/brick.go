package breakout

import (
	"math/rand"

	"github.com/vovakirdan/echo-breakout/internal/core"
)

// BrickView is the visual handle of a brick. The session removes it when
// the brick dies; the game logic never depends on it.
type BrickView interface {
	Remove()
}

// Brick is a single destructible rectangle.
type Brick struct {
	X, Y  float64 // Top-left corner
	Row   int
	Col   int
	Color core.Color // Cosmetic only
	dead  bool
}

// Alive reports whether the brick can still be hit.
func (b *Brick) Alive() bool {
	return !b.dead
}

// Overlaps reports whether the ball's bounding box touches the brick's.
// It is a box-vs-box test, not true circle geometry.
func (b *Brick) Overlaps(ballX, ballY, ballRadius, width, height float64) bool {
	if b.dead {
		return false
	}
	ball := core.BoxAround(core.Vec2{X: ballX, Y: ballY}, ballRadius)
	return ball.Touches(core.Box{X: b.X, Y: b.Y, W: width, H: height})
}

// TryCollide kills the brick if the ball touches it and reports whether it
// did. A dead brick never collides again.
func (b *Brick) TryCollide(ballX, ballY, ballRadius, width, height float64) bool {
	if !b.Overlaps(ballX, ballY, ballRadius, width, height) {
		return false
	}
	b.dead = true
	return true
}

// GenerateBricks lays out a fresh grid centered horizontally in the
// viewport. Bricks are returned in row-major order, which is also the
// collision tie-break order.
func GenerateBricks(layout BrickLayout, viewportW float64, visuallyImpaired bool, rng *rand.Rand) []Brick {
	pitchX := layout.Width + layout.Margin
	pitchY := layout.Height + layout.Margin
	offset := (viewportW - float64(layout.Cols)*pitchX) / 2

	bricks := make([]Brick, 0, layout.Rows*layout.Cols)
	for row := range layout.Rows {
		for col := range layout.Cols {
			color := core.ColorBrickHighContrast
			if !visuallyImpaired {
				color = core.BrickShades[rng.Intn(len(core.BrickShades))]
			}
			bricks = append(bricks, Brick{
				X:     offset + float64(col)*pitchX,
				Y:     float64(row)*pitchY + layout.Top,
				Row:   row,
				Col:   col,
				Color: color,
			})
		}
	}
	return bricks
}
