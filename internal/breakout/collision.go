package breakout

import (
	"slices"
)

// WallHit is a set of viewport edges touched by the ball in one tick.
type WallHit uint8

const (
	WallLeft WallHit = 1 << iota
	WallRight
	WallTop
	WallBottom // not a bounce: the ball is lost
)

// Has reports whether w is part of the set.
func (h WallHit) Has(w WallHit) bool {
	return h&w != 0
}

// Bounces counts the edges the ball bounced off (the bottom never bounces).
func (h WallHit) Bounces() int {
	n := 0
	for _, w := range []WallHit{WallLeft, WallRight, WallTop} {
		if h.Has(w) {
			n++
		}
	}
	return n
}

// CollideWindow reflects the ball off the side and top edges, clamping it
// exactly onto the bound. Reaching the bottom bound clamps the ball and
// reports WallBottom; the caller treats that as a loss.
func CollideWindow(ball Ball, b Bounds) (Ball, WallHit) {
	var hit WallHit

	if ball.Pos.X < b.MinX {
		ball.Pos.X = b.MinX
		ball.Dir.X = -ball.Dir.X
		hit |= WallLeft
	} else if ball.Pos.X > b.MaxX {
		ball.Pos.X = b.MaxX
		ball.Dir.X = -ball.Dir.X
		hit |= WallRight
	}

	if ball.Pos.Y < b.MinY {
		ball.Pos.Y = b.MinY
		ball.Dir.Y = -ball.Dir.Y
		hit |= WallTop
	} else if ball.Pos.Y >= b.MaxY {
		ball.Pos.Y = b.MaxY
		hit |= WallBottom
	}

	return ball, hit
}

// CollidePaddle bounces the ball off the paddle. A hit needs horizontal
// overlap between the ball's box and the paddle span, and an impact depth
// (radius + ballY - paddleY) within [0, band].
//
// On a hit the ball returns to its previous position, its vertical
// direction inverts, and the horizontal direction becomes the offset from
// the paddle center divided by half the paddle width. The direction is then
// normalized, so strikes farther from the center leave at steeper angles.
func CollidePaddle(ball Ball, p Paddle, band float64) (Ball, bool) {
	if ball.Pos.X+ball.Radius < p.X || ball.Pos.X-ball.Radius > p.Right() {
		return ball, false
	}
	if ball.Pos.Y+ball.Radius < p.Y {
		return ball, false
	}

	depth := ball.Radius + ball.Pos.Y - p.Y
	if depth < 0 || depth > band {
		return ball, false
	}

	ball = ball.revert()
	ball.Dir.Y = -ball.Dir.Y
	ball.Dir.X = BounceX(ball.Pos.X, p)
	ball.Dir = ball.Dir.Normalize()
	return ball, true
}

// BounceX is the un-normalized horizontal direction after a paddle hit at
// ballX: -1 at the left edge, 0 at the center, +1 at the right edge.
func BounceX(ballX float64, p Paddle) float64 {
	return 2 * (ballX - p.Center()) / p.Width
}

// CollideBricks tests bricks in order and stops at the first hit. The hit
// brick dies, the ball returns to its previous position and its vertical
// direction inverts; the horizontal direction is kept. Bricks after the
// first hit are not tested again in the same tick.
//
// The input slice is never modified. On a hit a copy with the dead brick
// is returned along with its index; otherwise the input slice and -1.
func CollideBricks(ball Ball, bricks []Brick, width, height float64) (Ball, []Brick, int) {
	for i := range bricks {
		if !bricks[i].Overlaps(ball.Pos.X, ball.Pos.Y, ball.Radius, width, height) {
			continue
		}

		next := slices.Clone(bricks)
		next[i].TryCollide(ball.Pos.X, ball.Pos.Y, ball.Radius, width, height)

		ball = ball.revert()
		ball.Dir.Y = -ball.Dir.Y
		return ball, next, i
	}
	return ball, bricks, -1
}
