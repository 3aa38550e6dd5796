// Package breakout implements the game rules: ball, paddle and brick
// physics, the per-tick state machine and the audio guidance that lets a
// player without reliable vision follow the ball.
package breakout

import "github.com/vovakirdan/echo-breakout/internal/core"

// Ball is the ball state in logical viewport units.
type Ball struct {
	Pos    core.Vec2 // Center
	Prev   core.Vec2 // Center before the last integration step
	Dir    core.Vec2 // Direction; unit length after any paddle bounce
	Speed  float64   // Units per tick before accessibility slowdown
	Radius float64
}

// revert moves the ball back to where it was before the current tick.
func (b Ball) revert() Ball {
	b.Pos = b.Prev
	return b
}

// Paddle is the player's paddle. X is the left edge.
type Paddle struct {
	X, Y     float64
	Width    float64
	Velocity float64 // Accumulated nudges, decays every tick
	MinX     float64 // Left bound for the left edge
	MaxX     float64 // Right bound for the right edge
}

// Center returns the horizontal center of the paddle.
func (p Paddle) Center() float64 {
	return p.X + p.Width/2
}

// Right returns the right edge.
func (p Paddle) Right() float64 {
	return p.X + p.Width
}

// Nudge adds a velocity increment.
func (p Paddle) Nudge(delta float64) Paddle {
	p.Velocity += delta
	return p
}

// Step integrates the velocity, applies inertia decay and clamps the
// paddle inside its bounds.
func (p Paddle) Step(inertia float64) Paddle {
	p.X += p.Velocity
	p.Velocity *= inertia

	if p.X < p.MinX {
		p.X = p.MinX
	}
	if p.X+p.Width > p.MaxX {
		p.X = p.MaxX - p.Width
	}
	return p
}

// Bounds is the region the ball center may occupy.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoundsFor returns the ball bounds for a viewport and ball radius.
func BoundsFor(viewport core.Vec2, radius float64) Bounds {
	return Bounds{
		MinX: radius,
		MinY: radius,
		MaxX: viewport.X - radius,
		MaxY: viewport.Y - radius,
	}
}
