package breakout

import (
	"math/rand"

	"github.com/vovakirdan/echo-breakout/internal/config"
	"github.com/vovakirdan/echo-breakout/internal/core"
)

// Flags are the two accessibility switches of a session.
type Flags struct {
	AudioAccessibility bool // audio guidance, speech, slower ball, wider paddle
	VisuallyImpaired   bool // high contrast theme, no starfield
}

// FlagsFromConfig reads the accessibility switches from a config.
func FlagsFromConfig(cfg config.BreakoutConfig) Flags {
	return Flags{
		AudioAccessibility: cfg.Accessibility.Audio,
		VisuallyImpaired:   cfg.Accessibility.VisuallyImpaired,
	}
}

// BrickLayout describes the brick grid.
type BrickLayout struct {
	Rows, Cols    int
	Width, Height float64
	Margin        float64
	Top           float64
}

// Rules are the immutable parameters of one game. They are derived from
// the config and the accessibility flags when a game is created.
type Rules struct {
	Viewport core.Vec2
	Bounds   Bounds

	BallRadius      float64
	BallSpeed       float64
	BallStartOffset float64

	PaddleWidth  float64
	PaddleOffset float64
	Nudge        float64
	Inertia      float64
	HitBand      float64

	Bricks BrickLayout

	AudioAccessibility bool
	SlowdownZone       float64 // fraction of the viewport height
	SlowdownFactor     float64
}

// NewRules builds the rules for a game. Audio accessibility selects the
// wider paddle and the slower ball.
func NewRules(cfg config.BreakoutConfig, flags Flags) Rules {
	viewport := core.Vec2{X: cfg.Viewport.Width, Y: cfg.Viewport.Height}

	speed := cfg.Ball.Speed
	width := cfg.Paddle.Width
	if flags.AudioAccessibility {
		speed = cfg.Ball.AccessibleSpeed
		width = cfg.Paddle.AccessibleWidth
	}

	return Rules{
		Viewport:        viewport,
		Bounds:          BoundsFor(viewport, cfg.Ball.Radius),
		BallRadius:      cfg.Ball.Radius,
		BallSpeed:       speed,
		BallStartOffset: cfg.Ball.StartOffset,
		PaddleWidth:     width,
		PaddleOffset:    cfg.Paddle.Offset,
		Nudge:           cfg.Paddle.Nudge,
		Inertia:         cfg.Paddle.Inertia,
		HitBand:         cfg.Paddle.HitBand,
		Bricks: BrickLayout{
			Rows:   cfg.Bricks.Rows,
			Cols:   cfg.Bricks.Cols,
			Width:  cfg.Bricks.Width,
			Height: cfg.Bricks.Height,
			Margin: cfg.Bricks.Margin,
			Top:    cfg.Bricks.Top,
		},
		AudioAccessibility: flags.AudioAccessibility,
		SlowdownZone:       cfg.Accessibility.SlowdownZone,
		SlowdownFactor:     cfg.Accessibility.SlowdownFactor,
	}
}

// InSlowdownZone reports whether y is in the bottom band where the ball
// slows down in audio accessibility mode.
func (r Rules) InSlowdownZone(y float64) bool {
	return r.AudioAccessibility && y > r.SlowdownZone*r.Viewport.Y
}

// EffectiveSpeed is the distance the ball travels this tick.
func (r Rules) EffectiveSpeed(b Ball) float64 {
	if r.InSlowdownZone(b.Pos.Y) {
		return b.Speed * r.SlowdownFactor
	}
	return b.Speed
}

// InitialState builds a fresh Idle game: ball above the centered paddle,
// launching up and to the right, and a full brick grid.
func (r Rules) InitialState(rng *rand.Rand, visuallyImpaired bool) State {
	start := core.Vec2{X: r.Viewport.X / 2, Y: r.Bounds.MaxY - r.BallStartOffset}

	return State{
		Phase: PhaseIdle,
		Ball: Ball{
			Pos:    start,
			Prev:   start,
			Dir:    core.Vec2{X: rng.Float64(), Y: -1},
			Speed:  r.BallSpeed,
			Radius: r.BallRadius,
		},
		Paddle: Paddle{
			X:     (r.Viewport.X - r.PaddleWidth) / 2,
			Y:     r.Bounds.MaxY - r.PaddleOffset,
			Width: r.PaddleWidth,
			MinX:  r.Bounds.MinX,
			MaxX:  r.Bounds.MaxX,
		},
		Bricks: GenerateBricks(r.Bricks, r.Viewport.X, visuallyImpaired, rng),
	}
}
