package breakout

import (
	"github.com/vovakirdan/echo-breakout/internal/config"
	"github.com/vovakirdan/echo-breakout/internal/core"
)

// Pan positions of the guidance loop when the ball is not aligned.
const (
	PanLeft   = -1.0
	PanCenter = 0.0
	PanRight  = 1.0
)

// minLoopRate keeps the loop audible when the ball is a full viewport
// width away from the paddle.
const minLoopRate = 0.05

// Cue is a one-shot sound placement: stereo pan in [-1, 1] and a playback
// rate multiplier.
type Cue struct {
	Pan  float64
	Rate float64
}

// LoopCue is the placement of the guidance loop.
type LoopCue struct {
	Pan     float64
	Rate    float64
	Aligned bool // Ball is above the effective paddle zone
}

// AudioMapper turns ball and paddle geometry into audio placement.
type AudioMapper struct {
	Tolerance   float64 // Central fraction of the paddle counted as aligned
	EdgeMargin  float64
	AlignedRate float64
	FarRate     float64
	WallRate    float64
	PaddleRate  float64
	BrickRate   float64
}

// NewAudioMapper builds a mapper from the accessibility and audio config.
func NewAudioMapper(cfg config.BreakoutConfig) AudioMapper {
	return AudioMapper{
		Tolerance:   cfg.Accessibility.PadTolerance,
		EdgeMargin:  cfg.Accessibility.EdgeMargin,
		AlignedRate: cfg.Accessibility.AlignedRate,
		FarRate:     cfg.Accessibility.FarRate,
		WallRate:    cfg.Audio.Impact.Wall,
		PaddleRate:  cfg.Audio.Impact.Paddle,
		BrickRate:   cfg.Audio.Impact.Brick,
	}
}

// Zone returns the effective paddle span [left, right] used for alignment.
// The span is narrowed to the central tolerance fraction of the paddle,
// except when the ball is close to a viewport edge where the paddle can't
// follow any further.
func (m AudioMapper) Zone(ballX float64, p Paddle, viewportW float64) (left, right float64) {
	left, width := p.X, p.Width
	deltaX := p.Width * (1 - m.Tolerance) / 2

	if ballX > deltaX+m.EdgeMargin && ballX < viewportW-(deltaX+m.EdgeMargin) {
		left += deltaX
		width *= m.Tolerance
	}
	return left, left + width
}

// Loop computes the guidance loop placement. Inside the zone the loop is
// centered at the aligned rate. Outside, the pan is pinned to the side the
// ball is on and the rate drops with the normalized distance to the zone,
// so the tempo rises as the paddle closes in.
func (m AudioMapper) Loop(ballX float64, p Paddle, viewportW float64) LoopCue {
	left, right := m.Zone(ballX, p, viewportW)

	if ballX >= left && ballX <= right {
		return LoopCue{Pan: PanCenter, Rate: m.AlignedRate, Aligned: true}
	}

	var distance, pan float64
	if ballX < left {
		distance = left - ballX
		pan = PanLeft
	} else {
		distance = ballX - right
		pan = PanRight
	}

	normalized := distance / viewportW
	rate := m.FarRate * (1 - normalized)
	return LoopCue{Pan: pan, Rate: core.ClampF(rate, minLoopRate, m.FarRate)}
}

// Impact places a one-shot impact sound at the ball position relative to
// the viewport center. Each kind of impact has its own rate multiplier.
func (m AudioMapper) Impact(kind EventKind, at core.Vec2, viewport core.Vec2) Cue {
	x := (at.X - viewport.X/2) / viewport.X // -0.5 .. 0.5
	return Cue{
		Pan:  core.ClampF(2*x, PanLeft, PanRight),
		Rate: m.impactRate(kind),
	}
}

func (m AudioMapper) impactRate(kind EventKind) float64 {
	switch kind {
	case EventWallBounce:
		return m.WallRate
	case EventPaddleBounce:
		return m.PaddleRate
	default:
		return m.BrickRate
	}
}
