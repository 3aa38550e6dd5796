package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the hard-coded default configuration.
// It mirrors defaults/breakout.yaml and is used if the embedded file fails to parse.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Viewport: ViewportConfig{
			Width:  1600,
			Height: 900,
		},
		Ball: BallConfig{
			Radius:          12,
			Speed:           4,
			AccessibleSpeed: 3,
			StartOffset:     60,
		},
		Paddle: PaddleConfig{
			Width:           150,
			AccessibleWidth: 300,
			Offset:          30,
			Nudge:           10,
			Inertia:         0.8,
			HitBand:         4,
		},
		Bricks: BricksConfig{
			Rows:   3,
			Cols:   8,
			Width:  180,
			Height: 80,
			Margin: 15,
			Top:    20,
		},
		Accessibility: AccessibilityConfig{
			Audio:            true,
			VisuallyImpaired: true,
			PadTolerance:     0.66,
			EdgeMargin:       10,
			AlignedRate:      1.3,
			FarRate:          0.9,
			SlowdownZone:     0.8,
			SlowdownFactor:   0.5,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.8,
			Impact: ImpactRates{
				Wall:   2.0,
				Paddle: 0.5,
				Brick:  1.0,
			},
		},
		Speech: SpeechConfig{
			Enabled:   true,
			Command:   "espeak",
			Amplitude: 100,
			WordGap:   0,
			Pitch:     50,
			Speed:     150,
			Variant:   "none",
			Voice:     "en",
		},
		Themes: ThemesConfig{
			Standard:  "standard",
			LowVision: "high-contrast",
		},
		Starfield: StarfieldConfig{
			Capacity:   4000,
			EmitRate:   600,
			MinLife:    0.5,
			MaxLife:    2.0,
			MinPower:   0.5,
			MaxPower:   1.0,
			Gravity:    5,
			EmitExtent: 25,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
