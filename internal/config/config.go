// Package config provides YAML-based game configuration loading and
// accessibility profiles.
package config

// BreakoutConfig contains all configuration for the game.
type BreakoutConfig struct {
	Viewport      ViewportConfig      `yaml:"viewport"`
	Ball          BallConfig          `yaml:"ball"`
	Paddle        PaddleConfig        `yaml:"paddle"`
	Bricks        BricksConfig        `yaml:"bricks"`
	Accessibility AccessibilityConfig `yaml:"accessibility"`
	Audio         AudioConfig         `yaml:"audio"`
	Speech        SpeechConfig        `yaml:"speech"`
	Themes        ThemesConfig        `yaml:"themes"`
	Starfield     StarfieldConfig     `yaml:"starfield"`
}

// ViewportConfig is the logical play field size. Game physics run in these
// units regardless of the terminal size.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Radius          float64 `yaml:"radius"`
	Speed           float64 `yaml:"speed"`            // units per tick
	AccessibleSpeed float64 `yaml:"accessible_speed"` // used when audio accessibility is on
	StartOffset     float64 `yaml:"start_offset"`     // distance above the bottom bound at reset
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width           float64 `yaml:"width"`
	AccessibleWidth float64 `yaml:"accessible_width"`
	Offset          float64 `yaml:"offset"`   // distance above the bottom bound
	Nudge           float64 `yaml:"nudge"`    // velocity added per key press
	Inertia         float64 `yaml:"inertia"`  // velocity decay factor per tick
	HitBand         float64 `yaml:"hit_band"` // max impact depth accepted as a paddle hit
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`
	Top    float64 `yaml:"top"`
}

// AccessibilityConfig holds the accessibility switches and the audio
// guidance tuning.
type AccessibilityConfig struct {
	Audio            bool    `yaml:"audio"`             // audio accessibility mode
	VisuallyImpaired bool    `yaml:"visually_impaired"` // high contrast, no starfield
	PadTolerance     float64 `yaml:"pad_tolerance"`     // central fraction of the paddle counted as aligned
	EdgeMargin       float64 `yaml:"edge_margin"`       // near viewport edges the full paddle is used
	AlignedRate      float64 `yaml:"aligned_rate"`      // loop playback rate when aligned
	FarRate          float64 `yaml:"far_rate"`          // loop playback rate right at the zone edge
	SlowdownZone     float64 `yaml:"slowdown_zone"`     // fraction of height below which the ball slows
	SlowdownFactor   float64 `yaml:"slowdown_factor"`
}

// AudioConfig configures the audio engine.
type AudioConfig struct {
	Enabled    bool        `yaml:"enabled"`
	SampleRate int         `yaml:"sample_rate"`
	Volume     float64     `yaml:"volume"` // 0.0 - 1.0
	Impact     ImpactRates `yaml:"impact"`
}

// ImpactRates are the playback-rate multipliers that give each impact a
// distinct signature.
type ImpactRates struct {
	Wall   float64 `yaml:"wall"`
	Paddle float64 `yaml:"paddle"`
	Brick  float64 `yaml:"brick"`
}

// SpeechConfig configures the speech synthesizer and its fixed prosody.
type SpeechConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Command   string `yaml:"command"`
	Amplitude int    `yaml:"amplitude"`
	WordGap   int    `yaml:"word_gap"`
	Pitch     int    `yaml:"pitch"`
	Speed     int    `yaml:"speed"`
	Variant   string `yaml:"variant"` // "none" keeps the default voice
	Voice     string `yaml:"voice"`
}

// ThemesConfig names the two visual themes.
type ThemesConfig struct {
	Standard  string `yaml:"standard"`
	LowVision string `yaml:"low_vision"`
}

// StarfieldConfig configures the decorative particle background.
type StarfieldConfig struct {
	Capacity   int     `yaml:"capacity"`
	EmitRate   float64 `yaml:"emit_rate"` // particles per second
	MinLife    float64 `yaml:"min_life"`
	MaxLife    float64 `yaml:"max_life"`
	MinPower   float64 `yaml:"min_power"`
	MaxPower   float64 `yaml:"max_power"`
	Gravity    float64 `yaml:"gravity"`
	EmitExtent float64 `yaml:"emit_extent"` // half size of the square emitter box
}
