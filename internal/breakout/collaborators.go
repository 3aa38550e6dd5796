package breakout

import "errors"

// ErrMissingRenderer is returned by NewSession when no renderer is given.
// A session can't run without a surface to draw on.
var ErrMissingRenderer = errors.New("breakout: renderer is required")

// Renderer draws the game.
type Renderer interface {
	// RenderFrame draws the ball, paddle and live bricks of s.
	RenderFrame(s State)
	// SetBackgroundVisible switches between the starfield and a plain
	// background.
	SetBackgroundVisible(visible bool)
	// ShowMessage displays an end-of-game message. An empty string hides it.
	ShowMessage(msg string)
	// AddBrick creates the visual handle of a new brick.
	AddBrick(index int, b Brick) BrickView
}

// Audio plays positioned sounds.
type Audio interface {
	PlayOneShot(c Cue)
	StartLoop(rate float64)
	SetLoop(c Cue)
	StopLoop()
}

// Speaker reads phrases aloud. Speak must not block.
type Speaker interface {
	Speak(phrase string)
}

// ThemeLoader switches the visual theme.
type ThemeLoader interface {
	LoadTheme(id string)
}

// Theme ids.
const (
	ThemeStandard     = "standard"
	ThemeHighContrast = "high-contrast"
)

// Silent audio, speech and theme implementations used when a
// collaborator is missing.
type (
	SilentAudio   struct{}
	SilentSpeaker struct{}
	NoTheme       struct{}
)

func (SilentAudio) PlayOneShot(Cue)   {}
func (SilentAudio) StartLoop(float64) {}
func (SilentAudio) SetLoop(Cue)       {}
func (SilentAudio) StopLoop()         {}

func (SilentSpeaker) Speak(string) {}

func (NoTheme) LoadTheme(string) {}

type noView struct{}

func (noView) Remove() {}
