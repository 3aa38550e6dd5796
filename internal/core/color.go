package core

// Color represents a semantic foreground color for a screen cell.
// The platform layer maps each value to a concrete terminal style through
// the active theme.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBall
	ColorPaddle
	ColorBrickDim   // darkest green shade
	ColorBrickMid   // medium green shade
	ColorBrickLight // light green shade
	ColorBrickBright
	ColorBrickHighContrast // yellow, used when the player is visually impaired
	ColorHUD
	ColorMessage
	ColorCaption
	ColorStarDim
	ColorStarMid
	ColorStarBright
	ColorBorder
)

// BrickShades lists the cosmetic green shades a regular brick can take.
var BrickShades = []Color{ColorBrickDim, ColorBrickMid, ColorBrickLight, ColorBrickBright}
