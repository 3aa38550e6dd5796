package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/echo-breakout/internal/breakout"
	"github.com/vovakirdan/echo-breakout/internal/config"
	"github.com/vovakirdan/echo-breakout/internal/core"
)

// Theme maps semantic colors to terminal styles.
type Theme struct {
	ID     string
	Styles map[core.Color]lipgloss.Style
}

// Style returns the style for c, falling back to the default style.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t.Styles[c]; ok {
		return style
	}
	return t.Styles[core.ColorDefault]
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// StandardTheme is the regular look: green bricks over a starfield.
func StandardTheme() Theme {
	return Theme{
		ID: breakout.ThemeStandard,
		Styles: map[core.Color]lipgloss.Style{
			core.ColorDefault:           lipgloss.NewStyle(),
			core.ColorBall:              fg("15").Bold(true),
			core.ColorPaddle:            fg("14"),
			core.ColorBrickDim:          fg("22"),
			core.ColorBrickMid:          fg("28"),
			core.ColorBrickLight:        fg("34"),
			core.ColorBrickBright:       fg("46"),
			core.ColorBrickHighContrast: fg("11").Bold(true),
			core.ColorHUD:               fg("245"),
			core.ColorMessage:           fg("11").Bold(true),
			core.ColorCaption:           fg("14").Italic(true),
			core.ColorStarDim:           fg("238"),
			core.ColorStarMid:           fg("244"),
			core.ColorStarBright:        fg("255"),
			core.ColorBorder:            fg("240"),
		},
	}
}

// HighContrastTheme is the low-vision look: bright elements on black with
// no decoration. Every brick uses the same yellow.
func HighContrastTheme() Theme {
	bg := lipgloss.Color("0")
	bold := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Background(bg).Bold(true)
	}
	brick := bold("11")
	return Theme{
		ID: breakout.ThemeHighContrast,
		Styles: map[core.Color]lipgloss.Style{
			core.ColorDefault:           lipgloss.NewStyle().Background(bg),
			core.ColorBall:              bold("15"),
			core.ColorPaddle:            bold("15"),
			core.ColorBrickDim:          brick,
			core.ColorBrickMid:          brick,
			core.ColorBrickLight:        brick,
			core.ColorBrickBright:       brick,
			core.ColorBrickHighContrast: brick,
			core.ColorHUD:               bold("15"),
			core.ColorMessage:           bold("11"),
			core.ColorCaption:           bold("14"),
			core.ColorStarDim:           lipgloss.NewStyle().Background(bg),
			core.ColorStarMid:           lipgloss.NewStyle().Background(bg),
			core.ColorStarBright:        lipgloss.NewStyle().Background(bg),
			core.ColorBorder:            bold("15"),
		},
	}
}

// ThemeSet holds the themes known by id and the active one. It implements
// breakout.ThemeLoader; unknown ids keep the current theme.
type ThemeSet struct {
	mu      sync.RWMutex
	themes  map[string]Theme
	current Theme
}

// NewThemeSet registers the standard and high-contrast themes under the
// ids named in cfg.
func NewThemeSet(cfg config.ThemesConfig) *ThemeSet {
	standard := StandardTheme()
	contrast := HighContrastTheme()

	ts := &ThemeSet{themes: make(map[string]Theme), current: standard}
	ts.register(breakout.ThemeStandard, standard)
	ts.register(breakout.ThemeHighContrast, contrast)
	if cfg.Standard != "" {
		ts.register(cfg.Standard, standard)
	}
	if cfg.LowVision != "" {
		ts.register(cfg.LowVision, contrast)
	}
	return ts
}

func (ts *ThemeSet) register(id string, t Theme) {
	t.ID = id
	ts.themes[id] = t
}

// LoadTheme activates the theme registered under id.
func (ts *ThemeSet) LoadTheme(id string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if t, ok := ts.themes[id]; ok {
		ts.current = t
	}
}

// Current returns the active theme.
func (ts *ThemeSet) Current() Theme {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.current
}
