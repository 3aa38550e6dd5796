package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/echo-breakout/internal/breakout"
	"github.com/vovakirdan/echo-breakout/internal/config"
	"github.com/vovakirdan/echo-breakout/internal/core"
	"github.com/vovakirdan/echo-breakout/internal/starfield"
)

const (
	runeBall   = '●'
	runePaddle = '▀'
	runeBrick  = '█'
)

// HUD is the status shown above the play field.
type HUD struct {
	Remaining int
	Total     int
	Elapsed   time.Duration
	Flags     breakout.Flags
	Caption   string
	Phase     breakout.Phase
}

// Renderer draws the game into a character screen. It implements
// breakout.Renderer: the session pushes state into it and the Bubble Tea
// model pulls a finished screen out of it once per frame.
type Renderer struct {
	screen *core.Screen
	sky    *core.Screen
	field  *starfield.Field

	viewport core.Vec2
	brickW   float64
	brickH   float64

	state      breakout.State
	views      []*brickView
	background bool
	message    string

	box   core.Rect // play field border
	inner core.Rect // play field content
}

// NewRenderer creates a renderer for a width x height terminal. field may
// be nil, in which case the background is always plain.
func NewRenderer(cfg config.BreakoutConfig, field *starfield.Field, width, height int) *Renderer {
	r := &Renderer{
		field:      field,
		viewport:   core.Vec2{X: cfg.Viewport.Width, Y: cfg.Viewport.Height},
		brickW:     cfg.Bricks.Width,
		brickH:     cfg.Bricks.Height,
		background: true,
	}
	r.Resize(width, height)
	return r
}

// Resize adapts the screen to a new terminal size.
func (r *Renderer) Resize(width, height int) {
	width = core.Max(width, 1)
	height = core.Max(height, 1)
	if r.screen == nil {
		r.screen = core.NewScreen(width, height)
	} else {
		r.screen.Resize(width, height)
	}

	r.box = core.NewRect(0, 1, width, core.Max(height-1, 0))
	r.inner = core.NewRect(1, 2, core.Max(width-2, 0), core.Max(height-3, 0))
	r.sky = core.NewScreen(core.Max(r.inner.W, 1), core.Max(r.inner.H, 1))
}

// RenderFrame stores the state to draw on the next frame.
func (r *Renderer) RenderFrame(s breakout.State) {
	r.state = s
}

// SetBackgroundVisible switches the starfield on or off.
func (r *Renderer) SetBackgroundVisible(visible bool) {
	r.background = visible
}

// BackgroundVisible reports whether the starfield is drawn.
func (r *Renderer) BackgroundVisible() bool {
	return r.background
}

// ShowMessage sets the centered message. Empty hides it.
func (r *Renderer) ShowMessage(msg string) {
	r.message = msg
}

// AddBrick creates the view of brick index.
func (r *Renderer) AddBrick(index int, b breakout.Brick) breakout.BrickView {
	v := &brickView{brick: b}
	for len(r.views) <= index {
		r.views = append(r.views, nil)
	}
	r.views[index] = v
	return v
}

// VisibleBricks counts the views that have not been removed.
func (r *Renderer) VisibleBricks() int {
	n := 0
	for _, v := range r.views {
		if v != nil && !v.removed {
			n++
		}
	}
	return n
}

type brickView struct {
	brick   breakout.Brick
	removed bool
}

func (v *brickView) Remove() {
	v.removed = true
}

// Draw composes the full screen for the current state.
func (r *Renderer) Draw(hud HUD) *core.Screen {
	s := r.screen
	s.Clear()

	r.drawHUD(hud)
	if r.inner.W < 2 || r.inner.H < 2 {
		return s
	}
	s.DrawBox(r.box, core.ColorBorder)
	if r.background && r.field != nil {
		r.drawSky()
	}

	for _, v := range r.views {
		if v == nil || v.removed {
			continue
		}
		r.drawBrick(v.brick)
	}

	p := r.state.Paddle
	row := r.row(p.Y)
	c0, c1 := r.col(p.X), r.colEnd(p.Right())
	s.DrawHLine(c0, row, core.Max(c1-c0, 1), runePaddle, core.ColorPaddle)

	ball := r.state.Ball.Pos
	s.SetColored(r.col(ball.X), r.row(ball.Y), runeBall, core.ColorBall)

	msg := r.message
	if msg == "" && hud.Phase == breakout.PhaseIdle {
		msg = "Press enter to start"
	}
	if msg != "" {
		s.DrawTextCentered(r.inner.Y+r.inner.H/2, " "+msg+" ", core.ColorMessage)
	}
	if hud.Caption != "" {
		s.DrawTextCentered(r.box.Bottom()-1, " "+hud.Caption+" ", core.ColorCaption)
	}
	return s
}

func (r *Renderer) drawHUD(hud HUD) {
	left := fmt.Sprintf(" ECHO BREAKOUT  Bricks %d/%d  %ds", hud.Remaining, hud.Total, int(hud.Elapsed.Seconds()))

	var tags []string
	if hud.Flags.AudioAccessibility {
		tags = append(tags, "[audio]")
	}
	if hud.Flags.VisuallyImpaired {
		tags = append(tags, "[low vision]")
	}
	right := strings.Join(tags, " ") + " "

	r.screen.DrawTextColored(0, 0, left, core.ColorHUD)
	r.screen.DrawTextColored(r.screen.Width()-len([]rune(right)), 0, right, core.ColorHUD)
}

func (r *Renderer) drawBrick(b breakout.Brick) {
	c0, c1 := r.col(b.X), r.colEnd(b.X+r.brickW)
	r0, r1 := r.row(b.Y), r.rowEnd(b.Y+r.brickH)

	// Leave a blank column between neighbours when there is room.
	if c1-c0 > 2 {
		c1--
	}
	r.screen.DrawRect(core.NewRect(c0, r0, core.Max(c1-c0, 1), core.Max(r1-r0, 1)), runeBrick, b.Color)
}

// drawSky fills the play field with stars. Everything drawn afterwards
// covers them.
func (r *Renderer) drawSky() {
	r.sky.Clear()
	r.field.Draw(r.sky)
	for y := range r.inner.H {
		for x := range r.inner.W {
			cell := r.sky.GetCell(x, y)
			if cell.Rune == ' ' {
				continue
			}
			r.screen.SetColored(r.inner.X+x, r.inner.Y+y, cell.Rune, cell.Color)
		}
	}
}

// col maps a logical x to a screen column inside the play field.
func (r *Renderer) col(x float64) int {
	c := int(x / r.viewport.X * float64(r.inner.W))
	return r.inner.X + core.Clamp(c, 0, r.inner.W-1)
}

// colEnd maps a logical right edge to the first column past it.
func (r *Renderer) colEnd(x float64) int {
	c := int(x / r.viewport.X * float64(r.inner.W))
	return r.inner.X + core.Clamp(c, 1, r.inner.W)
}

// row maps a logical y to a screen row inside the play field.
func (r *Renderer) row(y float64) int {
	c := int(y / r.viewport.Y * float64(r.inner.H))
	return r.inner.Y + core.Clamp(c, 0, r.inner.H-1)
}

func (r *Renderer) rowEnd(y float64) int {
	c := int(y / r.viewport.Y * float64(r.inner.H))
	return r.inner.Y + core.Clamp(c, 1, r.inner.H)
}
