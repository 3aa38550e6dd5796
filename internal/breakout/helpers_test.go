package breakout

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/echo-breakout/internal/config"
	"github.com/vovakirdan/echo-breakout/internal/core"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func testRules(audio bool) Rules {
	return NewRules(config.DefaultBreakoutConfig(), Flags{AudioAccessibility: audio})
}

// runningState returns a fresh Running game with the ball placed at pos
// and moving along dir.
func runningState(r Rules, pos, dir core.Vec2) State {
	s := r.InitialState(rand.New(rand.NewSource(1)), false)
	s.Phase = PhaseRunning
	s.Ball.Pos = pos
	s.Ball.Prev = pos
	s.Ball.Dir = dir
	return s
}

// killAllBut marks every brick dead except keep and returns the number of
// dead bricks.
func killAllBut(bricks []Brick, keep int) int {
	n := 0
	for i := range bricks {
		if i != keep {
			bricks[i].dead = true
			n++
		}
	}
	return n
}

type fakeView struct {
	removed int
}

func (v *fakeView) Remove() { v.removed++ }

type fakeRenderer struct {
	frames     int
	last       State
	background []bool
	messages   []string
	views      []*fakeView
}

func (r *fakeRenderer) RenderFrame(s State) {
	r.frames++
	r.last = s
}

func (r *fakeRenderer) SetBackgroundVisible(v bool) {
	r.background = append(r.background, v)
}

func (r *fakeRenderer) ShowMessage(msg string) {
	r.messages = append(r.messages, msg)
}

func (r *fakeRenderer) AddBrick(int, Brick) BrickView {
	v := &fakeView{}
	r.views = append(r.views, v)
	return v
}

func (r *fakeRenderer) lastMessage() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

type fakeAudio struct {
	oneShots   []Cue
	loopStarts []float64
	loops      []Cue
	stops      int
}

func (a *fakeAudio) PlayOneShot(c Cue)      { a.oneShots = append(a.oneShots, c) }
func (a *fakeAudio) StartLoop(rate float64) { a.loopStarts = append(a.loopStarts, rate) }
func (a *fakeAudio) SetLoop(c Cue)          { a.loops = append(a.loops, c) }
func (a *fakeAudio) StopLoop()              { a.stops++ }

type fakeSpeaker struct {
	phrases []string
}

func (s *fakeSpeaker) Speak(p string) { s.phrases = append(s.phrases, p) }

type fakeTheme struct {
	loaded []string
}

func (t *fakeTheme) LoadTheme(id string) { t.loaded = append(t.loaded, id) }

type harness struct {
	session  *Session
	queue    *FrameQueue
	renderer *fakeRenderer
	audio    *fakeAudio
	speech   *fakeSpeaker
	theme    *fakeTheme
	clock    time.Time
}

func newHarness(flags Flags) *harness {
	h := &harness{
		queue:    NewFrameQueue(),
		renderer: &fakeRenderer{},
		audio:    &fakeAudio{},
		speech:   &fakeSpeaker{},
		theme:    &fakeTheme{},
		clock:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	s, err := NewSession(config.DefaultBreakoutConfig(), flags, h.queue, Collaborators{
		Renderer: h.renderer,
		Audio:    h.audio,
		Speech:   h.speech,
		Theme:    h.theme,
	}, 42)
	if err != nil {
		panic(err)
	}
	s.now = func() time.Time { return h.clock }
	h.session = s
	return h
}

// place puts the running ball at pos moving along dir.
func (h *harness) place(pos, dir core.Vec2) {
	h.session.state.Ball.Pos = pos
	h.session.state.Ball.Prev = pos
	h.session.state.Ball.Dir = dir
}

// hitBrick places the running ball just below brick i, moving up, and runs
// one tick.
func (h *harness) hitBrick(i int) {
	b := h.session.state.Bricks[i]
	layout := h.session.rules.Bricks
	ball := h.session.state.Ball
	h.place(core.Vec2{
		X: b.X + layout.Width/2,
		Y: b.Y + layout.Height + ball.Radius + 2,
	}, core.Vec2{X: 0, Y: -1})
	h.queue.Flush()
}
