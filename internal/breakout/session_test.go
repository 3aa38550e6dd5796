package breakout

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vovakirdan/echo-breakout/internal/config"
	"github.com/vovakirdan/echo-breakout/internal/core"
)

var accessible = Flags{AudioAccessibility: true, VisuallyImpaired: true}

func TestNewSessionRequiresRenderer(t *testing.T) {
	_, err := NewSession(config.DefaultBreakoutConfig(), accessible, NewFrameQueue(), Collaborators{}, 1)
	if !errors.Is(err, ErrMissingRenderer) {
		t.Errorf("err = %v, want ErrMissingRenderer", err)
	}
}

func TestNewSessionSilentCollaborators(t *testing.T) {
	q := NewFrameQueue()
	s, err := NewSession(config.DefaultBreakoutConfig(), accessible, q, Collaborators{Renderer: &fakeRenderer{}}, 1)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	s.Start()
	for range 10 {
		q.Flush()
	}
	if !s.Running() {
		t.Error("session should run without audio, speech or theme")
	}
}

func TestNewSessionDrawsIdleGame(t *testing.T) {
	h := newHarness(accessible)

	if h.session.State().Phase != PhaseIdle {
		t.Errorf("phase = %v, want Idle", h.session.State().Phase)
	}
	if len(h.renderer.views) != 24 {
		t.Errorf("views = %d, want 24", len(h.renderer.views))
	}
	if h.renderer.frames == 0 {
		t.Error("idle game should be rendered")
	}
	if len(h.theme.loaded) != 1 || h.theme.loaded[0] != ThemeHighContrast {
		t.Errorf("themes = %v, want [high-contrast]", h.theme.loaded)
	}
	if len(h.renderer.background) != 1 || h.renderer.background[0] {
		t.Errorf("background = %v, want starfield hidden", h.renderer.background)
	}
	if h.queue.Pending() != 0 {
		t.Error("idle session must not schedule ticks")
	}
}

func TestSessionStart(t *testing.T) {
	h := newHarness(accessible)
	h.session.Start()

	if !h.session.Running() {
		t.Fatal("session should be running")
	}
	if len(h.speech.phrases) != 1 || h.speech.phrases[0] != "Starting game" {
		t.Errorf("phrases = %v, want [Starting game]", h.speech.phrases)
	}
	if len(h.audio.loopStarts) != 1 || h.audio.loopStarts[0] != 1.3 {
		t.Errorf("loop starts = %v, want [1.3]", h.audio.loopStarts)
	}
	if h.queue.Pending() != 1 {
		t.Errorf("pending = %d, want 1", h.queue.Pending())
	}

	// Starting again while running changes nothing
	h.session.Start()
	if len(h.speech.phrases) != 1 || len(h.audio.loopStarts) != 1 || h.queue.Pending() != 1 {
		t.Error("Start should be idempotent while running")
	}
}

func TestSessionTickUpdatesLoop(t *testing.T) {
	h := newHarness(accessible)
	h.session.Start()

	h.queue.Flush()
	if h.session.State().Tick != 1 {
		t.Errorf("tick = %d, want 1", h.session.State().Tick)
	}
	if len(h.audio.loops) != 1 {
		t.Errorf("loop updates = %d, want 1", len(h.audio.loops))
	}
	if h.queue.Pending() != 1 {
		t.Error("running session should schedule the next tick")
	}
}

func TestSessionStandardModeIsQuiet(t *testing.T) {
	h := newHarness(Flags{})
	h.session.Start()
	for range 5 {
		h.queue.Flush()
	}

	if len(h.speech.phrases) != 0 {
		t.Errorf("phrases = %v, want none", h.speech.phrases)
	}
	if len(h.audio.loops) != 0 {
		t.Errorf("loop should not be steered in standard mode, got %d updates", len(h.audio.loops))
	}
	if len(h.renderer.background) == 0 || !h.renderer.background[len(h.renderer.background)-1] {
		t.Error("starfield should be visible in standard mode")
	}
}

func TestSessionStop(t *testing.T) {
	h := newHarness(accessible)

	h.session.Stop()
	if h.audio.stops != 0 {
		t.Error("stopping an idle session should do nothing")
	}

	h.session.Start()
	running := h.session.views
	h.session.Stop()

	if h.session.State().Phase != PhaseIdle {
		t.Errorf("phase = %v, want Idle", h.session.State().Phase)
	}
	if h.audio.stops != 1 {
		t.Errorf("loop stops = %d, want 1", h.audio.stops)
	}
	if h.queue.Pending() != 0 {
		t.Error("Stop should cancel the pending tick")
	}
	for i, v := range running {
		if v.(*fakeView).removed != 1 {
			t.Errorf("view %d removed %d times, want 1", i, v.(*fakeView).removed)
		}
	}
	if h.session.State().Remaining() != 24 {
		t.Error("Stop should rebuild a full grid")
	}
}

func TestSessionToggle(t *testing.T) {
	h := newHarness(accessible)

	h.session.Toggle()
	if !h.session.Running() {
		t.Fatal("first toggle should start")
	}
	h.session.Toggle()
	if h.session.State().Phase != PhaseIdle {
		t.Error("second toggle should stop")
	}
}

func TestSessionNudge(t *testing.T) {
	h := newHarness(accessible)

	h.session.NudgeLeft()
	if h.session.State().Paddle.Velocity != 0 {
		t.Error("nudges are ignored while idle")
	}

	h.session.Start()
	h.session.NudgeLeft()
	h.session.NudgeLeft()
	h.session.NudgeRight()
	if v := h.session.State().Paddle.Velocity; v != -10 {
		t.Errorf("velocity = %v, want -10", v)
	}
}

func TestSessionBrickAnnouncement(t *testing.T) {
	h := newHarness(accessible)
	h.session.Start()
	h.place(core.Vec2{X: 207.5, Y: 304}, core.Vec2{X: 0, Y: -1})

	h.queue.Flush()

	if got := h.speech.phrases[len(h.speech.phrases)-1]; got != "23, remaining" {
		t.Errorf("last phrase = %q, want %q", got, "23, remaining")
	}
	if h.session.views[16].(*fakeView).removed != 1 {
		t.Error("brick view should be removed")
	}
	if len(h.audio.oneShots) != 1 || h.audio.oneShots[0].Rate != 1 {
		t.Errorf("one-shots = %v, want one brick impact", h.audio.oneShots)
	}
}

func TestSessionWin(t *testing.T) {
	h := newHarness(accessible)
	h.session.Start()

	h.session.state.Destroyed = killAllBut(h.session.state.Bricks, 0)
	h.place(core.Vec2{X: 110, Y: 114}, core.Vec2{X: 0, Y: -1})
	h.clock = h.clock.Add(42*time.Second + 400*time.Millisecond)

	h.queue.Flush()

	if h.session.State().Phase != PhaseWon {
		t.Fatalf("phase = %v, want Won", h.session.State().Phase)
	}
	want := []string{"Starting game", "Victory ! In 42 seconds"}
	if len(h.speech.phrases) != len(want) {
		t.Fatalf("phrases = %v, want %v", h.speech.phrases, want)
	}
	for i := range want {
		if h.speech.phrases[i] != want[i] {
			t.Errorf("phrase %d = %q, want %q", i, h.speech.phrases[i], want[i])
		}
	}
	if h.session.Message() != "Victory ! (42s)" || h.renderer.lastMessage() != "Victory ! (42s)" {
		t.Errorf("message = %q, want %q", h.session.Message(), "Victory ! (42s)")
	}
	if h.audio.stops != 1 {
		t.Errorf("loop stops = %d, want 1", h.audio.stops)
	}
	if h.queue.Pending() != 0 {
		t.Error("won game should not schedule more ticks")
	}
}

func TestSessionLoss(t *testing.T) {
	h := newHarness(accessible)
	h.session.Start()

	// Inside the slowdown zone the ball moves 1.5 per tick
	h.place(core.Vec2{X: 800, Y: 887}, core.Vec2{X: 0, Y: 1})
	h.queue.Flush()

	if h.session.State().Phase != PhaseLost {
		t.Fatalf("phase = %v, want Lost", h.session.State().Phase)
	}
	if got := h.speech.phrases[len(h.speech.phrases)-1]; got != "Game over!" {
		t.Errorf("last phrase = %q, want %q", got, "Game over!")
	}
	if h.session.Message() != "Game over !" {
		t.Errorf("message = %q, want %q", h.session.Message(), "Game over !")
	}
	if h.queue.Pending() != 0 {
		t.Error("lost game should not schedule more ticks")
	}

	// The next start is a full reset
	h.session.Start()
	if h.session.State().Remaining() != 24 || h.session.Message() != "" {
		t.Error("restart should rebuild the game and clear the message")
	}
}

func TestSessionAccessibilityToggles(t *testing.T) {
	h := newHarness(Flags{})
	first := h.session.views

	h.session.SetVisuallyImpaired(true)
	if last := h.theme.loaded[len(h.theme.loaded)-1]; last != ThemeHighContrast {
		t.Errorf("theme = %q, want %q", last, ThemeHighContrast)
	}
	if h.session.State().Bricks[0].Color != core.ColorBrickHighContrast {
		t.Error("idle game should be rebuilt with high contrast bricks")
	}
	if first[0].(*fakeView).removed != 1 {
		t.Error("old brick views should be removed on rebuild")
	}

	h.session.SetAudioAccessibility(true)
	if w := h.session.State().Paddle.Width; w != 300 {
		t.Errorf("paddle width = %v, want 300", w)
	}

	h.session.SetAudioAccessibility(false)
	h.session.Start()
	h.session.SetAudioAccessibility(true)
	if w := h.session.State().Paddle.Width; w != 150 {
		t.Errorf("running game changed paddle width to %v", w)
	}
	if !h.session.Flags().AudioAccessibility {
		t.Error("flag should be updated even while running")
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		h := newHarness(accessible)
		h.session.Start()
		for i := range 600 {
			if i%9 < 3 {
				h.session.NudgeRight()
			} else if i%9 < 5 {
				h.session.NudgeLeft()
			}
			h.queue.Flush()
		}
		return h.session.State().Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("hashes differ: %d vs %d", a.Hash(), b.Hash())
	}
}

func TestSessionClearsEveryBrick(t *testing.T) {
	h := newHarness(accessible)
	h.session.Start()

	// Bottom row first so no live brick overlaps the ball
	for n := 1; n <= 24; n++ {
		h.clock = h.clock.Add(time.Second)
		h.hitBrick(24 - n)

		if got := h.session.State().Destroyed; got != n {
			t.Fatalf("after hit %d: destroyed = %d", n, got)
		}
		if n < 24 && !h.session.Running() {
			t.Fatalf("after hit %d: phase = %v, want Running", n, h.session.State().Phase)
		}
	}

	if h.session.State().Phase != PhaseWon {
		t.Fatalf("phase = %v, want Won", h.session.State().Phase)
	}

	want := []string{"Starting game"}
	for n := 23; n >= 1; n-- {
		want = append(want, fmt.Sprintf("%d, remaining", n))
	}
	want = append(want, "Victory ! In 24 seconds")
	if len(h.speech.phrases) != len(want) {
		t.Fatalf("got %d phrases, want %d: %v", len(h.speech.phrases), len(want), h.speech.phrases)
	}
	for i := range want {
		if h.speech.phrases[i] != want[i] {
			t.Errorf("phrase %d = %q, want %q", i, h.speech.phrases[i], want[i])
		}
	}
	if h.session.Message() != "Victory ! (24s)" {
		t.Errorf("message = %q, want %q", h.session.Message(), "Victory ! (24s)")
	}
	if h.queue.Pending() != 0 {
		t.Error("won game should not schedule more ticks")
	}
}

func TestSessionLossKeepsDestroyedCount(t *testing.T) {
	h := newHarness(accessible)
	h.session.Start()

	for n := 1; n <= 23; n++ {
		h.hitBrick(24 - n)
	}
	if !h.session.Running() {
		t.Fatalf("phase = %v after 23 hits, want Running", h.session.State().Phase)
	}

	h.place(core.Vec2{X: 800, Y: 887}, core.Vec2{X: 0, Y: 1})
	h.queue.Flush()

	if h.session.Running() {
		t.Fatal("ball past the bottom should end the game")
	}
	if h.session.State().Phase != PhaseLost {
		t.Errorf("phase = %v, want Lost", h.session.State().Phase)
	}
	if got := h.session.State().Destroyed; got != 23 {
		t.Errorf("destroyed = %d, want 23", got)
	}
	if got := h.session.State().Remaining(); got != 1 {
		t.Errorf("remaining = %d, want 1", got)
	}
	if got := h.speech.phrases[len(h.speech.phrases)-1]; got != "Game over!" {
		t.Errorf("last phrase = %q, want %q", got, "Game over!")
	}
}
