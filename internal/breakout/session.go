package breakout

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/echo-breakout/internal/config"
)

// Spoken phrases and on-screen messages.
const (
	phraseStart     = "Starting game"
	phraseLost      = "Game over!"
	phraseRemaining = "%d, remaining"
	phraseWon       = "Victory ! In %d seconds"

	messageLost = "Game over !"
	messageWon  = "Victory ! (%ds)"
)

// Collaborators are the outside world of a session. Only the renderer is
// required; missing collaborators are replaced by silent ones.
type Collaborators struct {
	Renderer Renderer
	Audio    Audio
	Speech   Speaker
	Theme    ThemeLoader
	Logger   *log.Logger
}

// Session owns one game at a time: its state, its brick views and the
// pending tick. It is driven by a Scheduler and is not safe for
// concurrent use.
type Session struct {
	cfg    config.BreakoutConfig
	flags  Flags
	rules  Rules
	mapper AudioMapper

	sched      Scheduler
	pending    FrameID
	hasPending bool

	state   State
	views   []BrickView
	rng     *rand.Rand
	message string

	renderer Renderer
	audio    Audio
	speech   Speaker
	theme    ThemeLoader
	log      *log.Logger

	startedAt time.Time
	now       func() time.Time
}

// NewSession creates a session with an Idle game already drawn.
func NewSession(cfg config.BreakoutConfig, flags Flags, sched Scheduler, c Collaborators, seed int64) (*Session, error) {
	if c.Renderer == nil {
		return nil, ErrMissingRenderer
	}
	if sched == nil {
		sched = NewFrameQueue()
	}
	if c.Audio == nil {
		c.Audio = SilentAudio{}
	}
	if c.Speech == nil {
		c.Speech = SilentSpeaker{}
	}
	if c.Theme == nil {
		c.Theme = NoTheme{}
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:      cfg,
		flags:    flags,
		mapper:   NewAudioMapper(cfg),
		sched:    sched,
		rng:      rand.New(rand.NewSource(seed)),
		renderer: c.Renderer,
		audio:    c.Audio,
		speech:   c.Speech,
		theme:    c.Theme,
		log:      c.Logger,
		now:      time.Now,
	}
	s.initGame()
	return s, nil
}

// State returns the current game state.
func (s *Session) State() State { return s.state }

// Rules returns the rules of the current game.
func (s *Session) Rules() Rules { return s.rules }

// Flags returns the accessibility switches.
func (s *Session) Flags() Flags { return s.flags }

// Running reports whether a game is in progress.
func (s *Session) Running() bool { return s.state.Phase == PhaseRunning }

// Message returns the end-of-game message, empty while playing.
func (s *Session) Message() string { return s.message }

// Elapsed returns the time since the current game started.
func (s *Session) Elapsed() time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}
	return s.now().Sub(s.startedAt)
}

// Start begins a new game from a full reset. It does nothing while a game
// is already running.
func (s *Session) Start() {
	if s.Running() {
		return
	}
	s.cancelTick()

	s.say(phraseStart)
	s.initGame()
	s.state.Phase = PhaseRunning
	s.audio.StartLoop(s.mapper.AlignedRate)
	s.startedAt = s.now()

	s.log.Info("game started", "audio", s.flags.AudioAccessibility, "visual", s.flags.VisuallyImpaired, "bricks", s.state.Total())
	s.scheduleTick()
}

// Stop abandons the current game and returns to Idle. It is not a pause.
// Stopping an Idle session does nothing.
func (s *Session) Stop() {
	if s.state.Phase == PhaseIdle {
		return
	}
	s.cancelTick()
	s.audio.StopLoop()
	s.initGame()
	s.log.Debug("game stopped")
}

// Toggle starts a game if none is running and stops it otherwise.
func (s *Session) Toggle() {
	if s.Running() {
		s.Stop()
		return
	}
	s.Start()
}

// NudgeLeft accelerates the paddle to the left. The velocity is consumed
// by the next tick.
func (s *Session) NudgeLeft() { s.nudge(-s.rules.Nudge) }

// NudgeRight accelerates the paddle to the right.
func (s *Session) NudgeRight() { s.nudge(s.rules.Nudge) }

func (s *Session) nudge(delta float64) {
	if !s.Running() {
		return
	}
	s.state.Paddle = s.state.Paddle.Nudge(delta)
}

// SetVisuallyImpaired switches the low-vision mode. A game in progress
// keeps its look until the next one; an idle game is rebuilt at once.
func (s *Session) SetVisuallyImpaired(on bool) {
	s.flags.VisuallyImpaired = on
	if !s.Running() {
		s.initGame()
	}
}

// SetAudioAccessibility switches audio guidance. Paddle width and ball
// speed follow at the next game; an idle game is rebuilt at once.
func (s *Session) SetAudioAccessibility(on bool) {
	s.flags.AudioAccessibility = on
	if !s.Running() {
		s.initGame()
	}
}

// initGame replaces the game with a fresh Idle one drawn by the renderer.
func (s *Session) initGame() {
	s.rules = NewRules(s.cfg, s.flags)

	if s.flags.VisuallyImpaired {
		s.theme.LoadTheme(themeID(s.cfg.Themes.LowVision, ThemeHighContrast))
	} else {
		s.theme.LoadTheme(themeID(s.cfg.Themes.Standard, ThemeStandard))
	}
	s.renderer.SetBackgroundVisible(!s.flags.VisuallyImpaired)

	s.message = ""
	s.renderer.ShowMessage("")

	for _, v := range s.views {
		v.Remove()
	}

	s.state = s.rules.InitialState(s.rng, s.flags.VisuallyImpaired)
	s.views = make([]BrickView, len(s.state.Bricks))
	for i, b := range s.state.Bricks {
		v := s.renderer.AddBrick(i, b)
		if v == nil {
			v = noView{}
		}
		s.views[i] = v
	}
	s.startedAt = time.Time{}

	s.renderer.RenderFrame(s.state)
}

func themeID(configured, fallback string) string {
	if configured == "" {
		return fallback
	}
	return configured
}

// tick is the scheduled frame callback.
func (s *Session) tick() {
	s.hasPending = false

	var events []Event
	s.state, events = Advance(s.state, s.rules)

	for _, ev := range events {
		if ev.Kind.Impact() {
			s.audio.PlayOneShot(s.mapper.Impact(ev.Kind, ev.At, s.rules.Viewport))
		}
		if ev.Kind == EventBrickDestroyed {
			s.views[ev.Brick].Remove()
			if ev.Remaining > 0 {
				s.say(fmt.Sprintf(phraseRemaining, ev.Remaining))
			}
		}
	}

	s.renderer.RenderFrame(s.state)

	switch s.state.Phase {
	case PhaseRunning:
		if s.flags.AudioAccessibility {
			loop := s.mapper.Loop(s.state.Ball.Pos.X, s.state.Paddle, s.rules.Viewport.X)
			s.audio.SetLoop(Cue{Pan: loop.Pan, Rate: loop.Rate})
		}
		s.scheduleTick()
	case PhaseLost:
		s.lost()
	case PhaseWon:
		s.won()
	}
}

func (s *Session) lost() {
	s.audio.StopLoop()
	s.say(phraseLost)
	s.setMessage(messageLost)
	s.log.Info("game lost", "destroyed", s.state.Destroyed, "elapsed", s.Elapsed().Round(time.Second))
}

func (s *Session) won() {
	s.audio.StopLoop()
	secs := int(math.Round(s.Elapsed().Seconds()))
	s.say(fmt.Sprintf(phraseWon, secs))
	s.setMessage(fmt.Sprintf(messageWon, secs))
	s.log.Info("game won", "seconds", secs)
}

func (s *Session) setMessage(msg string) {
	s.message = msg
	s.renderer.ShowMessage(msg)
}

// say speaks a phrase when audio accessibility is on.
func (s *Session) say(phrase string) {
	if s.flags.AudioAccessibility {
		s.speech.Speak(phrase)
	}
}

func (s *Session) scheduleTick() {
	s.pending = s.sched.Schedule(s.tick)
	s.hasPending = true
}

func (s *Session) cancelTick() {
	if s.hasPending {
		s.sched.Cancel(s.pending)
		s.hasPending = false
	}
}
