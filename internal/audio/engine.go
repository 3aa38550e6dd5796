// Package audio implements the game's positioned sounds on top of beep:
// the impact one-shot and the guidance loop whose pan and tempo follow
// the ball.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/echo-breakout/internal/breakout"
	"github.com/vovakirdan/echo-breakout/internal/config"
)

// Resampling quality for rate changes (beep accepts 1-64)
const resampleQuality = 4

// Playback rate limits. The resampler needs a positive ratio.
const (
	minRate = 0.05
	maxRate = 4.0
)

// loop is the guidance track chain: ctrl -> volume -> pan -> resampler -> looped buffer.
type loop struct {
	ctrl      *beep.Ctrl
	pan       *effects.Pan
	resampler *beep.Resampler
}

// Engine mixes impact sounds and the guidance loop. It implements
// breakout.Audio.
type Engine struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	impact *beep.Buffer
	track  *beep.Buffer
	loop   *loop

	lock   func()
	unlock func()
	closer func()
	mu     sync.Mutex
}

// New renders the sounds and builds a mixer that is not attached to any
// output device. Open attaches it to the speaker.
func New(cfg config.AudioConfig) *Engine {
	rate := beep.SampleRate(cfg.SampleRate)

	e := &Engine{
		rate:   rate,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		impact: render(NewImpactSound(rate), rate),
		track:  render(NewLoopTrack(rate), rate),
	}
	e.lock = e.mu.Lock
	e.unlock = e.mu.Unlock
	e.closer = func() {}
	return e
}

// Open starts audio output. When audio is disabled or no device can be
// opened the game stays playable with silent audio; the failure is only
// logged.
func Open(cfg config.AudioConfig, logger *log.Logger) breakout.Audio {
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return breakout.SilentAudio{}
	}

	e := New(cfg)
	if err := speaker.Init(e.rate, e.rate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return breakout.SilentAudio{}
	}

	e.lock = speaker.Lock
	e.unlock = speaker.Unlock
	e.closer = func() {
		speaker.Clear()
		speaker.Close()
	}
	speaker.Play(e.mixer)

	logger.Debug("audio started", "sample_rate", int(e.rate))
	return e
}

// Close stops output.
func (e *Engine) Close() error {
	e.closer()
	return nil
}

// Streamer returns the engine's output.
func (e *Engine) Streamer() beep.Streamer {
	return e.mixer
}

// PlayOneShot plays the impact sound once at the cue's pan and rate.
func (e *Engine) PlayOneShot(c breakout.Cue) {
	s := beep.ResampleRatio(resampleQuality, clampRate(c.Rate), e.impact.Streamer(0, e.impact.Len()))
	panned := &effects.Pan{Streamer: s, Pan: clampPan(c.Pan)}

	e.lock()
	defer e.unlock()
	e.mixer.Add(newVolume(panned, e.volume))
}

// StartLoop (re)starts the guidance track from its beginning, centered.
func (e *Engine) StartLoop(rate float64) {
	e.lock()
	defer e.unlock()

	e.stopLocked()

	looped := beep.Loop(-1, e.track.Streamer(0, e.track.Len()))
	resampler := beep.ResampleRatio(resampleQuality, clampRate(rate), looped)
	pan := &effects.Pan{Streamer: resampler}
	ctrl := &beep.Ctrl{Streamer: newVolume(pan, e.volume)}

	e.loop = &loop{ctrl: ctrl, pan: pan, resampler: resampler}
	e.mixer.Add(ctrl)
}

// SetLoop moves the running track. It does nothing when no track plays.
func (e *Engine) SetLoop(c breakout.Cue) {
	e.lock()
	defer e.unlock()

	if e.loop == nil {
		return
	}
	e.loop.resampler.SetRatio(clampRate(c.Rate))
	e.loop.pan.Pan = clampPan(c.Pan)
}

// StopLoop stops the track.
func (e *Engine) StopLoop() {
	e.lock()
	defer e.unlock()
	e.stopLocked()
}

// Playing reports whether the guidance track is running.
func (e *Engine) Playing() bool {
	e.lock()
	defer e.unlock()
	return e.loop != nil
}

// stopLocked detaches the track. A Ctrl without a streamer is drained and
// dropped by the mixer.
func (e *Engine) stopLocked() {
	if e.loop == nil {
		return
	}
	e.loop.ctrl.Streamer = nil
	e.loop = nil
}

func clampRate(r float64) float64 {
	if r < minRate {
		return minRate
	}
	if r > maxRate {
		return maxRate
	}
	return r
}

func clampPan(p float64) float64 {
	if p < -1 {
		return -1
	}
	if p > 1 {
		return 1
	}
	return p
}
