// Package speech reads game announcements aloud through an espeak process
// and mirrors them as on-screen captions.
package speech

import (
	"os/exec"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/echo-breakout/internal/breakout"
	"github.com/vovakirdan/echo-breakout/internal/config"
)

// Prosody is the fixed voice shaping used for every phrase.
type Prosody struct {
	Amplitude int
	WordGap   int
	Pitch     int
	Speed     int
	Variant   string // "none" keeps the plain voice
	Voice     string
}

// ProsodyFromConfig reads the prosody from the speech config.
func ProsodyFromConfig(cfg config.SpeechConfig) Prosody {
	return Prosody{
		Amplitude: cfg.Amplitude,
		WordGap:   cfg.WordGap,
		Pitch:     cfg.Pitch,
		Speed:     cfg.Speed,
		Variant:   cfg.Variant,
		Voice:     cfg.Voice,
	}
}

// VoiceName returns the espeak voice argument, e.g. "en" or "en+f3".
func (p Prosody) VoiceName() string {
	if p.Variant == "" || p.Variant == "none" {
		return p.Voice
	}
	return p.Voice + "+" + p.Variant
}

// Args builds the espeak command line for a phrase.
func (p Prosody) Args(phrase string) []string {
	args := []string{
		"-a", strconv.Itoa(p.Amplitude),
		"-g", strconv.Itoa(p.WordGap),
		"-p", strconv.Itoa(p.Pitch),
		"-s", strconv.Itoa(p.Speed),
	}
	if v := p.VoiceName(); v != "" {
		args = append(args, "-v", v)
	}
	// "--" keeps phrases starting with a dash from being read as flags
	return append(args, "--", phrase)
}

// Espeak speaks through an external espeak (or espeak-ng) binary. Each
// phrase interrupts the one still being spoken.
type Espeak struct {
	path    string
	prosody Prosody
	log     *log.Logger

	mu      sync.Mutex
	current *exec.Cmd
}

// NewEspeak creates a speaker for the binary at path.
func NewEspeak(path string, p Prosody, logger *log.Logger) *Espeak {
	return &Espeak{path: path, prosody: p, log: logger}
}

// Speak starts speaking and returns at once.
func (e *Espeak) Speak(phrase string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current != nil && e.current.Process != nil {
		_ = e.current.Process.Kill()
	}

	cmd := exec.Command(e.path, e.prosody.Args(phrase)...) //#nosec G204 -- binary resolved at startup, phrase is a fixed game string
	if err := cmd.Start(); err != nil {
		e.log.Warn("speech failed", "phrase", phrase, "error", err)
		e.current = nil
		return
	}
	e.current = cmd

	go func() {
		_ = cmd.Wait()
		e.mu.Lock()
		if e.current == cmd {
			e.current = nil
		}
		e.mu.Unlock()
	}()
}

// Close interrupts the phrase being spoken.
func (e *Espeak) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current != nil && e.current.Process != nil {
		_ = e.current.Process.Kill()
	}
	return nil
}

// Open resolves the speech command. When speech is disabled or the binary
// can't be found the game goes on without speech.
func Open(cfg config.SpeechConfig, logger *log.Logger) breakout.Speaker {
	if !cfg.Enabled {
		logger.Debug("speech disabled")
		return breakout.SilentSpeaker{}
	}

	path, err := exec.LookPath(cfg.Command)
	if err != nil {
		logger.Warn("speech unavailable, continuing without it", "command", cfg.Command, "error", err)
		return breakout.SilentSpeaker{}
	}

	logger.Debug("speech ready", "path", path)
	return NewEspeak(path, ProsodyFromConfig(cfg), logger)
}
