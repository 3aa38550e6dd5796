package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/echo-breakout/internal/breakout"
	"github.com/vovakirdan/echo-breakout/internal/config"
	"github.com/vovakirdan/echo-breakout/internal/core"
	"github.com/vovakirdan/echo-breakout/internal/speech"
	"github.com/vovakirdan/echo-breakout/internal/starfield"
	"github.com/vovakirdan/echo-breakout/internal/storage"
)

// maxFrameDelta caps the starfield step after a stall.
const maxFrameDelta = 0.1

// PreferenceStore persists the accessibility switches.
type PreferenceStore interface {
	SavePreferences(p storage.Preferences) error
}

// Options wires a Model to the outside world. Audio, Speech and Store may
// be nil.
type Options struct {
	Config        config.BreakoutConfig
	Runtime       core.RuntimeConfig
	Audio         breakout.Audio
	Speech        breakout.Speaker
	Store         PreferenceStore
	Logger        *log.Logger
	ScreenshotDir string // defaults to ~/.arcade/screenshots
}

// Model is the Bubble Tea model running one breakout session.
type Model struct {
	session  *breakout.Session
	queue    *breakout.FrameQueue
	renderer *Renderer
	themes   *ThemeSet
	field    *starfield.Field
	captions *speech.Captions
	store    PreferenceStore
	log      *log.Logger

	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	shotDir  string
	lastTick time.Time
	quitting bool
}

// NewModel creates the model and its session. The game starts Idle.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	field := starfield.New(opts.Config.Starfield, cfg.Seed)
	renderer := NewRenderer(opts.Config, field, cfg.ScreenW, cfg.ScreenH-1)
	themes := NewThemeSet(opts.Config.Themes)
	captions := speech.NewCaptions(speech.DefaultCaptionTTL)
	queue := breakout.NewFrameQueue()

	voice := opts.Speech
	if voice == nil {
		voice = breakout.SilentSpeaker{}
	}

	session, err := breakout.NewSession(opts.Config, breakout.FlagsFromConfig(opts.Config), queue, breakout.Collaborators{
		Renderer: renderer,
		Audio:    opts.Audio,
		Speech:   speech.Tee(voice, captions),
		Theme:    themes,
		Logger:   logger,
	}, cfg.Seed)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:  session,
		queue:    queue,
		renderer: renderer,
		themes:   themes,
		field:    field,
		captions: captions,
		store:    opts.Store,
		log:      logger,
		keys:     DefaultKeyMap(),
		help:     h,
		config:   cfg,
		shotDir:  shotDir,
	}, nil
}

// Session returns the running session.
func (m Model) Session() *breakout.Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Shot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "error", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.session.Stop()
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.session.NudgeLeft()
	case core.ActionRight:
		m.session.NudgeRight()
	case core.ActionToggleGame:
		m.session.Toggle()
	case core.ActionToggleVisual:
		m.session.SetVisuallyImpaired(!m.session.Flags().VisuallyImpaired)
		m.savePreferences()
	case core.ActionToggleAudio:
		m.session.SetAudioAccessibility(!m.session.Flags().AudioAccessibility)
		m.savePreferences()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// only the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout gives the play field whatever the help view leaves.
func (m Model) layout() {
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	m.renderer.Resize(m.config.ScreenW, m.config.ScreenH-helpHeight)
}

// handleTick advances the background and runs the frames the session
// scheduled since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = min(max(now.Sub(m.lastTick).Seconds(), 0), maxFrameDelta)
	}
	m.lastTick = now

	if m.renderer.BackgroundVisible() {
		m.field.Update(dt)
	}
	m.queue.Flush()

	return m, tickCmd(m.config.TickRate)
}

// savePreferences stores the current switches so the next run starts with
// them. Failures only cost persistence.
func (m Model) savePreferences() {
	if m.store == nil {
		return
	}
	flags := m.session.Flags()
	err := m.store.SavePreferences(storage.Preferences{
		AudioAccessibility: flags.AudioAccessibility,
		VisuallyImpaired:   flags.VisuallyImpaired,
	})
	if err != nil {
		m.log.Warn("saving preferences failed", "error", err)
	}
}

func (m Model) hud() HUD {
	st := m.session.State()
	return HUD{
		Remaining: st.Remaining(),
		Total:     st.Total(),
		Elapsed:   m.session.Elapsed(),
		Flags:     m.session.Flags(),
		Caption:   m.captions.Current(),
		Phase:     st.Phase,
	}
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	screen := m.renderer.Draw(m.hud())

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", err
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("echobreakout_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	screen := m.renderer.Draw(m.hud())
	return RenderScreen(screen, m.themes.Current()) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
