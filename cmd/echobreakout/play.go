package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/echo-breakout/internal/audio"
	"github.com/vovakirdan/echo-breakout/internal/config"
	"github.com/vovakirdan/echo-breakout/internal/core"
	"github.com/vovakirdan/echo-breakout/internal/platform/tui"
	"github.com/vovakirdan/echo-breakout/internal/speech"
	"github.com/vovakirdan/echo-breakout/internal/storage"
)

var (
	flagConfig     string
	flagProfile    string
	flagMute       bool
	flagNoSpeech   bool
	flagAccessible bool
	flagLowVision  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game. Press enter to launch the ball.

Controls:
  Left/H/A    - Push the paddle left
  Right/L/D   - Push the paddle right
  Enter/Space - Start a new game or stop the current one
  M           - Toggle audio guidance
  V           - Toggle low vision mode
  Ctrl+S      - Save a text screenshot
  ?           - Show all keys
  Q/Ctrl+C    - Quit

Accessibility switches come from, in increasing priority: the config
file, the stored preferences, --profile, then --accessible/--low-vision.
Toggling a switch in game stores it for the next run.

Profiles:
  standard    - No aids
  accessible  - Audio guidance and low vision mode
  audio       - Audio guidance only
  low-vision  - Low vision mode only

Examples:
  echobreakout play
  echobreakout play --profile audio
  echobreakout play --accessible --no-speech
  echobreakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagProfile, "profile", "", "Accessibility profile: standard, accessible, audio, low-vision")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound output")
	playCmd.Flags().BoolVar(&flagNoSpeech, "no-speech", false, "Disable the speech synthesizer (captions stay)")
	playCmd.Flags().BoolVar(&flagAccessible, "accessible", false, "Turn audio guidance on")
	playCmd.Flags().BoolVar(&flagLowVision, "low-vision", false, "Turn low vision mode on")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	profile, err := config.ParseProfile(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open preference storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open preferences database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var prefStore tui.PreferenceStore
	if store != nil {
		prefStore = store
		applyStoredPreferences(&cfg, store, logger)
	}

	config.ApplyProfile(&cfg, profile)
	if flagAccessible {
		cfg.Accessibility.Audio = true
	}
	if flagLowVision {
		cfg.Accessibility.VisuallyImpaired = true
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if flagNoSpeech {
		cfg.Speech.Enabled = false
	}

	sound := audio.Open(cfg.Audio, logger)
	voice := speech.Open(cfg.Speech, logger)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting",
		"audio_accessibility", cfg.Accessibility.Audio,
		"visually_impaired", cfg.Accessibility.VisuallyImpaired,
		"size", fmt.Sprintf("%dx%d", width, height))

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Audio:  sound,
		Speech: voice,
		Store:  prefStore,
		Logger: logger,
	})

	// Release devices and storage before potential exit
	for _, c := range []any{voice, sound} {
		if closer, ok := c.(io.Closer); ok {
			closer.Close()
		}
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyStoredPreferences overlays the stored switches on cfg. A broken
// store only costs the remembered switches.
func applyStoredPreferences(cfg *config.BreakoutConfig, store *storage.Store, logger *log.Logger) {
	prefs, err := store.Preferences(storage.Preferences{
		AudioAccessibility: cfg.Accessibility.Audio,
		VisuallyImpaired:   cfg.Accessibility.VisuallyImpaired,
	})
	if err != nil {
		logger.Warn("could not read preferences", "error", err)
		return
	}
	cfg.Accessibility.Audio = prefs.AudioAccessibility
	cfg.Accessibility.VisuallyImpaired = prefs.VisuallyImpaired
}
