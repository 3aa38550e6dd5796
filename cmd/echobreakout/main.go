// echobreakout is a breakout game for the terminal that can be played by
// ear: audio cues follow the ball, a voice counts the remaining bricks and
// a low-vision mode trades decoration for contrast.
//
// Usage:
//
//	echobreakout play            - Play the game
//	echobreakout prefs           - Edit stored accessibility preferences
//	echobreakout config dump     - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set display rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible launches
//	--db <path>         - Set preferences database path (default: ~/.arcade/echobreakout.db)
//	--log-file <path>   - Write logs to a file (default: none)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "echobreakout",
	Short: "Echo Breakout - an accessible breakout game for the terminal",
	Long: `Echo Breakout is a brick breaker you can play with your eyes or your ears.

With audio guidance on, a looping track pans toward the ball and speeds up
as the paddle lines up under it, impacts are placed in stereo, and a voice
announces how many bricks are left. Low vision mode removes the starfield
and paints every brick in high contrast.

Available commands:
  play     - Play the game
  prefs    - View or change stored preferences
  config   - Inspect the configuration

Examples:
  echobreakout play
  echobreakout play --profile accessible
  echobreakout prefs set audio_accessibility on
  echobreakout config dump > ~/.arcade/configs/breakout.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Display rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/echobreakout.db", "Path to preferences database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. The terminal belongs to the game,
// so without --log-file logs are discarded.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "echobreakout",
		Level:           level,
	})
	return logger, closeFn, nil
}
