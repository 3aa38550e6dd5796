package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/echo-breakout/internal/config"
	"github.com/vovakirdan/echo-breakout/internal/platform/tui"
	"github.com/vovakirdan/echo-breakout/internal/storage"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "View or change stored preferences",
	Long: `Without a subcommand, opens an interactive editor for the stored
accessibility switches.

Keys:
  audio_accessibility - Audio guidance, speech, slower ball, wider paddle
  visually_impaired   - High contrast bricks, no starfield

Examples:
  echobreakout prefs
  echobreakout prefs show
  echobreakout prefs set visually_impaired on
  echobreakout prefs reset`,
	Args: cobra.NoArgs,
	Run:  runPrefsEditor,
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored preferences",
	Args:  cobra.NoArgs,
	Run:   runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <on|off>",
	Short: "Store one preference",
	Args:  cobra.ExactArgs(2),
	Run:   runPrefsSet,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget every stored preference",
	Args:  cobra.NoArgs,
	Run:   runPrefsReset,
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsResetCmd)
}

// openStore opens the preferences database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preferences database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// configDefaults returns the switches of the default config, shown for
// preferences that were never stored.
func configDefaults() storage.Preferences {
	cfg, err := config.LoadBreakout("")
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	return storage.Preferences{
		AudioAccessibility: cfg.Accessibility.Audio,
		VisuallyImpaired:   cfg.Accessibility.VisuallyImpaired,
	}
}

func runPrefsEditor(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunPrefs(store, configDefaults(), width, height); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPrefsShow(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	entries, err := store.All()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error reading preferences: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No stored preferences; the config file decides.")
		return
	}

	fmt.Printf("%-22s %-6s %s\n", "Key", "Value", "Updated")
	fmt.Println(strings.Repeat("-", 46))
	for _, e := range entries {
		fmt.Printf("%-22s %-6s %s\n", e.Key, e.Value, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runPrefsSet(_ *cobra.Command, args []string) {
	key, raw := args[0], args[1]
	if key != storage.KeyAudioAccessibility && key != storage.KeyVisuallyImpaired {
		fmt.Fprintf(os.Stderr, "Error: unknown preference %q (want %s or %s)\n",
			key, storage.KeyAudioAccessibility, storage.KeyVisuallyImpaired)
		os.Exit(1)
	}

	value, err := parseSwitch(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	if err := store.Set(key, strconv.FormatBool(value)); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error saving preference: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s = %t\n", key, value)
}

func runPrefsReset(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if err := store.Reset(); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error resetting preferences: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Preferences cleared.")
}

// parseSwitch accepts on/off as well as anything strconv.ParseBool does.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid value %q (want on or off)", s)
	}
	return v, nil
}
