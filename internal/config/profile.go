package config

import "fmt"

// Profile is a named accessibility preset.
type Profile string

const (
	ProfileStandard   Profile = "standard"   // no accessibility aids
	ProfileAccessible Profile = "accessible" // audio guidance and low-vision visuals
	ProfileAudio      Profile = "audio"      // audio guidance only
	ProfileLowVision  Profile = "low-vision" // low-vision visuals only
)

// Profiles lists the known profiles in display order.
func Profiles() []Profile {
	return []Profile{ProfileStandard, ProfileAccessible, ProfileAudio, ProfileLowVision}
}

// ParseProfile validates a profile name. An empty name is allowed and means
// "keep whatever the config file and stored preferences say".
func ParseProfile(name string) (Profile, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range Profiles() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown profile %q (want standard, accessible, audio or low-vision)", name)
}

// ApplyProfile sets the accessibility switches for a profile.
func ApplyProfile(cfg *BreakoutConfig, profile Profile) {
	switch profile {
	case ProfileStandard:
		cfg.Accessibility.Audio = false
		cfg.Accessibility.VisuallyImpaired = false
	case ProfileAccessible:
		cfg.Accessibility.Audio = true
		cfg.Accessibility.VisuallyImpaired = true
	case ProfileAudio:
		cfg.Accessibility.Audio = true
		cfg.Accessibility.VisuallyImpaired = false
	case ProfileLowVision:
		cfg.Accessibility.Audio = false
		cfg.Accessibility.VisuallyImpaired = true
	}
}
