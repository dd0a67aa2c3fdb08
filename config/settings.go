// Package config provides application configuration for kotoba-cards:
// where to load the deck from and how the UI should look.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// UISettings holds display options for the terminal UI. The boolean flags
// are negated so that the zero value enables the feature.
type UISettings struct {
	HideLogographic bool   `toml:"hide_logographic"` // hide the kanji form on card fronts
	NoReadingHints  bool   `toml:"no_reading_hints"` // disable kagome-backed suggestions in the add form
	AccentColor     string `toml:"accent_color"`     // lipgloss color for the selected card and headers
}

// Settings is the full application configuration.
type Settings struct {
	DeckPath string     `toml:"deck_path"` // optional TOML deck file; empty means the built-in seed list
	UI       UISettings `toml:"ui"`
}

// Default returns the settings used when no config file exists.
func Default() *Settings {
	s := &Settings{}
	s.ApplyDefaults()
	return s
}

// ApplyDefaults fills in zero values that have a meaningful default.
func (s *Settings) ApplyDefaults() {
	if s.UI.AccentColor == "" {
		s.UI.AccentColor = "212"
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "kotoba-cards.toml"
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "kotoba-cards", "config.toml")
}

// Load reads settings from a TOML file. A missing file is not an error:
// defaults are returned, matching first-run behavior.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	s.ApplyDefaults()
	return &s, nil
}
