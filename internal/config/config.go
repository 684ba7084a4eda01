// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Built-in source names. Any other source must be declared under [lists].
const (
	SourceRecent    = "recent"
	SourceDirectory = "directory"
)

// ErrUnknownSource is returned when a trigger references an undeclared source.
var ErrUnknownSource = errors.New("unknown suggestion source")

// Config represents the application configuration
type Config struct {
	Overlay   Overlay         `toml:"overlay"`
	Triggers  []Trigger       `toml:"triggers"`
	Lists     map[string]List `toml:"lists"`
	Directory Directory       `toml:"directory"`
	Theme     Theme           `toml:"theme_colors"`
	Keys      KeyMap          `toml:"keys"`

	path string
}

// Overlay tunes the suggestions overlay
type Overlay struct {
	MaxHeight             int  `toml:"max_height"`
	Width                 int  `toml:"width"`
	ScrollFocusedIntoView bool `toml:"scroll_focused_into_view"`
	DebounceMs            int  `toml:"debounce_ms"`
	Limit                 int  `toml:"limit"`
	SourceTimeoutMs       int  `toml:"source_timeout_ms"`
}

// Trigger binds a trigger character to the sources queried after it
type Trigger struct {
	Char        string   `toml:"char"`
	Name        string   `toml:"name"`
	Sources     []string `toml:"sources"`
	AppendSpace bool     `toml:"append_space"`
}

// List is a static suggestion source
type List struct {
	Kind  string   `toml:"kind"` // fuzzy, prefix
	Items []string `toml:"items"`
}

// Theme defines the color palette
type Theme struct {
	TextPrimary   string `toml:"text_primary"`
	TextSecondary string `toml:"text_secondary"`
	TextFaint     string `toml:"text_faint"`
	Accent        string `toml:"accent"`
	Success       string `toml:"success"`
	Error         string `toml:"error"`
	Highlight     string `toml:"highlight"`
	Warning       string `toml:"warning"`
	BgPrimary     string `toml:"bg_primary"`
	BgSecondary   string `toml:"bg_secondary"`
	CardBg        string `toml:"card_bg"`
}

// KeyMap defines key bindings
type KeyMap struct {
	Up      []string `toml:"up"`
	Down    []string `toml:"down"`
	Select  []string `toml:"select"`
	Dismiss []string `toml:"dismiss"`
	Send    []string `toml:"send"`
	Quit    []string `toml:"quit"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Overlay: Overlay{
			MaxHeight:             6,
			Width:                 40,
			ScrollFocusedIntoView: true,
			DebounceMs:            120,
			Limit:                 20,
			SourceTimeoutMs:       3000,
		},
		Triggers: []Trigger{
			{Char: "@", Name: "people", Sources: []string{SourceRecent, SourceDirectory}, AppendSpace: true},
			{Char: "#", Name: "channels", Sources: []string{"channels"}, AppendSpace: true},
			{Char: ":", Name: "tags", Sources: []string{"tags"}},
		},
		Lists: map[string]List{
			"channels": {Kind: "fuzzy", Items: []string{"general", "random", "engineering", "design", "releases", "support"}},
			"tags":     {Kind: "prefix", Items: []string{"bug", "blocker", "feature", "followup", "question", "wontfix"}},
		},
		Directory: Directory{
			Name:     "default",
			Type:     "sqlite",
			Database: DefaultDirectoryPath(),
			Table:    "people",
		},
		Theme: Theme{
			// Nord Theme Defaults
			TextPrimary:   "#D8DEE9",
			TextSecondary: "#81A1C1",
			TextFaint:     "#4C566A",
			Accent:        "#88C0D0",
			Success:       "#A3BE8C",
			Error:         "#BF616A",
			Highlight:     "#8FBCBB",
			Warning:       "#D08770",
			BgPrimary:     "#2E3440",
			BgSecondary:   "#3B4252",
			CardBg:        "#434C5E",
		},
		Keys: KeyMap{
			Up:      []string{"up", "ctrl+p"},
			Down:    []string{"down", "ctrl+n"},
			Select:  []string{"enter", "tab"},
			Dismiss: []string{"esc"},
			Send:    []string{"ctrl+s"},
			Quit:    []string{"ctrl+c"},
		},
	}
}

// ConfigPath returns the XDG-compliant config file path
func ConfigPath() (string, error) {
	return xdg.ConfigFile("mentions/config.toml")
}

// DefaultDirectoryPath returns where the bundled SQLite people directory lives.
func DefaultDirectoryPath() string {
	return filepath.Join(xdg.DataHome, "mentions", "people.db")
}

// Load loads the config from path, or from the XDG path when path is empty.
// A missing file is created with defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// First run: create default
		cfg := DefaultConfig()
		cfg.path = path
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	cfg.path = path
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// fillDefaults populates sections missing from older config files
func (c *Config) fillDefaults() {
	defaults := DefaultConfig()

	if c.Overlay.MaxHeight <= 0 {
		c.Overlay.MaxHeight = defaults.Overlay.MaxHeight
	}
	if c.Overlay.Width <= 0 {
		c.Overlay.Width = defaults.Overlay.Width
	}
	if c.Overlay.DebounceMs < 0 {
		c.Overlay.DebounceMs = defaults.Overlay.DebounceMs
	}
	if c.Overlay.Limit <= 0 {
		c.Overlay.Limit = defaults.Overlay.Limit
	}
	if c.Overlay.SourceTimeoutMs <= 0 {
		c.Overlay.SourceTimeoutMs = defaults.Overlay.SourceTimeoutMs
	}
	if len(c.Triggers) == 0 {
		c.Triggers = defaults.Triggers
	}
	if c.Lists == nil {
		c.Lists = defaults.Lists
	}
	if c.Directory.Type == "" && c.Directory.DSN == "" {
		c.Directory = defaults.Directory
	}
	if c.Directory.Table == "" {
		c.Directory.Table = defaults.Directory.Table
	}
	if c.Theme.TextPrimary == "" {
		c.Theme = defaults.Theme
	}
	if len(c.Keys.Select) == 0 {
		c.Keys = defaults.Keys
	}
}

// Validate checks that every trigger is a single character and only
// references known sources.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Triggers))
	for _, t := range c.Triggers {
		if utf8.RuneCountInString(t.Char) != 1 {
			return fmt.Errorf("trigger %q: char must be a single character", t.Name)
		}
		if seen[t.Char] {
			return fmt.Errorf("trigger %q: duplicate char %q", t.Name, t.Char)
		}
		seen[t.Char] = true

		for _, src := range t.Sources {
			if src == SourceRecent || src == SourceDirectory {
				continue
			}
			list, ok := c.Lists[src]
			if !ok {
				return fmt.Errorf("trigger %q: %w: %s", t.Name, ErrUnknownSource, src)
			}
			if list.Kind != "fuzzy" && list.Kind != "prefix" {
				return fmt.Errorf("list %q: unknown kind %q", src, list.Kind)
			}
		}
	}
	return nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Save writes the config to disk
func (c *Config) Save() error {
	if c.path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		c.path = p
	}

	// Ensure directory exists with secure permissions
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(c.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
