// Package config holds chatgate's two configuration layers: the persisted
// user preferences (config.json, edited from the settings view) and the
// launch settings (launch.yaml, environment, flags) that describe where the
// shell runs and which services it talks to.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/chatgate/internal/errors"
)

// Submit keys accepted by the chat input.
const (
	SubmitEnter    = "enter"
	SubmitAltEnter = "alt+enter"
)

// Config holds the persisted user preferences
type Config struct {
	Theme                string `json:"theme,omitempty"`                 // "light", "dark" or "auto"
	DarkPalette          string `json:"dark_palette,omitempty"`          // Palette used for the dark theme (e.g. "nord")
	TightBorder          bool   `json:"tight_border,omitempty"`          // Borderless container in the wide layout
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification when a reply arrives
	SubmitKey            string `json:"submit_key,omitempty"`            // "enter" or "alt+enter"

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chatgate"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// PreferencesPath returns the default config.json location.
func PreferencesPath() (string, error) {
	return configPath()
}

// Default returns preferences with every field at its default.
func Default() *Config {
	return &Config{
		Theme:     "auto",
		SubmitKey: SubmitEnter,
	}
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.chatgate/config.json", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields defaults bound to
// path, so a later Save creates it.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	cfg.ensureDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ensureDefaults fills fields that an older config file may have omitted.
// Only called from LoadFrom, before the Config is shared.
func (c *Config) ensureDefaults() {
	if c.Theme == "" {
		c.Theme = "auto"
	}
	if c.SubmitKey == "" {
		c.SubmitKey = SubmitEnter
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.Theme {
	case "light", "dark", "auto":
	default:
		return errors.ConfigInvalid("unknown theme " + c.Theme)
	}
	switch c.SubmitKey {
	case SubmitEnter, SubmitAltEnter:
	default:
		return errors.ConfigInvalid("unknown submit key " + c.SubmitKey)
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		path, err := configPath()
		if err != nil {
			return errors.ConfigSaveFailed("~/.chatgate/config.json", err)
		}
		c.filePath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file this config is saved to
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetTheme returns the theme preference
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme preference
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetDarkPalette returns the palette used for the dark theme
func (c *Config) GetDarkPalette() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DarkPalette
}

// SetDarkPalette sets the palette used for the dark theme
func (c *Config) SetDarkPalette(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DarkPalette = name
}

// GetTightBorder returns whether the wide layout drops its outer border
func (c *Config) GetTightBorder() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.TightBorder
}

// SetTightBorder sets whether the wide layout drops its outer border
func (c *Config) SetTightBorder(tight bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.TightBorder = tight
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetSubmitKey returns the key that sends a chat message
func (c *Config) GetSubmitKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SubmitKey
}

// SetSubmitKey sets the key that sends a chat message
func (c *Config) SetSubmitKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SubmitKey = key
}
