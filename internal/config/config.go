// Package config persists per-user folio settings as JSON under ~/.folio.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/folioapp/folio/internal/errors"
)

// Config holds the application configuration
type Config struct {
	Theme                string `json:"theme,omitempty"`                 // UI theme name
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notifications on import completion
	LastActivePageID     string `json:"last_active_page_id,omitempty"`   // Page restored as active on next start
	DefaultLinkMode      string `json:"default_link_mode,omitempty"`     // Mode preselected in the link dialog (popup, split, newpage)
	DBPath               string `json:"db_path,omitempty"`               // Page database override; empty means the default location

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".folio"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Used by Load and by
// tests.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.DefaultLinkMode {
	case "", "popup", "split", "newpage":
	default:
		return errors.ConfigInvalid("unknown default link mode: " + c.DefaultLinkMode)
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

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

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
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

// GetLastActivePageID returns the page to restore on startup, or empty
// string if none was recorded.
func (c *Config) GetLastActivePageID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastActivePageID
}

// SetLastActivePageID records the page to restore on next startup.
func (c *Config) SetLastActivePageID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastActivePageID = id
}

// GetDefaultLinkMode returns the mode preselected in the link dialog,
// defaulting to "popup".
func (c *Config) GetDefaultLinkMode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.DefaultLinkMode == "" {
		return "popup"
	}
	return c.DefaultLinkMode
}

// SetDefaultLinkMode sets the mode preselected in the link dialog.
func (c *Config) SetDefaultLinkMode(mode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DefaultLinkMode = mode
}

// GetDBPath returns the configured page database path, or the default
// location when unset.
func (c *Config) GetDBPath() (string, error) {
	c.mu.RLock()
	override := c.DBPath
	c.mu.RUnlock()

	if override != "" {
		return override, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "folio.db"), nil
}

// SetDBPath overrides the page database location. Pass empty string to
// return to the default.
func (c *Config) SetDBPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DBPath = path
}
