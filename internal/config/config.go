package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"

	pkgerrors "github.com/artilence/agentchat/internal/errors"
)

// Defaults used when the config file or environment leaves a value unset.
const (
	DefaultEndpoint       = "http://127.0.0.1:8000/api/chat/"
	DefaultTimeoutSeconds = 60
)

// Environment variables that override values read from the config file.
const (
	EnvEndpoint       = "AGENTCHAT_ENDPOINT"
	EnvTimeoutSeconds = "AGENTCHAT_TIMEOUT_SECONDS"
	EnvTheme          = "AGENTCHAT_THEME"
)

// Config holds the application configuration
type Config struct {
	Endpoint             string `json:"endpoint"`                        // Chat endpoint URL (POST for replies, GET for history)
	TimeoutSeconds       int    `json:"timeout_seconds,omitempty"`       // Per-request transport timeout
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification when a reply lands while unfocused

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".agentchat"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default returns a config populated with default values.
func Default() *Config {
	return &Config{
		Endpoint:       DefaultEndpoint,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Load reads the config from disk, or returns defaults if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, pkgerrors.ConfigLoadFailed("~/.agentchat/config.json", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields defaults that
// will be written to path on Save.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, pkgerrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, pkgerrors.ConfigLoadFailed(path, err)
	}

	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureDefaults fills zero values left by an older or hand-edited file.
// Only called from LoadFrom before the Config is shared.
func (c *Config) ensureDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := ValidateEndpoint(c.Endpoint); err != nil {
		return err
	}
	if c.TimeoutSeconds < 0 {
		return pkgerrors.ConfigInvalid(fmt.Sprintf("timeout_seconds must not be negative, got %d", c.TimeoutSeconds))
	}
	return nil
}

// ValidateEndpoint reports whether raw is an absolute http(s) URL.
func ValidateEndpoint(raw string) error {
	if raw == "" {
		return pkgerrors.ConfigInvalid("endpoint is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return pkgerrors.ConfigInvalid(fmt.Sprintf("endpoint %q is not a valid URL", raw))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return pkgerrors.ConfigInvalid(fmt.Sprintf("endpoint %q must use http or https", raw))
	}
	if u.Host == "" {
		return pkgerrors.ConfigInvalid(fmt.Sprintf("endpoint %q has no host", raw))
	}
	return nil
}

// ApplyEnv loads a .env file from the working directory if present and
// applies AGENTCHAT_* overrides. Overrides live in memory only; Save writes
// them back only if the caller saves afterwards.
func (c *Config) ApplyEnv() error {
	// A missing .env is the common case
	_ = godotenv.Load()

	c.mu.Lock()
	defer c.mu.Unlock()

	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvTimeoutSeconds); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs < 0 {
			return pkgerrors.ConfigInvalid(fmt.Sprintf("%s must be a non-negative integer, got %q", EnvTimeoutSeconds, v))
		}
		c.TimeoutSeconds = secs
	}
	if v := os.Getenv(EnvTheme); v != "" {
		c.Theme = v
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.filePath
	if path == "" {
		p, err := configPath()
		if err != nil {
			return pkgerrors.ConfigSaveFailed("~/.agentchat/config.json", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return pkgerrors.ConfigSaveFailed(path, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return pkgerrors.ConfigSaveFailed(path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return pkgerrors.ConfigSaveFailed(path, err)
	}
	return nil
}

// FilePath returns the path the config was loaded from
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetEndpoint returns the chat endpoint URL
func (c *Config) GetEndpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Endpoint
}

// SetEndpoint sets the chat endpoint URL
func (c *Config) SetEndpoint(endpoint string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Endpoint = endpoint
}

// GetTimeout returns the per-request timeout, falling back to the default
// when unset.
func (c *Config) GetTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SetTimeoutSeconds sets the per-request timeout in seconds
func (c *Config) SetTimeoutSeconds(secs int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.TimeoutSeconds = secs
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
