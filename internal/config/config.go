package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/netwaves/internal/playlist"
)

const (
	DefaultBaseURL           = "http://localhost:3000"
	DefaultTimeoutSeconds    = 10
	DefaultRequestsPerSecond = 5.0
	DefaultRequestTTLSeconds = 30
	DefaultWorkers           = 4
	DefaultLogLevel          = "info"
)

type Config struct {
	// NeteaseCloudMusicApi compatible proxy
	API APIConfig `koanf:"api"`

	Network       NetworkConfig       `koanf:"network"`
	Playback      PlaybackConfig      `koanf:"playback"`
	Notifications NotificationsConfig `koanf:"notifications"`
	Log           LogConfig           `koanf:"log"`
	State         StateConfig         `koanf:"state"`
	UI            UIConfig            `koanf:"ui"`
}

// APIConfig holds the metadata API settings.
type APIConfig struct {
	BaseURL           string  `koanf:"base_url"`            // e.g., "http://localhost:3000"
	TimeoutSeconds    int     `koanf:"timeout_seconds"`     // per request (default: 10)
	RequestsPerSecond float64 `koanf:"requests_per_second"` // client-side limit (default: 5)
}

// NetworkConfig holds request correlation and worker settings.
type NetworkConfig struct {
	RequestTTLSeconds int `koanf:"request_ttl_seconds"` // pending request lifetime (default: 30)
	Workers           int `koanf:"workers"`             // concurrent background calls (default: 4)
}

// PlaybackConfig holds the initial playback settings.
type PlaybackConfig struct {
	Mode string `koanf:"mode"` // "single", "single-loop", "sequential", "loop-all", "shuffle"
}

// NotificationsConfig toggles desktop notifications.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/netwaves/netwaves.log
}

// StateConfig holds persistence settings.
type StateConfig struct {
	Path string `koanf:"path"` // default: $XDG_DATA_HOME/netwaves/state.db
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none" (default)
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given files in order (last wins), skipping missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.API.BaseURL = strings.TrimSuffix(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.API.RequestsPerSecond <= 0 {
		c.API.RequestsPerSecond = DefaultRequestsPerSecond
	}

	if c.Network.RequestTTLSeconds <= 0 {
		c.Network.RequestTTLSeconds = DefaultRequestTTLSeconds
	}
	if c.Network.Workers <= 0 {
		c.Network.Workers = DefaultWorkers
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}

	// Expand ~ in file paths
	c.Log.File = expandPath(c.Log.File)
	c.State.Path = expandPath(c.State.Path)
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/netwaves/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "netwaves", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Timeout returns the per-request API timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// RequestTTL returns how long a pending network request may wait for its response.
func (c *Config) RequestTTL() time.Duration {
	return time.Duration(c.Network.RequestTTLSeconds) * time.Second
}

// PlaybackMode returns the configured initial mode, sequential when unset or invalid.
func (c *Config) PlaybackMode() playlist.Mode {
	if c.Playback.Mode == "" {
		return playlist.ModeSequential
	}
	mode, err := playlist.ParseMode(c.Playback.Mode)
	if err != nil {
		return playlist.ModeSequential
	}
	return mode
}

// NotificationsEnabled returns true unless notifications are explicitly disabled.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}
