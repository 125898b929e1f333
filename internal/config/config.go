package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
)

// FileName is the config file name inside the traxor config directory
const FileName = "config.toml"

// SystemPath is the system-wide config, read before the user's
const SystemPath = "/etc/xdg/traxor/config.toml"

// DefaultRPCURL is where transmission-daemon listens by default
const DefaultRPCURL = "http://localhost:9091/transmission/rpc"

// Config represents the application configuration
type Config struct {
	RPC      RPCConfig      `toml:"rpc"`
	Keybinds KeybindsConfig `toml:"keybinds"`
	Colors   ColorsConfig   `toml:"colors"`
	Tabs     []TabConfig    `toml:"tabs"`
	Log      LogConfig      `toml:"log"`
}

// RPCConfig describes how to reach the daemon
type RPCConfig struct {
	URL            string `toml:"url"`
	Username       string `toml:"username,omitempty"`
	Password       string `toml:"password,omitempty"`
	RefreshSeconds int    `toml:"refresh_seconds"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// RefreshInterval returns the poll interval
func (c RPCConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

// Timeout returns the per-request timeout, zero meaning none
func (c RPCConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TabConfig is a named list of column names
type TabConfig struct {
	Name    string   `toml:"name"`
	Columns []string `toml:"columns"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `toml:"level"`
	Dir   string `toml:"dir,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		RPC: RPCConfig{
			URL:            DefaultRPCURL,
			RefreshSeconds: 2,
			TimeoutSeconds: 10,
		},
		Keybinds: DefaultKeybinds(),
		Colors:   DefaultColors(),
		Tabs: []TabConfig{
			{Name: "All", Columns: []string{"status", "eta", "progress", "size", "downspeed", "upspeed", "ratio", "name"}},
			{Name: "Active", Columns: []string{"progress", "downspeed", "upspeed", "peers", "eta", "name"}},
			{Name: "Downloading", Columns: []string{"size", "left", "progress", "eta", "downspeed", "path", "name"}},
		},
		Log: LogConfig{Level: "warn"},
	}
}

// UserPath returns the per-user config path, honouring XDG_CONFIG_HOME
func UserPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "traxor", FileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "traxor", FileName), nil
}

// Paths returns the files Load reads, lowest precedence first. An explicit
// user path replaces the default user location.
func Paths(userPath string) ([]string, error) {
	if userPath == "" {
		p, err := UserPath()
		if err != nil {
			return nil, err
		}
		userPath = p
	}
	return []string{SystemPath, userPath}, nil
}

// Load reads the system config and then the user config over the defaults
func Load(userPath string) (*Config, error) {
	paths, err := Paths(userPath)
	if err != nil {
		return nil, err
	}
	return LoadFiles(paths...)
}

// LoadFiles applies each existing file over the defaults in order. A file
// only overrides the keys it sets, except that a tabs list replaces the
// previous list whole. Missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	cfg := DefaultConfig()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := cfg.merge(data); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		log.WithField("path", path).Debug("config: loaded")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(data []byte) error {
	var probe struct {
		Tabs []TabConfig `toml:"tabs"`
	}
	if err := toml.Unmarshal(data, &probe); err != nil {
		return err
	}

	tabs := c.Tabs
	c.Tabs = nil
	if err := toml.Unmarshal(data, c); err != nil {
		c.Tabs = tabs
		return err
	}
	if probe.Tabs == nil {
		c.Tabs = tabs
	}
	return nil
}

// Validation error messages
const (
	ErrMsgEmptyURL       = "rpc.url must not be empty"
	ErrMsgRefreshSeconds = "rpc.refresh_seconds must be positive"
	ErrMsgTimeoutSeconds = "rpc.timeout_seconds must not be negative"
	ErrMsgNoTabs         = "at least one tab is required"
)

// Validate checks the config for values the application cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.RPC.URL == "" {
		errs = append(errs, errors.New(ErrMsgEmptyURL))
	} else if u, err := url.Parse(c.RPC.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("rpc.url %q is not an http(s) URL", c.RPC.URL))
	}
	if c.RPC.RefreshSeconds <= 0 {
		errs = append(errs, errors.New(ErrMsgRefreshSeconds))
	}
	if c.RPC.TimeoutSeconds < 0 {
		errs = append(errs, errors.New(ErrMsgTimeoutSeconds))
	}

	if len(c.Tabs) == 0 {
		errs = append(errs, errors.New(ErrMsgNoTabs))
	}
	for i, tab := range c.Tabs {
		if strings.TrimSpace(tab.Name) == "" {
			errs = append(errs, fmt.Errorf("tabs[%d]: name must not be empty", i))
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	errs = append(errs, c.Colors.validate()...)

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Save writes cfg to path as TOML, creating the directory if needed
func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Marshal renders cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
