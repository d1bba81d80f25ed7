// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/actionsum/xdotool/pkg/inspect"
)

// Config holds all application configuration
type Config struct {
	// X session addressed by every invocation
	X XConfig `mapstructure:"x"`

	// How the external tools are launched
	Exec ExecConfig `mapstructure:"exec"`

	// Invocation journal
	History HistoryConfig `mapstructure:"history"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// XConfig identifies the X session
type XConfig struct {
	Display    uint32 `mapstructure:"display"`    // Display number, DISPLAY=:<n>
	XAuthority string `mapstructure:"xauthority"` // Path to the Xauthority file
}

// ExecConfig controls process launching
type ExecConfig struct {
	Shell   bool   `mapstructure:"shell"`   // Run through "sh -c" instead of argv
	Xdotool string `mapstructure:"xdotool"` // xdotool executable
	Xwd     string `mapstructure:"xwd"`     // xwd executable
}

// HistoryConfig controls the invocation journal
type HistoryConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Path      string        `mapstructure:"path"`      // Empty means ~/.config/xdo/history.db
	Retention time.Duration `mapstructure:"retention"` // Entries older than this are pruned
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// envBindings maps config keys to the environment variables overriding them
var envBindings = map[string]string{
	"x.display":         "XDO_DISPLAY",
	"x.xauthority":      "XDO_XAUTHORITY",
	"exec.shell":        "XDO_SHELL",
	"exec.xdotool":      "XDO_XDOTOOL",
	"exec.xwd":          "XDO_XWD",
	"history.enabled":   "XDO_HISTORY",
	"history.path":      "XDO_HISTORY_PATH",
	"history.retention": "XDO_HISTORY_RETENTION",
	"logging.level":     "XDO_LOG_LEVEL",
}

var logLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Default returns a Config with sensible default values
func Default() *Config {
	var display uint32
	if n, err := inspect.ParseDisplay(os.Getenv("DISPLAY")); err == nil {
		display = n
	}

	return &Config{
		X: XConfig{
			Display:    display,
			XAuthority: defaultXAuthority(),
		},
		Exec: ExecConfig{
			Shell:   false,
			Xdotool: "xdotool",
			Xwd:     "xwd",
		},
		History: HistoryConfig{
			Enabled:   false,
			Path:      "",
			Retention: 30 * 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func defaultXAuthority() string {
	if auth := os.Getenv("XAUTHORITY"); auth != "" {
		return auth
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".Xauthority")
}

// Load reads defaults, then the config file, then environment variables.
// An empty path searches $XDG_CONFIG_HOME/xdo, ~/.config/xdo and the current
// directory for xdo.toml; a missing file there is not an error. An explicit
// path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("xdo")
	v.SetConfigType("toml")

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
	}

	def := Default()
	v.SetDefault("x.display", def.X.Display)
	v.SetDefault("x.xauthority", def.X.XAuthority)
	v.SetDefault("exec.shell", def.Exec.Shell)
	v.SetDefault("exec.xdotool", def.Exec.Xdotool)
	v.SetDefault("exec.xwd", def.Exec.Xwd)
	v.SetDefault("history.enabled", def.History.Enabled)
	v.SetDefault("history.path", def.History.Path)
	v.SetDefault("history.retention", def.History.Retention)
	v.SetDefault("logging.level", def.Logging.Level)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// XDO_DISPLAY and the file may use the DISPLAY form, e.g. ":1" or ":1.0".
	if raw, ok := v.Get("x.display").(string); ok && strings.Contains(raw, ":") {
		n, err := inspect.ParseDisplay(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid x.display %q: %w", raw, err)
		}
		v.Set("x.display", n)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return cfg, nil
}

func searchPaths() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "xdo"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "xdo"))
	}
	return append(dirs, ".")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Exec.Xdotool == "" {
		return fmt.Errorf("xdotool executable cannot be empty")
	}

	if c.Exec.Xwd == "" {
		return fmt.Errorf("xwd executable cannot be empty")
	}

	if c.History.Retention < 0 {
		return fmt.Errorf("history retention cannot be negative")
	}

	if _, err := log.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		return fmt.Errorf("invalid log level %q (valid: %s)", c.Logging.Level, strings.Join(logLevels, ", "))
	}

	return nil
}

// SetDisplay sets the display from "7", ":7" or a full DISPLAY value like "host:7.0"
func (c *Config) SetDisplay(value string) error {
	if !strings.Contains(value, ":") {
		value = ":" + value
	}
	n, err := inspect.ParseDisplay(value)
	if err != nil {
		return err
	}
	c.X.Display = n
	return nil
}

// SetLogLevel sets the log level with validation
func (c *Config) SetLogLevel(level string) error {
	if _, err := log.ParseLevel(strings.ToLower(level)); err != nil {
		return fmt.Errorf("invalid log level %q (valid: %s)", level, strings.Join(logLevels, ", "))
	}
	c.Logging.Level = strings.ToLower(level)
	return nil
}

// DisplayString returns the DISPLAY value handed to child processes
func (c *Config) DisplayString() string {
	return fmt.Sprintf(":%d", c.X.Display)
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(`Configuration:
  X:
    Display: %s
    XAuthority: %s
  Exec:
    Shell: %v
    Xdotool: %s
    Xwd: %s
  History:
    Enabled: %v
    Path: %s
    Retention: %v
  Logging:
    Level: %s`,
		c.DisplayString(),
		c.X.XAuthority,
		c.Exec.Shell,
		c.Exec.Xdotool,
		c.Exec.Xwd,
		c.History.Enabled,
		c.History.Path,
		c.History.Retention,
		c.Logging.Level,
	)
}
