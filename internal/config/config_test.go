package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps Load from picking up a real user config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, env := range envBindings {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestDefaultFromEnvironment(t *testing.T) {
	t.Setenv("DISPLAY", ":3.0")
	t.Setenv("XAUTHORITY", "/run/user/1000/xauth")

	cfg := Default()
	assert.Equal(t, uint32(3), cfg.X.Display)
	assert.Equal(t, "/run/user/1000/xauth", cfg.X.XAuthority)
}

func TestDefaultWithoutDisplay(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DISPLAY", "")
	t.Setenv("XAUTHORITY", "")

	cfg := Default()
	assert.Equal(t, uint32(0), cfg.X.Display)
	assert.Equal(t, filepath.Join(home, ".Xauthority"), cfg.X.XAuthority)
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "xdotool", cfg.Exec.Xdotool)
	assert.Equal(t, "xwd", cfg.Exec.Xwd)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, 720*time.Hour, cfg.History.Retention)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadSearchPath(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "xdg", "xdo", "xdo.toml"), `
[x]
display = 4
xauthority = "/tmp/auth4"

[exec]
shell = true
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint32(4), cfg.X.Display)
	assert.Equal(t, "/tmp/auth4", cfg.X.XAuthority)
	assert.True(t, cfg.Exec.Shell)
	assert.Equal(t, "xdotool", cfg.Exec.Xdotool)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeConfig(t, path, `
[history]
enabled = true
path = "/tmp/xdo-history.db"
retention = "48h"

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "/tmp/xdo-history.db", cfg.History.Path)
	assert.Equal(t, 48*time.Hour, cfg.History.Retention)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "xdo.toml")
	writeConfig(t, path, "[x]\ndisplay = 1\n")

	t.Setenv("XDO_DISPLAY", "9")
	t.Setenv("XDO_SHELL", "true")
	t.Setenv("XDO_XDOTOOL", "/opt/bin/xdotool")
	t.Setenv("XDO_HISTORY_RETENTION", "1h")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(9), cfg.X.Display)
	assert.True(t, cfg.Exec.Shell)
	assert.Equal(t, "/opt/bin/xdotool", cfg.Exec.Xdotool)
	assert.Equal(t, time.Hour, cfg.History.Retention)
}

func TestLoadDisplayForms(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		file    string
		want    uint32
		wantErr bool
	}{
		{"env number", "1", "", 1, false},
		{"env colon", ":1", "", 1, false},
		{"env screen", ":2.0", "", 2, false},
		{"env host", "localhost:10.0", "", 10, false},
		{"env garbage", ":x", "", 0, true},
		{"file colon", "", "[x]\ndisplay = \":4\"\n", 4, false},
		{"file number", "", "[x]\ndisplay = 6\n", 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "xdo.toml")
			writeConfig(t, path, tt.file)
			if tt.env != "" {
				t.Setenv("XDO_DISPLAY", tt.env)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.X.Display)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err, "explicit config path must exist")

	bad := filepath.Join(dir, "bad.toml")
	writeConfig(t, bad, "[x\ndisplay = 1")
	_, err = Load(bad)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "error reading config file"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty xdotool", func(c *Config) { c.Exec.Xdotool = "" }, "xdotool executable"},
		{"empty xwd", func(c *Config) { c.Exec.Xwd = "" }, "xwd executable"},
		{"negative retention", func(c *Config) { c.History.Retention = -time.Hour }, "retention"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "invalid log level"},
		{"upper level", func(c *Config) { c.Logging.Level = "WARN" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.SetLogLevel("ERROR"))
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Error(t, cfg.SetLogLevel("trace"))
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestString(t *testing.T) {
	cfg := Default()
	cfg.X.Display = 5
	out := cfg.String()
	assert.Contains(t, out, "Display: :5")
	assert.Contains(t, out, "Xdotool: xdotool")
}
