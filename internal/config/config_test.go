package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultRPCURL, cfg.RPC.URL)
	assert.Equal(t, 2*time.Second, cfg.RPC.RefreshInterval())
	assert.Equal(t, "enter", cfg.Keybinds.ToggleTorrent)
	assert.Equal(t, " ", cfg.Keybinds.Select)
	assert.Len(t, cfg.Tabs, 3)
}

func TestLoadFilesMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFilesMergesInOrder(t *testing.T) {
	dir := t.TempDir()
	system := writeFile(t, dir, "system.toml", `
[rpc]
url = "http://nas:9091/transmission/rpc"
refresh_seconds = 5

[keybinds]
quit = "ctrl+q"
delete = "x"
`)
	user := writeFile(t, dir, "user.toml", `
[keybinds]
delete = "ctrl+d"
filter = ""

[colors]
highlight_background = "#336699"
`)

	cfg, err := LoadFiles(system, user)
	require.NoError(t, err)

	assert.Equal(t, "http://nas:9091/transmission/rpc", cfg.RPC.URL)
	assert.Equal(t, 5, cfg.RPC.RefreshSeconds)
	assert.Equal(t, 10, cfg.RPC.TimeoutSeconds, "unset keys keep defaults")
	assert.Equal(t, "ctrl+q", cfg.Keybinds.Quit)
	assert.Equal(t, "ctrl+d", cfg.Keybinds.Delete, "later files win")
	assert.Equal(t, "", cfg.Keybinds.Filter, "empty string unbinds")
	assert.Equal(t, "j", cfg.Keybinds.NextTorrent)
	assert.Equal(t, "#336699", cfg.Colors.HighlightBackground)
	assert.Equal(t, "black", cfg.Colors.HighlightForeground)
}

func TestLoadFilesTabsReplaceWhole(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.toml", `
[[tabs]]
name = "Seeding"
columns = ["name", "ratio", "upspeed"]
`)
	other := writeFile(t, dir, "other.toml", `
[log]
level = "debug"
`)

	cfg, err := LoadFiles(user, other)
	require.NoError(t, err)

	require.Len(t, cfg.Tabs, 1)
	assert.Equal(t, "Seeding", cfg.Tabs[0].Name)
	assert.Equal(t, []string{"name", "ratio", "upspeed"}, cfg.Tabs[0].Columns)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFilesInvalidTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "invalid = [[[")
	_, err := LoadFiles(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RPC.URL = "ftp://example.com"
	cfg.RPC.RefreshSeconds = 0
	cfg.Log.Level = "loud"
	cfg.Colors.ErrorForeground = "ultraviolet"
	cfg.Tabs = nil

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "rpc.url")
	assert.Contains(t, msg, ErrMsgRefreshSeconds)
	assert.Contains(t, msg, "log.level")
	assert.Contains(t, msg, "colors.error_foreground")
	assert.Contains(t, msg, ErrMsgNoTabs)
}

func TestResolveColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"magenta", "5"},
		{"LightGreen", "10"},
		{"#FF00aa", "#ff00aa"},
		{"200", "200"},
		{"", ""},
		{"reset", ""},
	}
	for _, tt := range tests {
		got, err := ResolveColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ResolveColor("256")
	assert.Error(t, err)
	_, err = ResolveColor("#12")
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	original := DefaultConfig()
	original.Keybinds.Quit = "ctrl+c"
	original.Tabs = []TabConfig{{Name: "Only", Columns: []string{"name"}}}

	require.NoError(t, Save(path, original))

	loaded, err := LoadFiles(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestEntriesOrder(t *testing.T) {
	entries := DefaultKeybinds().Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "quit", entries[0].Name)
	assert.Equal(t, "q", entries[0].Keys)

	names := make(map[string]bool)
	for _, e := range entries {
		assert.False(t, names[e.Name], "duplicate entry %s", e.Name)
		names[e.Name] = true
	}
	assert.True(t, names["switch_tab_10"])
	assert.True(t, names["clear_filter"])
}

func TestPathsUsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	paths, err := Paths("")
	require.NoError(t, err)
	assert.Equal(t, []string{SystemPath, "/tmp/xdg/traxor/config.toml"}, paths)

	paths, err = Paths("/custom.toml")
	require.NoError(t, err)
	assert.Equal(t, "/custom.toml", paths[1])
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileName, "[keybinds]\nquit = \"x\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	require.NoError(t, Watch(ctx, []string{path}, func(cfg *Config, err error) {
		if err == nil {
			changes <- cfg
		}
	}))

	require.NoError(t, os.WriteFile(path, []byte("[keybinds]\nquit = \"ctrl+x\"\n"), 0o644))

	select {
	case cfg := <-changes:
		assert.Equal(t, "ctrl+x", cfg.Keybinds.Quit)
	case <-time.After(3 * time.Second):
		t.Fatal("config change not observed")
	}
}

func TestWatchNoPaths(t *testing.T) {
	err := Watch(context.Background(), nil, func(*Config, error) {})
	assert.Error(t, err)
}
