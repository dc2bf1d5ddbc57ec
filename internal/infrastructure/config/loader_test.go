package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[logging]
level = "debug"

[window]
name = "main"
title = "Demo"
url = "app://localhost/index.html"
width = 800
height = 600
frameless = true
invisible_title_bar_height = 28

[window.keybindings]
"ctrl+shift+c" = "center"

[[windows]]
name = "inspector"
category = "panel"
width = 300
height = 400
style = ["titled", "closable", "utility"]

[content]
max_concurrent_loads = 2
drag_region_policy = "topmost"

[[content.schemes]]
name = "App://"
dir = "./web"

[[content.schemes]]
name = "pages"
[content.schemes.pages]
"/" = "<h1>home</h1>"

[content.navigation]
deny_hosts = ["ads.example.com"]

[keybindings]
"cmdorctrl+q" = "close"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), filePerm))
	return path
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, "about:blank", mgr.viper.GetString("window.url"))
	assert.Equal(t, int64(defaultMaxConcurrentLoads), mgr.viper.GetInt64("content.max_concurrent_loads"))
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	mgr, err := NewManager("")
	require.NoError(t, err)

	require.NoError(t, mgr.Load())
	cfg := mgr.Get()

	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "main", cfg.Window.Name)
	assert.Equal(t, float64(defaultWindowWidth), cfg.Window.Width)
	assert.Equal(t, DefaultStyle, cfg.Window.Style)
	assert.True(t, cfg.Window.Center)
	assert.Equal(t, DragRegionNoDragVetoes, cfg.Content.DragRegionPolicy)
	assert.Equal(t, "toggle-fullscreen", cfg.Keybindings["f11"])
}

func TestLoad_File(t *testing.T) {
	mgr, err := NewManager(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	cfg := mgr.Get()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "Demo", cfg.Window.Title)
	assert.True(t, cfg.Window.Frameless)
	assert.Equal(t, 28.0, cfg.Window.InvisibleTitleBarHeight)
	assert.Equal(t, "center", cfg.Window.Keybindings["ctrl+shift+c"])
	// Unset fields of the main window fall back to defaults.
	assert.Equal(t, "buffered", cfg.Window.Backing)

	require.Len(t, cfg.Windows, 1)
	assert.Equal(t, "panel", cfg.Windows[0].Category)
	assert.Equal(t, []string{"titled", "closable", "utility"}, cfg.Windows[0].Style)
	assert.Len(t, cfg.AllWindows(), 2)

	assert.Equal(t, int64(2), cfg.Content.MaxConcurrentLoads)
	assert.Equal(t, DragRegionTopmost, cfg.Content.DragRegionPolicy)
	require.Len(t, cfg.Content.Schemes, 2)
	assert.Equal(t, "app", cfg.Content.Schemes[0].Name)
	assert.Equal(t, "<h1>home</h1>", cfg.Content.Schemes[1].Pages["/"])
	assert.Equal(t, []string{"ads.example.com"}, cfg.Content.Navigation.DenyHosts)

	// Application bindings merge over the defaults.
	assert.Equal(t, "close", cfg.Keybindings["cmdorctrl+q"])
	assert.Equal(t, "toggle-fullscreen", cfg.Keybindings["f11"])
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	mgr, err := NewManager(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("WEBWINDOW_LOG_LEVEL", "error")
	t.Setenv("WEBWINDOW_WINDOW_TITLE", "From env")

	mgr, err := NewManager(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "error", mgr.Get().Logging.Level)
	assert.Equal(t, "From env", mgr.Get().Window.Title)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "negative size",
			body:    "[window]\nwidth = -1\n",
			wantMsg: "must not be negative",
		},
		{
			name:    "unknown style flag",
			body:    "[window]\nstyle = [\"titled\", \"sparkly\"]\n",
			wantMsg: "unknown flag sparkly",
		},
		{
			name:    "unknown category",
			body:    "[window]\ncategory = \"sheet\"\n",
			wantMsg: "category must be window or panel",
		},
		{
			name:    "negative title bar",
			body:    "[window]\ninvisible_title_bar_height = -4\n",
			wantMsg: "invisible_title_bar_height must be non-negative",
		},
		{
			name:    "duplicate window names",
			body:    "[window]\nname = \"a\"\n[[windows]]\nname = \"a\"\n",
			wantMsg: "is used by another window",
		},
		{
			name:    "scheme with two sources",
			body:    "[[content.schemes]]\nname = \"app\"\ndir = \"a\"\narchive = \"b.sqlar\"\n",
			wantMsg: "exactly one of dir, archive or pages",
		},
		{
			name:    "scheme without name",
			body:    "[[content.schemes]]\ndir = \"a\"\n",
			wantMsg: "name is required",
		},
		{
			name:    "bad logging format",
			body:    "[logging]\nformat = \"xml\"\n",
			wantMsg: "logging.format",
		},
		{
			name:    "bad accelerator",
			body:    "[keybindings]\n\"ctrl+shift\" = \"close\"\n",
			wantMsg: "keybindings",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, err := NewManager(writeConfig(t, tt.body))
			require.NoError(t, err)

			err = mgr.Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	mgr, err := NewManager(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Window.Title = "changed"

	assert.Equal(t, "Demo", mgr.Get().Window.Title)
}

func TestWriteDefault_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	writer, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, writer.WriteDefault(path))
	assert.FileExists(t, path)

	// Never overwrites.
	require.Error(t, writer.WriteDefault(path))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	assert.Equal(t, DefaultConfig().Window.Title, mgr.Get().Window.Title)
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	path := writeConfig(t, "[window]\ntitle = \"before\"\n")
	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var seen atomic.Value
	mgr.OnConfigChange(func(cfg *Config) { seen.Store(cfg.Window.Title) })
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch())

	require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"after\"\n"), filePerm))

	require.Eventually(t, func() bool {
		v, _ := seen.Load().(string)
		return v == "after"
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "after", mgr.Get().Window.Title)
}

func TestWatch_KeepsConfigOnInvalidChange(t *testing.T) {
	path := writeConfig(t, "[window]\ntitle = \"good\"\n")
	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	require.NoError(t, mgr.Watch())

	var calls atomic.Int32
	mgr.OnConfigChange(func(*Config) { calls.Add(1) })
	require.NoError(t, os.WriteFile(path, []byte("[window]\nwidth = -5\n"), filePerm))

	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, calls.Load())
	assert.Equal(t, "good", mgr.Get().Window.Title)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"invisible_title_bar_height"`)
	assert.Contains(t, s, `"max_concurrent_loads"`)
	assert.Contains(t, s, `"topmost"`)
	assert.Contains(t, s, "webwindow configuration")

	path := filepath.Join(t.TempDir(), "config.schema.json")
	require.NoError(t, WriteSchemaFile(path))
	assert.FileExists(t, path)
}
