package config

import "github.com/bnema/webwindow/internal/domain/entity"

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultWindowName   = "main"
	defaultWindowTitle  = "webwindow"
	defaultWindowURL    = "about:blank"
	defaultWindowWidth  = 1024 // points
	defaultWindowHeight = 768  // points

	defaultMaxConcurrentLoads = 4
)

// DefaultStyle is the style of an ordinary titled window.
var DefaultStyle = []string{"titled", "closable", "miniaturizable", "resizable"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Window: WindowConfig{
			Name:     defaultWindowName,
			Title:    defaultWindowTitle,
			URL:      defaultWindowURL,
			Width:    defaultWindowWidth,
			Height:   defaultWindowHeight,
			Style:    append([]string(nil), DefaultStyle...),
			Category: entity.CategoryWindow.String(),
			Backing:  entity.BackingBuffered.String(),
			Center:   true,
		},
		Content: ContentConfig{
			MaxConcurrentLoads: defaultMaxConcurrentLoads,
			DragRegionPolicy:   DragRegionNoDragVetoes,
		},
		Keybindings: map[string]string{
			"cmdorctrl+w": "close",
			"cmdorctrl+r": "reload",
			"f11":         "toggle-fullscreen",
		},
	}
}
