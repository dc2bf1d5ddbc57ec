package config

// Config represents the complete configuration for webwindow.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Window is the main window, opened first.
	Window WindowConfig `mapstructure:"window" yaml:"window" toml:"window"`
	// Windows are additional windows and panels opened after the main one.
	Windows []WindowConfig `mapstructure:"windows" yaml:"windows" toml:"windows"`
	// Content configures the content bridge of every window.
	Content ContentConfig `mapstructure:"content" yaml:"content" toml:"content"`
	// Keybindings maps accelerators (e.g. "cmdorctrl+w") to built-in actions.
	Keybindings map[string]string `mapstructure:"keybindings" yaml:"keybindings" toml:"keybindings"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=console,enum=json"`
}

// WindowConfig describes one window.
type WindowConfig struct {
	Name   string  `mapstructure:"name" yaml:"name" toml:"name"`
	Title  string  `mapstructure:"title" yaml:"title" toml:"title"`
	URL    string  `mapstructure:"url" yaml:"url" toml:"url"`
	X      float64 `mapstructure:"x" yaml:"x" toml:"x"`
	Y      float64 `mapstructure:"y" yaml:"y" toml:"y"`
	Width  float64 `mapstructure:"width" yaml:"width" toml:"width" jsonschema:"minimum=0"`
	Height float64 `mapstructure:"height" yaml:"height" toml:"height" jsonschema:"minimum=0"`
	// Style lists style mask flags: titled, closable, miniaturizable, resizable,
	// utility, nonactivating, unified-toolbar, hud, full-size-content.
	Style    []string `mapstructure:"style" yaml:"style" toml:"style"`
	Category string   `mapstructure:"category" yaml:"category" toml:"category" jsonschema:"enum=window,enum=panel"`
	Backing  string   `mapstructure:"backing" yaml:"backing" toml:"backing" jsonschema:"enum=buffered,enum=retained,enum=nonretained"`
	// Defer creates the window hidden.
	Defer     bool `mapstructure:"defer" yaml:"defer" toml:"defer"`
	Frameless bool `mapstructure:"frameless" yaml:"frameless" toml:"frameless"`
	Center    bool `mapstructure:"center" yaml:"center" toml:"center"`
	// ShowToolbarWhenFullscreen keeps the toolbar visible in fullscreen.
	ShowToolbarWhenFullscreen bool `mapstructure:"show_toolbar_when_fullscreen" yaml:"show_toolbar_when_fullscreen" toml:"show_toolbar_when_fullscreen"`
	// InvisibleTitleBarHeight is the height of the draggable strip at the top
	// of the content area, in points.
	InvisibleTitleBarHeight float64 `mapstructure:"invisible_title_bar_height" yaml:"invisible_title_bar_height" toml:"invisible_title_bar_height" jsonschema:"minimum=0"`
	// Keybindings apply to this window only and take precedence over the
	// application bindings.
	Keybindings map[string]string `mapstructure:"keybindings" yaml:"keybindings" toml:"keybindings"`
}

// DragRegionPolicy names how overlapping drag regions resolve.
type DragRegionPolicy string

const (
	// DragRegionNoDragVetoes lets any no-drag region under the pointer win.
	DragRegionNoDragVetoes DragRegionPolicy = "no-drag-vetoes"
	// DragRegionTopmost uses the last declared region under the pointer.
	DragRegionTopmost DragRegionPolicy = "topmost"
)

// ContentConfig configures scheme handlers and navigation policy.
type ContentConfig struct {
	Schemes []SchemeConfig `mapstructure:"schemes" yaml:"schemes" toml:"schemes"`
	// MaxConcurrentLoads bounds background scheme loads per handler.
	MaxConcurrentLoads int64            `mapstructure:"max_concurrent_loads" yaml:"max_concurrent_loads" toml:"max_concurrent_loads" jsonschema:"minimum=1"`
	DragRegionPolicy   DragRegionPolicy `mapstructure:"drag_region_policy" yaml:"drag_region_policy" toml:"drag_region_policy" jsonschema:"enum=no-drag-vetoes,enum=topmost"`
	Navigation         NavigationConfig `mapstructure:"navigation" yaml:"navigation" toml:"navigation"`
}

// SchemeConfig registers one custom URL scheme. Exactly one source is set.
type SchemeConfig struct {
	Name string `mapstructure:"name" yaml:"name" toml:"name"`
	// Dir serves files from a directory.
	Dir string `mapstructure:"dir" yaml:"dir" toml:"dir"`
	// Archive serves files from a SQLite Archive (sqlar).
	Archive string `mapstructure:"archive" yaml:"archive" toml:"archive"`
	// Pages maps request paths to inline HTML.
	Pages map[string]string `mapstructure:"pages" yaml:"pages" toml:"pages"`
}

// NavigationConfig is the host policy applied to every navigation.
type NavigationConfig struct {
	AllowHosts   []string `mapstructure:"allow_hosts" yaml:"allow_hosts" toml:"allow_hosts"`
	DenyHosts    []string `mapstructure:"deny_hosts" yaml:"deny_hosts" toml:"deny_hosts"`
	DenyPrefixes []string `mapstructure:"deny_prefixes" yaml:"deny_prefixes" toml:"deny_prefixes"`
}

// AllWindows returns the main window followed by the additional windows.
func (c *Config) AllWindows() []WindowConfig {
	out := make([]WindowConfig, 0, 1+len(c.Windows))
	out = append(out, c.Window)
	return append(out, c.Windows...)
}
