// Package config loads webwindow configuration with viper: a TOML file, the
// WEBWINDOW_ environment and built-in defaults, with live reload.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	appName        = "webwindow"
	configFileName = "config.toml"
	envPrefix      = "WEBWINDOW"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	explicit  bool
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager. An empty configFile searches
// the XDG config directory and the current directory for config.toml.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "WEBWINDOW_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WEBWINDOW_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "WEBWINDOW_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind WEBWINDOW_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:    v,
		explicit: configFile != "",
	}, nil
}

// Load reads the configuration file and environment. A missing file is only
// an error when it was named explicitly.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !m.explicit && errors.As(err, &notFound) {
		return nil
	}
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile = configFileName
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// Normalize applies the loader's case folding and fallbacks to a config
// built outside the Manager.
func Normalize(cfg *Config) { normalizeConfig(cfg) }

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	normalizeWindow(&config.Window)
	for i := range config.Windows {
		normalizeWindow(&config.Windows[i])
	}

	switch DragRegionPolicy(strings.ToLower(string(config.Content.DragRegionPolicy))) {
	case DragRegionTopmost:
		config.Content.DragRegionPolicy = DragRegionTopmost
	default:
		config.Content.DragRegionPolicy = DragRegionNoDragVetoes
	}
	if config.Content.MaxConcurrentLoads <= 0 {
		config.Content.MaxConcurrentLoads = defaultMaxConcurrentLoads
	}
	for i := range config.Content.Schemes {
		s := &config.Content.Schemes[i]
		s.Name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s.Name)), "://")
	}
}

func normalizeWindow(w *WindowConfig) {
	w.Category = strings.ToLower(strings.TrimSpace(w.Category))
	if w.Category == "" {
		w.Category = "window"
	}
	if w.Style == nil {
		w.Style = append([]string(nil), DefaultStyle...)
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// WriteDefault writes the default configuration to path without
// overwriting an existing file.
func (m *Manager) WriteDefault(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	m.setDefaults()
	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.setWindowDefaults(defaults)

	m.viper.SetDefault("content.max_concurrent_loads", defaults.Content.MaxConcurrentLoads)
	m.viper.SetDefault("content.drag_region_policy", string(defaults.Content.DragRegionPolicy))

	m.viper.SetDefault("keybindings", defaults.Keybindings)
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	w := defaults.Window
	m.viper.SetDefault("window.name", w.Name)
	m.viper.SetDefault("window.title", w.Title)
	m.viper.SetDefault("window.url", w.URL)
	m.viper.SetDefault("window.width", w.Width)
	m.viper.SetDefault("window.height", w.Height)
	m.viper.SetDefault("window.style", w.Style)
	m.viper.SetDefault("window.category", w.Category)
	m.viper.SetDefault("window.backing", w.Backing)
	m.viper.SetDefault("window.center", w.Center)
}

// GetConfigDir returns $XDG_CONFIG_HOME/webwindow (default ~/.config/webwindow).
func GetConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// GetConfigFile returns the default configuration file path.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
