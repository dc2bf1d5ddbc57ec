// Package cli holds the dependencies shared by the CLI commands.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/webwindow/internal/cli/styles"
	"github.com/bnema/webwindow/internal/domain/build"
	"github.com/bnema/webwindow/internal/infrastructure/config"
	"github.com/bnema/webwindow/internal/logging"
)

// Options are the global flags.
type Options struct {
	ConfigFile string
	// LogLevel overrides the configured level when set.
	LogLevel string
	// LogOutput defaults to stderr.
	LogOutput io.Writer
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Configs   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Logger    zerolog.Logger

	ctx   context.Context
	runID string
}

// NewApp loads the configuration and builds the logger from it.
func NewApp(opts Options) (*App, error) {
	manager, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := manager.Load(); err != nil {
		return nil, err
	}
	cfg := manager.Get()

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Logging.Format,
		TimeFormat: time.TimeOnly,
		Output:     opts.LogOutput,
	})

	runID := logging.GenerateRunID()
	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithRunID(ctx, runID)

	return &App{
		Config:  cfg,
		Configs: manager,
		Theme:   styles.NewTheme(),
		Logger:  *logging.FromContext(ctx),
		ctx:     ctx,
		runID:   runID,
	}, nil
}

// Context returns the base context carrying the logger.
func (a *App) Context() context.Context { return a.ctx }

// RunID identifies this invocation in logs.
func (a *App) RunID() string { return a.runID }

// ConfigFile returns the path the configuration was read from, or the
// default location.
func (a *App) ConfigFile() string {
	if path := a.Configs.GetConfigFile(); path != "" {
		return path
	}
	path, err := config.GetConfigFile()
	if err != nil {
		return ""
	}
	return path
}

// ConfigExists reports whether the configuration file is present.
func (a *App) ConfigExists() bool {
	path := a.ConfigFile()
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Close releases resources.
func (a *App) Close() error {
	return nil
}
