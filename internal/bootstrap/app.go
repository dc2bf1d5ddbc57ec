// Package bootstrap turns a loaded configuration into running windows.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/webwindow/internal/application/bridge"
	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/application/usecase"
	"github.com/bnema/webwindow/internal/application/window"
	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/infrastructure/config"
	"github.com/bnema/webwindow/internal/infrastructure/mainloop"
	"github.com/bnema/webwindow/internal/logging"
)

// Options are the platform pieces the application runs on.
type Options struct {
	Toolkit   port.Toolkit
	Engines   usecase.EngineFactory
	Queue     *mainloop.Queue
	Callbacks port.ShellCallbacks
}

// App is a configured set of windows sharing one navigation policy, one
// key binding table and one set of scheme handlers.
type App struct {
	Queue   *mainloop.Queue
	Manager *usecase.WindowManager
	Keys    *usecase.KeyBindings
	Policy  *usecase.HostPolicy
	Schemes *Schemes
}

// New wires an App from cfg. Windows are not opened until OpenWindows.
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	if opts.Queue == nil {
		return nil, errors.New("bootstrap: queue is nil")
	}

	schemes, err := OpenSchemes(ctx, cfg.Content)
	if err != nil {
		return nil, err
	}

	keys := usecase.NewKeyBindings(ctx)
	if err := keys.ReplaceActions(cfg.Keybindings); err != nil {
		_ = schemes.Close()
		return nil, fmt.Errorf("keybindings: %w", err)
	}
	policy := usecase.NewHostPolicy(ctx, HostPolicyConfig(cfg.Content.Navigation))

	queue := opts.Queue
	manager, err := usecase.NewWindowManager(ctx, usecase.WindowManagerConfig{
		Toolkit:     opts.Toolkit,
		Scheduler:   queue,
		Engines:     opts.Engines,
		Decider:     policy,
		Callbacks:   opts.Callbacks,
		DragPolicy:  DragPolicy(cfg.Content.DragRegionPolicy),
		Coalescers:  func() port.Coalescer { return mainloop.NewCoalescer(queue) },
		KeyBindings: keys,
	})
	if err != nil {
		_ = schemes.Close()
		return nil, err
	}

	return &App{
		Queue:   queue,
		Manager: manager,
		Keys:    keys,
		Policy:  policy,
		Schemes: schemes,
	}, nil
}

// OpenWindows opens every configured window in order. It must run on the
// UI thread. On failure the windows opened so far stay open.
func (a *App) OpenWindows(ctx context.Context, cfg *config.Config) ([]*usecase.ManagedWindow, error) {
	var opened []*usecase.ManagedWindow
	for _, wc := range cfg.AllWindows() {
		mw, err := a.OpenWindow(ctx, wc)
		if err != nil {
			return opened, err
		}
		opened = append(opened, mw)
	}
	return opened, nil
}

// OpenWindow opens one window with the shared scheme handlers and binds its
// per-window keys.
func (a *App) OpenWindow(ctx context.Context, wc config.WindowConfig) (*usecase.ManagedWindow, error) {
	spec, err := WindowSpec(wc)
	if err != nil {
		return nil, err
	}
	spec.Schemes = a.Schemes.Handlers

	mw, err := a.Manager.Open(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("open window %q: %w", wc.Name, err)
	}
	for accel, action := range wc.Keybindings {
		fn, err := usecase.BuiltinAction(usecase.Action(action))
		if err == nil {
			err = a.Keys.BindWindow(mw.ID(), accel, fn)
		}
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("accelerator", accel).Msg("window key binding skipped")
		}
	}
	return mw, nil
}

// Apply re-applies the live-reloadable parts of cfg: navigation policy and
// application key bindings. Window chrome and schemes need a restart.
func (a *App) Apply(ctx context.Context, cfg *config.Config) error {
	a.Policy.Update(HostPolicyConfig(cfg.Content.Navigation))
	if err := a.Keys.ReplaceActions(cfg.Keybindings); err != nil {
		return fmt.Errorf("keybindings: %w", err)
	}
	logging.FromContext(ctx).Info().Int("bindings", len(cfg.Keybindings)).Msg("configuration re-applied")
	return nil
}

// Close closes every window, then waits for scheme loads and releases
// archives.
func (a *App) Close() error {
	a.Manager.CloseAll()
	return a.Schemes.Close()
}

// WindowSpec converts a window configuration into a manager spec.
func WindowSpec(wc config.WindowConfig) (usecase.WindowSpec, error) {
	mask, err := entity.ParseStyleMask(wc.Style)
	if err != nil {
		return usecase.WindowSpec{}, err
	}
	backing, err := entity.ParseBackingMode(wc.Backing)
	if err != nil {
		return usecase.WindowSpec{}, err
	}
	if wc.InvisibleTitleBarHeight < 0 {
		return usecase.WindowSpec{}, &entity.ConfigurationError{Field: "invisible_title_bar_height", Reason: "must be non-negative"}
	}
	return usecase.WindowSpec{
		Options: window.Options{
			Name:      wc.Name,
			Title:     wc.Title,
			Geometry:  entity.NewRect(wc.X, wc.Y, wc.Width, wc.Height),
			StyleMask: mask,
			Backing:   backing,
			Defer:     wc.Defer,
		},
		Panel:                     wc.Category == entity.CategoryPanel.String(),
		Frameless:                 wc.Frameless,
		ShowToolbarWhenFullscreen: wc.ShowToolbarWhenFullscreen,
		InvisibleTitleBarHeight:   uint32(wc.InvisibleTitleBarHeight),
		Center:                    wc.Center,
		URL:                       wc.URL,
	}, nil
}

// HostPolicyConfig converts the navigation section.
func HostPolicyConfig(nav config.NavigationConfig) usecase.HostPolicyConfig {
	return usecase.HostPolicyConfig{
		AllowHosts:   nav.AllowHosts,
		DenyHosts:    nav.DenyHosts,
		DenyPrefixes: nav.DenyPrefixes,
	}
}

// DragPolicy maps the configured policy name to its implementation.
func DragPolicy(p config.DragRegionPolicy) bridge.DragRegionPolicy {
	if p == config.DragRegionTopmost {
		return bridge.TopmostDragRegionPolicy
	}
	return bridge.DefaultDragRegionPolicy
}
