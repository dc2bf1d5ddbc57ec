package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/webwindow/internal/application/bridge"
	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/application/window"
	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/logging"
	"github.com/rs/zerolog"
)

// EngineFactory creates the content engine for a new window.
type EngineFactory func(ctx context.Context, id entity.WindowID) (port.ContentEngine, error)

// WindowSpec describes a window to open. Options are already decoded;
// the remaining fields are applied after creation.
type WindowSpec struct {
	Options                   window.Options
	Panel                     bool
	Frameless                 bool
	ShowToolbarWhenFullscreen bool
	InvisibleTitleBarHeight   uint32
	Center                    bool
	URL                       string
	Schemes                   map[string]port.SchemeHandler
}

// WindowManagerConfig wires the manager's collaborators.
type WindowManagerConfig struct {
	Toolkit   port.Toolkit
	Scheduler port.Scheduler
	// Engines creates one engine per window. Nil opens windows without content.
	Engines    EngineFactory
	Decider    port.NavigationDecider
	Callbacks  port.ShellCallbacks
	DragPolicy bridge.DragRegionPolicy
	// Coalescers creates the drag-region coalescer of each bridge. Optional.
	Coalescers  func() port.Coalescer
	KeyBindings *KeyBindings
}

// ManagedWindow pairs a window with its content bridge.
type ManagedWindow struct {
	Window *window.Window
	Bridge *bridge.Bridge
}

// ID returns the window id.
func (mw *ManagedWindow) ID() entity.WindowID { return mw.Window.ID() }

// WindowManager owns every open window of the application. It must be
// used from the UI thread.
type WindowManager struct {
	cfg     WindowManagerConfig
	shell   *window.Shell
	windows map[entity.WindowID]*ManagedWindow
	names   map[string]entity.WindowID
	logger  zerolog.Logger
}

// NewWindowManager creates a manager for cfg.Toolkit.
func NewWindowManager(ctx context.Context, cfg WindowManagerConfig) (*WindowManager, error) {
	if cfg.Toolkit == nil {
		return nil, fmt.Errorf("window manager: toolkit is nil")
	}
	if cfg.Scheduler == nil {
		return nil, fmt.Errorf("window manager: scheduler is nil")
	}
	return &WindowManager{
		cfg:     cfg,
		shell:   window.NewShell(ctx, cfg.Toolkit, cfg.Callbacks.OnWindowEvent),
		windows: make(map[entity.WindowID]*ManagedWindow),
		names:   make(map[string]entity.WindowID),
		logger:  logging.FromContext(ctx).With().Str("component", "window-manager").Logger(),
	}, nil
}

// Open creates a window and its bridge, registers the requested schemes,
// applies chrome preferences and starts the initial load.
func (m *WindowManager) Open(ctx context.Context, spec WindowSpec) (*ManagedWindow, error) {
	name := spec.Options.Name
	if name != "" {
		if _, taken := m.names[name]; taken {
			return nil, &entity.ConfigurationError{Field: "window.name", Reason: fmt.Sprintf("%q already in use", name)}
		}
	}

	create := m.shell.CreateWindow
	if spec.Panel {
		create = m.shell.CreatePanel
	}
	w, err := create(ctx, spec.Options)
	if err != nil {
		return nil, err
	}

	mw, err := m.attach(ctx, w, spec)
	if err != nil {
		w.Close()
		return nil, err
	}

	if spec.ShowToolbarWhenFullscreen {
		w.SetShowToolbarWhenFullscreen(true)
	}
	if spec.InvisibleTitleBarHeight > 0 {
		w.SetInvisibleTitleBarHeight(spec.InvisibleTitleBarHeight)
	}
	if spec.Frameless {
		w.EnterFrameless()
	}
	if spec.Center {
		w.Center()
	}
	if !spec.Options.Defer {
		w.Show()
	}

	if spec.URL != "" {
		if err := mw.Bridge.Load(ctx, spec.URL); err != nil {
			m.logger.Warn().Err(err).Uint32("window_id", uint32(w.ID())).Msg("initial load failed")
		}
	}
	return mw, nil
}

func (m *WindowManager) attach(ctx context.Context, w *window.Window, spec WindowSpec) (*ManagedWindow, error) {
	var engine port.ContentEngine
	if m.cfg.Engines != nil {
		var err error
		if engine, err = m.cfg.Engines(ctx, w.ID()); err != nil {
			return nil, fmt.Errorf("create content engine: %w", err)
		}
	}

	var coalescer port.Coalescer
	if m.cfg.Coalescers != nil {
		coalescer = m.cfg.Coalescers()
	}

	b, err := bridge.New(ctx, w.ID(), bridge.Options{
		Scheduler:  m.cfg.Scheduler,
		Engine:     engine,
		Window:     w,
		Decider:    m.cfg.Decider,
		Callbacks:  m.cfg.Callbacks,
		DragPolicy: m.cfg.DragPolicy,
		Coalescer:  coalescer,
	})
	if err != nil {
		if engine != nil {
			engine.Close()
		}
		return nil, err
	}

	for _, scheme := range entity.SortedSchemes(spec.Schemes) {
		if err := b.RegisterSchemeHandler(scheme, spec.Schemes[scheme]); err != nil {
			b.Teardown()
			return nil, err
		}
	}

	mw := &ManagedWindow{Window: w, Bridge: b}
	id := w.ID()
	m.windows[id] = mw
	if name := w.Name(); name != "" {
		m.names[name] = id
	}

	// Hooks run in reverse: the bridge stops its scheme tasks before the
	// window is forgotten.
	w.OnTeardown(func() { m.forget(id) })
	w.OnTeardown(b.Teardown)
	w.SetDragHitTester(b)
	if m.cfg.KeyBindings != nil {
		keys := m.cfg.KeyBindings
		w.SetKeyHandler(func(ev entity.KeyEvent) bool {
			return keys.Dispatch(ctx, mw, ev)
		})
	}
	return mw, nil
}

func (m *WindowManager) forget(id entity.WindowID) {
	mw, ok := m.windows[id]
	if !ok {
		return
	}
	delete(m.windows, id)
	if name := mw.Window.Name(); name != "" {
		delete(m.names, name)
	}
	if m.cfg.KeyBindings != nil {
		m.cfg.KeyBindings.UnbindWindow(id)
	}
}

// Window looks a window up by id.
func (m *WindowManager) Window(id entity.WindowID) (*ManagedWindow, bool) {
	mw, ok := m.windows[id]
	return mw, ok
}

// ByName looks a window up by its creation name.
func (m *WindowManager) ByName(name string) (*ManagedWindow, bool) {
	id, ok := m.names[name]
	if !ok {
		return nil, false
	}
	return m.Window(id)
}

// Windows returns the open windows ordered by id.
func (m *WindowManager) Windows() []*ManagedWindow {
	out := make([]*ManagedWindow, 0, len(m.windows))
	for _, mw := range m.windows {
		out = append(out, mw)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Len returns the number of open windows.
func (m *WindowManager) Len() int { return len(m.windows) }

// Close closes the window with id.
func (m *WindowManager) Close(id entity.WindowID) error {
	mw, ok := m.windows[id]
	if !ok {
		return fmt.Errorf("window %d: %w", id, entity.ErrWindowClosed)
	}
	mw.Window.Close()
	return nil
}

// CloseAll closes every open window, newest first.
func (m *WindowManager) CloseAll() {
	windows := m.Windows()
	for i := len(windows) - 1; i >= 0; i-- {
		windows[i].Window.Close()
	}
}

// SetDecider replaces the navigation policy of every current and future window.
func (m *WindowManager) SetDecider(d port.NavigationDecider) {
	m.cfg.Decider = d
	for _, mw := range m.windows {
		mw.Bridge.SetDecider(d)
	}
}
