// Package bridge implements the content bridge: the single delegate object
// between a window's embedded content engine and the application shell.
//
// It serves custom resource schemes, gates navigations, delivers script
// messages, mediates drag-and-drop and reconciles content-declared drag
// regions with the window shell. A Bridge is confined to the UI thread;
// background scheme work re-enters it only through the scheduler.
package bridge

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/logging"
	"github.com/rs/zerolog"
)

// builtinSchemes are loaded by the engine itself and cannot be overridden.
var builtinSchemes = map[string]struct{}{
	"http":       {},
	"https":      {},
	"about":      {},
	"data":       {},
	"blob":       {},
	"file":       {},
	"javascript": {},
}

var schemeNamePattern = regexp.MustCompile(`^[a-z][a-z0-9+.\-]*$`)

// IsBuiltinScheme reports whether scheme is handled by the engine.
func IsBuiltinScheme(scheme string) bool {
	_, ok := builtinSchemes[strings.ToLower(scheme)]
	return ok
}

// Options configure a Bridge.
type Options struct {
	// Scheduler posts work onto the UI thread. Required.
	Scheduler port.Scheduler
	// Engine is the content engine the bridge is installed on. Optional.
	Engine port.ContentEngine
	// Window is the owning window. Optional.
	Window port.WindowControl
	// Decider is the navigation policy. Nil allows everything.
	Decider port.NavigationDecider
	// Callbacks are the outbound notifications.
	Callbacks port.ShellCallbacks
	// DragPolicy resolves draggable regions. Nil uses DefaultDragRegionPolicy.
	DragPolicy DragRegionPolicy
	// Coalescer merges drag-region updates. Nil applies each update.
	Coalescer port.Coalescer
}

// Bridge is the content delegate of one renderer surface.
type Bridge struct {
	windowID  entity.WindowID
	sched     port.Scheduler
	engine    port.ContentEngine
	window    port.WindowControl
	decider   port.NavigationDecider
	callbacks port.ShellCallbacks
	policy    DragRegionPolicy
	coalescer port.Coalescer

	ctx    context.Context
	cancel context.CancelFunc

	handlers   map[string]port.SchemeHandler
	tasks      map[string]*schemeTask
	sequences  map[string]uint64
	regions    []entity.DragRegion
	currentURL string
	// document counts main-frame commits.
	document uint64

	dragAccepted bool
	tornDown     bool

	logger zerolog.Logger
}

var (
	_ port.ContentDelegate = (*Bridge)(nil)
	_ port.DragHitTester   = (*Bridge)(nil)
)

// New creates a bridge for windowID and installs it as the engine delegate.
func New(ctx context.Context, windowID entity.WindowID, opts Options) (*Bridge, error) {
	if opts.Scheduler == nil {
		return nil, &entity.ConfigurationError{Field: "bridge.scheduler", Reason: "required"}
	}
	policy := opts.DragPolicy
	if policy == nil {
		policy = DefaultDragRegionPolicy
	}

	logger := logging.FromContext(ctx).With().
		Str("component", "content-bridge").
		Uint32("window_id", uint32(windowID)).
		Logger()
	bctx, cancel := context.WithCancel(logging.WithContext(context.WithoutCancel(ctx), logger))

	b := &Bridge{
		windowID:  windowID,
		sched:     opts.Scheduler,
		engine:    opts.Engine,
		window:    opts.Window,
		decider:   opts.Decider,
		callbacks: opts.Callbacks,
		policy:    policy,
		coalescer: opts.Coalescer,
		ctx:       bctx,
		cancel:    cancel,
		handlers:  make(map[string]port.SchemeHandler),
		tasks:     make(map[string]*schemeTask),
		sequences: make(map[string]uint64),
		logger:    logger,
	}
	if b.engine != nil {
		b.engine.SetDelegate(b)
	}
	return b, nil
}

// WindowID returns the owning window id.
func (b *Bridge) WindowID() entity.WindowID { return b.windowID }

// SetDecider replaces the navigation policy.
func (b *Bridge) SetDecider(d port.NavigationDecider) { b.decider = d }

// RegisterSchemeHandler associates scheme with handler, replacing any prior
// handler. Requests already in flight finish on the handler that started them.
func (b *Bridge) RegisterSchemeHandler(scheme string, handler port.SchemeHandler) error {
	if b.tornDown {
		return entity.ErrWindowClosed
	}
	scheme = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(scheme), "://"))
	if !schemeNamePattern.MatchString(scheme) {
		return fmt.Errorf("%w: %q", entity.ErrInvalidScheme, scheme)
	}
	if IsBuiltinScheme(scheme) {
		return fmt.Errorf("%w: %q is handled by the engine", entity.ErrInvalidScheme, scheme)
	}
	if handler == nil {
		return fmt.Errorf("%w: nil handler for %q", entity.ErrInvalidScheme, scheme)
	}

	_, replaced := b.handlers[scheme]
	b.handlers[scheme] = handler
	b.logger.Debug().Str("scheme", scheme).Bool("replaced", replaced).Msg("scheme handler registered")
	return nil
}

// Schemes returns the registered custom schemes in sorted order.
func (b *Bridge) Schemes() []string {
	return entity.SortedSchemes(b.handlers)
}

// Load navigates the engine to url.
func (b *Bridge) Load(ctx context.Context, url string) error {
	if b.tornDown {
		return entity.ErrWindowClosed
	}
	if b.engine == nil {
		return fmt.Errorf("load %s: no content engine", url)
	}
	if err := b.engine.Load(ctx, url); err != nil {
		return fmt.Errorf("load %s: %w", url, err)
	}
	return nil
}

// Reload repeats the current navigation.
func (b *Bridge) Reload(ctx context.Context) error {
	if b.tornDown {
		return entity.ErrWindowClosed
	}
	if b.engine == nil {
		return fmt.Errorf("reload: no content engine")
	}
	return b.engine.Reload(ctx)
}

// Surface returns a snapshot of the renderer surface.
func (b *Bridge) Surface() entity.RendererSurface {
	regions := make([]entity.DragRegion, len(b.regions))
	copy(regions, b.regions)
	return entity.RendererSurface{
		WindowID:   b.windowID,
		Schemes:    b.Schemes(),
		CurrentURL: b.currentURL,
		Regions:    regions,
	}
}

// InFlight returns the number of scheme tasks awaiting completion.
func (b *Bridge) InFlight() int { return len(b.tasks) }

// Teardown stops every in-flight scheme task and detaches from the engine.
// Nothing reaches the shell afterwards. Safe to call more than once.
func (b *Bridge) Teardown() {
	if b.tornDown {
		return
	}
	b.tornDown = true

	for _, task := range b.tasks {
		b.stopTask(task)
	}
	b.tasks = map[string]*schemeTask{}
	b.cancel()

	if b.coalescer != nil {
		b.coalescer.Destroy()
	}
	if b.engine != nil {
		b.engine.Close()
	}
	b.dragAccepted = false
	b.logger.Debug().Msg("content bridge torn down")
}

// TornDown reports whether Teardown ran.
func (b *Bridge) TornDown() bool { return b.tornDown }

func (b *Bridge) fault(kind entity.ContentFaultKind, url, scheme string, err error) {
	b.logger.Warn().
		Str("kind", string(kind)).
		Str("url", url).
		Str("scheme", scheme).
		Err(err).
		Msg("content fault")
	if b.tornDown || b.callbacks.OnContentFault == nil {
		return
	}
	b.callbacks.OnContentFault(entity.ContentFault{
		Kind:     kind,
		WindowID: b.windowID,
		URL:      url,
		Scheme:   scheme,
		Err:      err,
	})
}
