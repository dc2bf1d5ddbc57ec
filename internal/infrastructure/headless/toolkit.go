// Package headless provides in-memory implementations of the toolkit and
// content engine ports. They behave deterministically and are driven
// entirely by the UI task queue, which makes them suitable for tests and
// scenario replays.
package headless

import (
	"context"
	"sync"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/bnema/webwindow/internal/logging"
	"github.com/rs/zerolog"
)

// DefaultScreen is the screen used when none is configured.
var DefaultScreen = entity.NewRect(0, 0, 1920, 1080)

// Toolkit creates headless native windows.
type Toolkit struct {
	mu      sync.Mutex
	screen  entity.Rect
	windows map[entity.WindowID]*Window
	logger  zerolog.Logger
}

var _ port.Toolkit = (*Toolkit)(nil)

// NewToolkit creates a toolkit with the given screen bounds.
func NewToolkit(ctx context.Context, screen entity.Rect) *Toolkit {
	return &Toolkit{
		screen:  screen,
		windows: make(map[entity.WindowID]*Window),
		logger:  logging.FromContext(ctx).With().Str("component", "headless-toolkit").Logger(),
	}
}

// CreateWindow implements port.Toolkit.
func (t *Toolkit) CreateWindow(_ context.Context, spec entity.NativeWindowSpec) (port.NativeWindow, error) {
	w := &Window{
		spec:            spec,
		frame:           spec.Geometry,
		mask:            spec.StyleMask,
		toolbarAutoHide: true,
		visible:         !spec.Defer,
	}

	t.mu.Lock()
	t.windows[spec.ID] = w
	t.mu.Unlock()

	t.logger.Debug().Uint32("window_id", uint32(spec.ID)).Msg("native window created")
	return w, nil
}

// ScreenBounds implements port.Toolkit.
func (t *Toolkit) ScreenBounds() entity.Rect {
	return t.screen
}

// Window returns the native window created for id.
func (t *Toolkit) Window(id entity.WindowID) (*Window, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, ok := t.windows[id]
	return w, ok
}

// Window is an in-memory native window.
type Window struct {
	spec            entity.NativeWindowSpec
	frame           entity.Rect
	mask            entity.StyleMask
	fullscreen      bool
	toolbarAutoHide bool
	visible         bool
	closed          bool

	dragging   bool
	dragEvent  entity.MouseEvent
	dragOrigin entity.Rect
	drags      int
}

var _ port.NativeWindow = (*Window)(nil)

// StyleMask implements port.NativeWindow.
func (w *Window) StyleMask() entity.StyleMask { return w.mask }

// SetStyleMask implements port.NativeWindow.
func (w *Window) SetStyleMask(mask entity.StyleMask) { w.mask = mask }

// Frame implements port.NativeWindow.
func (w *Window) Frame() entity.Rect { return w.frame }

// SetFrame implements port.NativeWindow.
func (w *Window) SetFrame(frame entity.Rect) { w.frame = frame }

// SetFullscreen implements port.NativeWindow. The fullscreen bit is
// reflected in the style mask like on the host toolkit.
func (w *Window) SetFullscreen(on bool) {
	w.fullscreen = on
	if on {
		w.mask |= entity.StyleFullScreen
	} else {
		w.mask &^= entity.StyleFullScreen
	}
}

// SetToolbarAutoHide implements port.NativeWindow.
func (w *Window) SetToolbarAutoHide(autoHide bool) { w.toolbarAutoHide = autoHide }

// PerformDrag implements port.NativeWindow. The move follows DragTo calls
// until EndDrag.
func (w *Window) PerformDrag(ev entity.MouseEvent) error {
	if w.closed {
		return entity.ErrWindowClosed
	}
	w.dragging = true
	w.dragEvent = ev
	w.dragOrigin = w.frame
	w.drags++
	return nil
}

// DragTo moves the window by the pointer delta from the drag's mouse-down.
func (w *Window) DragTo(screen entity.Point) {
	if !w.dragging {
		return
	}
	dx := screen.X - w.dragEvent.ScreenLocation.X
	dy := screen.Y - w.dragEvent.ScreenLocation.Y
	w.frame = w.dragOrigin.Offset(dx, dy)
}

// EndDrag finishes the interactive move.
func (w *Window) EndDrag() { w.dragging = false }

// MakeKeyAndOrderFront implements port.NativeWindow.
func (w *Window) MakeKeyAndOrderFront() { w.visible = true }

// Close implements port.NativeWindow.
func (w *Window) Close() {
	w.closed = true
	w.visible = false
	w.dragging = false
}

// Fullscreen reports the fullscreen presentation.
func (w *Window) Fullscreen() bool { return w.fullscreen }

// ToolbarAutoHide reports the toolbar presentation used in fullscreen.
func (w *Window) ToolbarAutoHide() bool { return w.toolbarAutoHide }

// Visible reports whether the window is ordered on screen.
func (w *Window) Visible() bool { return w.visible }

// Closed reports whether Close was called.
func (w *Window) Closed() bool { return w.closed }

// Dragging reports whether an interactive move is in progress.
func (w *Window) Dragging() bool { return w.dragging }

// DragCount returns how many drags were started.
func (w *Window) DragCount() int { return w.drags }

// Spec returns the creation spec.
func (w *Window) Spec() entity.NativeWindowSpec { return w.spec }
