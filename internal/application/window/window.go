package window

import (
	"time"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/domain/entity"
	"github.com/rs/zerolog"
)

// Window is a native window handle plus its chrome and drag state.
//
// A Window is confined to the UI thread: every method must be called from
// a task running on the scheduler. It owns its ChromeState and DragSession
// exclusively.
type Window struct {
	id       entity.WindowID
	name     string
	category entity.WindowCategory
	native   port.NativeWindow
	screen   func() entity.Rect

	chrome entity.ChromeState
	drag   entity.DragSession

	hitTester  port.DragHitTester
	keyHandler func(entity.KeyEvent) bool
	teardown   []func()

	firstResponder bool
	key            bool
	main           bool
	closed         bool

	onEvent func(entity.WindowEvent)
	now     func() time.Time
	logger  zerolog.Logger
}

var _ port.WindowControl = (*Window)(nil)

// ID returns the window's unique numeric identifier.
func (w *Window) ID() entity.WindowID { return w.id }

// Name returns the creation name, possibly empty.
func (w *Window) Name() string { return w.name }

// Category returns Window or Panel.
func (w *Window) Category() entity.WindowCategory { return w.category }

// Chrome returns a copy of the chrome state.
func (w *Window) Chrome() entity.ChromeState { return w.chrome }

// StyleMask returns the mask currently applied to the native window.
func (w *Window) StyleMask() entity.StyleMask { return w.native.StyleMask() }

// Frame returns the native window frame.
func (w *Window) Frame() entity.Rect { return w.native.Frame() }

// DragSession returns a copy of the current drag session.
func (w *Window) DragSession() entity.DragSession { return w.drag }

// Closed reports whether the window has been torn down.
func (w *Window) Closed() bool { return w.closed }

// IsKey reports whether the window currently holds key focus.
func (w *Window) IsKey() bool { return w.key }

// IsMain reports whether the window is the application's main window.
func (w *Window) IsMain() bool { return w.main }

// SetDragHitTester installs the content-side drag region resolver.
func (w *Window) SetDragHitTester(t port.DragHitTester) { w.hitTester = t }

// SetKeyHandler installs the key binding dispatcher.
func (w *Window) SetKeyHandler(fn func(entity.KeyEvent) bool) { w.keyHandler = fn }

// OnTeardown registers fn to run when the window closes, before the native
// window is released. Hooks run in reverse registration order.
func (w *Window) OnTeardown(fn func()) {
	if fn != nil {
		w.teardown = append(w.teardown, fn)
	}
}

// Show orders the window front and requests key focus.
func (w *Window) Show() {
	if w.closed {
		return
	}
	w.native.MakeKeyAndOrderFront()
}

// Center places the window in the middle of the toolkit's screen bounds.
func (w *Window) Center() {
	if w.closed || w.screen == nil {
		return
	}
	screen := w.screen()
	frame := w.native.Frame()
	frame.Origin.X = screen.Origin.X + (screen.Size.Width-frame.Size.Width)/2
	frame.Origin.Y = screen.Origin.Y + (screen.Size.Height-frame.Size.Height)/2
	w.native.SetFrame(frame)
}

// HandleKeyDown routes a key press to the installed key handler.
func (w *Window) HandleKeyDown(ev entity.KeyEvent) bool {
	if w.closed || w.keyHandler == nil {
		return false
	}
	return w.keyHandler(ev)
}

// Close tears the window down: teardown hooks first (the content bridge
// stops in-flight loads there), then the drag session is discarded and the
// native window released. Calling Close twice is a no-op.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true

	for i := len(w.teardown) - 1; i >= 0; i-- {
		w.teardown[i]()
	}
	w.teardown = nil

	w.drag.Clear()
	w.hitTester = nil
	w.keyHandler = nil
	w.key, w.main, w.firstResponder = false, false, false
	w.native.Close()

	w.logger.Debug().Msg("window closed")
	w.emit(entity.EventWindowClosed)
}

func (w *Window) emit(kind entity.WindowEventKind) {
	if w.onEvent == nil {
		return
	}
	w.onEvent(entity.WindowEvent{Kind: kind, WindowID: w.id, Time: w.now()})
}
