package x11

import (
	"fmt"
	"sync"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/bnema/webwindow/internal/application/port"
	"github.com/bnema/webwindow/internal/domain/entity"
)

// Handlers receive the window's X events on the UI thread. Nil fields
// are ignored.
type Handlers struct {
	MouseDown    func(ev entity.MouseEvent)
	MouseUp      func(ev entity.MouseEvent)
	KeyDown      func(ev entity.KeyEvent)
	FocusIn      func()
	FocusOut     func()
	CloseRequest func()
}

// Window is a top-level X11 window.
type Window struct {
	toolkit  *Toolkit
	win      *xwindow.Window
	spec     entity.NativeWindowSpec
	mask     entity.StyleMask
	frame    entity.Rect
	autoHide bool
	mapped   bool
	closed   bool

	mu       sync.Mutex
	handlers Handlers
}

var _ port.NativeWindow = (*Window)(nil)

func (w *Window) xu() *xgbutil.XUtil { return w.toolkit.xu }

func (w *Window) applyIdentity() {
	id := w.win.Id
	if err := ewmh.WmNameSet(w.xu(), id, w.spec.Title); err != nil {
		w.toolkit.logger.Debug().Err(err).Msg("set _NET_WM_NAME")
	}
	if err := icccm.WmNameSet(w.xu(), id, w.spec.Title); err != nil {
		w.toolkit.logger.Debug().Err(err).Msg("set WM_NAME")
	}
	if err := icccm.WmProtocolsSet(w.xu(), id, []string{protocolDelete}); err != nil {
		w.toolkit.logger.Debug().Err(err).Msg("set WM_PROTOCOLS")
	}
	if err := ewmh.WmWindowTypeSet(w.xu(), id, windowTypes(w.spec.Category, w.spec.StyleMask)); err != nil {
		w.toolkit.logger.Debug().Err(err).Msg("set _NET_WM_WINDOW_TYPE")
	}
	if states := initialStates(w.spec.Category); len(states) > 0 {
		if err := ewmh.WmStateSet(w.xu(), id, states); err != nil {
			w.toolkit.logger.Debug().Err(err).Msg("set _NET_WM_STATE")
		}
	}
}

// StyleMask implements port.NativeWindow.
func (w *Window) StyleMask() entity.StyleMask { return w.mask }

// SetStyleMask implements port.NativeWindow through Motif hints. The
// fullscreen bit is driven separately by SetFullscreen.
func (w *Window) SetStyleMask(mask entity.StyleMask) {
	w.mask = mask
	if w.closed {
		return
	}
	if err := motif.WmHintsSet(w.xu(), w.win.Id, motifHints(mask)); err != nil {
		w.toolkit.logger.Warn().Err(err).Str("mask", mask.String()).Msg("failed to apply motif hints")
	}
}

// Frame implements port.NativeWindow.
func (w *Window) Frame() entity.Rect {
	if w.closed {
		return w.frame
	}
	if g, err := w.win.DecorGeometry(); err == nil {
		w.frame = entity.NewRect(float64(g.X()), float64(g.Y()), float64(g.Width()), float64(g.Height()))
	}
	return w.frame
}

// SetFrame implements port.NativeWindow.
func (w *Window) SetFrame(frame entity.Rect) {
	w.frame = frame
	if w.closed {
		return
	}
	x, y := int(frame.Origin.X), int(frame.Origin.Y)
	width, height := clampSize(frame.Size.Width), clampSize(frame.Size.Height)
	if err := ewmh.MoveresizeWindow(w.xu(), w.win.Id, x, y, width, height); err != nil {
		// Fallback to direct window manipulation
		w.win.MoveResize(x, y, width, height)
	}
}

// SetFullscreen implements port.NativeWindow.
func (w *Window) SetFullscreen(on bool) {
	if w.closed {
		return
	}
	action := wmStateRemove
	if on {
		action = wmStateAdd
	}
	if err := ewmh.WmStateReq(w.xu(), w.win.Id, action, stateFullscreen); err != nil {
		w.toolkit.logger.Warn().Err(err).Bool("on", on).Msg("fullscreen request failed")
	}
}

// SetToolbarAutoHide implements port.NativeWindow. X11 windows have no
// toolbar; the preference is only recorded.
func (w *Window) SetToolbarAutoHide(autoHide bool) { w.autoHide = autoHide }

// PerformDrag implements port.NativeWindow with _NET_WM_MOVERESIZE, handing
// the move over to the window manager.
func (w *Window) PerformDrag(ev entity.MouseEvent) error {
	if w.closed {
		return entity.ErrWindowClosed
	}
	// The WM grabs the pointer itself; release ours first.
	xproto.UngrabPointer(w.xu().Conn(), xproto.TimeCurrentTime)
	err := ewmh.WmMoveresizeExtra(w.xu(), w.win.Id, moveresizeMove,
		int(ev.ScreenLocation.X), int(ev.ScreenLocation.Y), int(xproto.ButtonIndex1), sourceApplication)
	if err != nil {
		return fmt.Errorf("x11: start move: %w", err)
	}
	return nil
}

// MakeKeyAndOrderFront implements port.NativeWindow.
func (w *Window) MakeKeyAndOrderFront() {
	if w.closed {
		return
	}
	if !w.mapped {
		w.win.Map()
		w.mapped = true
	}
	if err := ewmh.ActiveWindowReq(w.xu(), w.win.Id); err != nil {
		w.toolkit.logger.Debug().Err(err).Msg("activate request failed")
	}
}

// Close implements port.NativeWindow.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	xevent.Detach(w.xu(), w.win.Id)
	w.win.Destroy()
	w.toolkit.forget(w.spec.ID)
}

func (w *Window) setHandlers(h Handlers) {
	w.mu.Lock()
	w.handlers = h
	w.mu.Unlock()
}

func (w *Window) current() Handlers {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.handlers
}

// post runs fn on the UI thread with the handlers current at that time.
func (w *Window) post(fn func(h Handlers)) {
	w.toolkit.sched.Post(func() {
		if w.closed {
			return
		}
		fn(w.current())
	})
}

func (w *Window) connectEvents() {
	xu, id := w.xu(), w.win.Id

	xevent.ButtonPressFun(func(_ *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		me := mouseEvent(entity.MouseDown, ev.Detail, ev.EventX, ev.EventY, ev.RootX, ev.RootY, ev.State)
		w.post(func(h Handlers) {
			if h.MouseDown != nil {
				h.MouseDown(me)
			}
		})
	}).Connect(xu, id)

	xevent.ButtonReleaseFun(func(_ *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
		me := mouseEvent(entity.MouseUp, ev.Detail, ev.EventX, ev.EventY, ev.RootX, ev.RootY, ev.State)
		w.post(func(h Handlers) {
			if h.MouseUp != nil {
				h.MouseUp(me)
			}
		})
	}).Connect(xu, id)

	xevent.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		ke := entity.KeyEvent{
			Key:       keybind.LookupString(xu, ev.State, ev.Detail),
			Modifiers: modifiers(ev.State),
		}
		w.post(func(h Handlers) {
			if h.KeyDown != nil {
				h.KeyDown(ke)
			}
		})
	}).Connect(xu, id)

	xevent.FocusInFun(func(*xgbutil.XUtil, xevent.FocusInEvent) {
		w.post(func(h Handlers) {
			if h.FocusIn != nil {
				h.FocusIn()
			}
		})
	}).Connect(xu, id)

	xevent.FocusOutFun(func(*xgbutil.XUtil, xevent.FocusOutEvent) {
		w.post(func(h Handlers) {
			if h.FocusOut != nil {
				h.FocusOut()
			}
		})
	}).Connect(xu, id)

	xevent.ClientMessageFun(func(xu *xgbutil.XUtil, ev xevent.ClientMessageEvent) {
		name, err := xprop.AtomName(xu, xproto.Atom(ev.Data.Data32[0]))
		if err != nil || name != protocolDelete {
			return
		}
		w.post(func(h Handlers) {
			if h.CloseRequest != nil {
				h.CloseRequest()
			}
		})
	}).Connect(xu, id)
}

func mouseEvent(kind entity.MouseEventType, detail xproto.Button, ex, ey, rx, ry int16, state uint16) entity.MouseEvent {
	return entity.MouseEvent{
		Type:           kind,
		Button:         mouseButton(detail),
		Location:       entity.Point{X: float64(ex), Y: float64(ey)},
		ScreenLocation: entity.Point{X: float64(rx), Y: float64(ry)},
		ClickCount:     1,
		Modifiers:      modifiers(state),
		Timestamp:      time.Now(),
	}
}
