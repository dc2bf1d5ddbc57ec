package window

import "github.com/bnema/webwindow/internal/domain/entity"

// CanBecomeKey is true for both categories so borderless windows and
// panels still receive keyboard input.
func (w *Window) CanBecomeKey() bool {
	return !w.closed
}

// CanBecomeMain is true for regular windows only.
func (w *Window) CanBecomeMain() bool {
	return !w.closed && w.category == entity.CategoryWindow
}

// AcceptsFirstResponder lets the window itself hold input focus.
func (w *Window) AcceptsFirstResponder() bool {
	return true
}

// BecomeFirstResponder always accepts.
func (w *Window) BecomeFirstResponder() bool {
	w.firstResponder = true
	return true
}

// ResignFirstResponder always permits yielding.
func (w *Window) ResignFirstResponder() bool {
	w.firstResponder = false
	return true
}

// IsFirstResponder reports whether the window holds first-responder status.
func (w *Window) IsFirstResponder() bool {
	return w.firstResponder
}

// DidBecomeKey is called by the toolkit when the window gains key focus.
func (w *Window) DidBecomeKey() {
	if w.closed || w.key {
		return
	}
	w.key = true
	w.emit(entity.EventWindowBecameKey)
}

// DidResignKey is called by the toolkit when the window loses key focus.
func (w *Window) DidResignKey() {
	if w.closed || !w.key {
		return
	}
	w.key = false
	w.emit(entity.EventWindowResignedKey)
}

// DidBecomeMain is called by the toolkit when the window becomes main.
// Panels ignore it.
func (w *Window) DidBecomeMain() {
	if w.closed || w.main || !w.CanBecomeMain() {
		return
	}
	w.main = true
	w.emit(entity.EventWindowBecameMain)
}

// DidResignMain is called by the toolkit when the window stops being main.
func (w *Window) DidResignMain() {
	if w.closed || !w.main {
		return
	}
	w.main = false
	w.emit(entity.EventWindowResignedMain)
}
