package x11

import "github.com/bnema/webwindow/internal/domain/entity"

// Target is the part of the window shell that consumes X input.
type Target interface {
	MouseDown(ev entity.MouseEvent) bool
	MouseUp(ev entity.MouseEvent)
	HandleKeyDown(ev entity.KeyEvent) bool
	DidBecomeKey()
	DidResignKey()
	DidBecomeMain()
	DidResignMain()
	Close()
}

// HandlersFor routes X input to t. X has a single focus, so key and main
// status move together; t ignores main-ness where it does not apply.
func HandlersFor(t Target) Handlers {
	return Handlers{
		MouseDown: func(ev entity.MouseEvent) { t.MouseDown(ev) },
		MouseUp:   t.MouseUp,
		KeyDown:   func(ev entity.KeyEvent) { t.HandleKeyDown(ev) },
		FocusIn: func() {
			t.DidBecomeKey()
			t.DidBecomeMain()
		},
		FocusOut: func() {
			t.DidResignKey()
			t.DidResignMain()
		},
		CloseRequest: t.Close,
	}
}
