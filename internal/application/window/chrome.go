package window

import "github.com/bnema/webwindow/internal/domain/entity"

// Chrome transitions are synchronous. A transition requested from a state
// where it does not apply is a silent no-op: the toolkit can deliver
// show/hide notifications out of order.

// EnterFrameless saves the current style mask and applies a borderless one.
// Repeated calls keep the first saved mask.
func (w *Window) EnterFrameless() {
	if w.closed || w.chrome.Frameless() {
		return
	}
	current := w.native.StyleMask()
	w.chrome.SaveStyleMask(current &^ entity.StyleFullScreen)
	w.native.SetStyleMask(entity.StyleBorderless | current&entity.StyleFullScreen)

	w.logger.Debug().Str("saved", current.String()).Msg("entered frameless")
	w.emit(entity.EventFramelessEntered)
}

// ExitFrameless restores the saved style mask and clears it.
func (w *Window) ExitFrameless() {
	if w.closed {
		return
	}
	saved, ok := w.chrome.PopStyleMask()
	if !ok {
		return
	}
	current := w.native.StyleMask()
	w.native.SetStyleMask(saved | current&entity.StyleFullScreen)

	w.logger.Debug().Str("restored", saved.String()).Msg("exited frameless")
	w.emit(entity.EventFramelessExited)
}

// SetFrameless enters or exits frameless mode.
func (w *Window) SetFrameless(on bool) {
	if on {
		w.EnterFrameless()
		return
	}
	w.ExitFrameless()
}

// EnterFullscreen asks the toolkit to go fullscreen. The frameless override
// is left untouched.
func (w *Window) EnterFullscreen() {
	if w.closed || w.chrome.Fullscreen {
		return
	}
	w.native.SetToolbarAutoHide(w.chrome.ToolbarAutoHides())
	w.native.SetFullscreen(true)
	w.DidEnterFullscreen()
}

// ExitFullscreen leaves fullscreen. It does not exit frameless mode.
func (w *Window) ExitFullscreen() {
	if w.closed || !w.chrome.Fullscreen {
		return
	}
	w.native.SetFullscreen(false)
	w.DidExitFullscreen()
}

// ToggleFullscreen flips the fullscreen axis.
func (w *Window) ToggleFullscreen() {
	if w.chrome.Fullscreen {
		w.ExitFullscreen()
		return
	}
	w.EnterFullscreen()
}

// DidEnterFullscreen records a fullscreen transition, including ones the
// user started through the toolkit.
func (w *Window) DidEnterFullscreen() {
	if w.closed || w.chrome.Fullscreen {
		return
	}
	w.chrome.Fullscreen = true
	w.emit(entity.EventFullscreenEntered)
}

// DidExitFullscreen records leaving fullscreen.
func (w *Window) DidExitFullscreen() {
	if w.closed || !w.chrome.Fullscreen {
		return
	}
	w.chrome.Fullscreen = false
	w.emit(entity.EventFullscreenExited)
}

// SetShowToolbarWhenFullscreen keeps the toolbar visible in fullscreen
// instead of letting it auto-hide. Applies immediately when fullscreen.
func (w *Window) SetShowToolbarWhenFullscreen(show bool) {
	if w.closed {
		return
	}
	w.chrome.ShowToolbarWhenFullscreen = show
	if w.chrome.Fullscreen {
		w.native.SetToolbarAutoHide(w.chrome.ToolbarAutoHides())
	}
}

// SetInvisibleTitleBarHeight sets the height of the draggable strip at the
// top of the content area used while frameless.
func (w *Window) SetInvisibleTitleBarHeight(height uint32) {
	if w.closed {
		return
	}
	w.chrome.InvisibleTitleBarHeight = height
}
