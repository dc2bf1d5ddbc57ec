package port

import (
	"context"

	"github.com/bnema/webwindow/internal/domain/entity"
)

// Toolkit creates native windows on the host windowing system.
type Toolkit interface {
	// CreateWindow creates a native window. Geometry has already been validated.
	CreateWindow(ctx context.Context, spec entity.NativeWindowSpec) (NativeWindow, error)

	// ScreenBounds returns the usable area of the primary screen.
	ScreenBounds() entity.Rect
}

// NativeWindow is the host toolkit's window resource.
// All methods are called on the UI thread.
type NativeWindow interface {
	// StyleMask returns the currently applied style mask.
	StyleMask() entity.StyleMask
	// SetStyleMask applies a new style mask.
	SetStyleMask(mask entity.StyleMask)

	// Frame returns the window frame in screen coordinates.
	Frame() entity.Rect
	// SetFrame moves and resizes the window.
	SetFrame(frame entity.Rect)

	// SetFullscreen toggles the toolkit's fullscreen presentation.
	SetFullscreen(on bool)
	// SetToolbarAutoHide controls whether the toolbar hides while fullscreen.
	SetToolbarAutoHide(autoHide bool)

	// PerformDrag starts an interactive move driven by the given mouse-down.
	PerformDrag(ev entity.MouseEvent) error

	// MakeKeyAndOrderFront shows the window and requests key focus.
	MakeKeyAndOrderFront()

	// Close releases the native window.
	Close()
}
