package port

import (
	"context"

	"github.com/bnema/webwindow/internal/domain/entity"
)

// NavigationDecider is the application shell's navigation policy.
// decide may be called synchronously or later from any goroutine;
// only the first call is honoured.
type NavigationDecider interface {
	DecidePolicy(ctx context.Context, action entity.NavigationAction, decide func(entity.NavigationDecision))
}

// NavigationPolicyFunc adapts a synchronous policy to NavigationDecider.
type NavigationPolicyFunc func(action entity.NavigationAction) entity.NavigationDecision

// DecidePolicy answers immediately.
func (f NavigationPolicyFunc) DecidePolicy(_ context.Context, action entity.NavigationAction, decide func(entity.NavigationDecision)) {
	decide(f(action))
}

// ShellCallbacks are the outbound notifications to the application shell.
// Nil fields are ignored. All callbacks run on the UI thread.
type ShellCallbacks struct {
	// OnWindowEvent receives lifecycle and chrome-state notifications.
	OnWindowEvent func(ev entity.WindowEvent)
	// OnScriptMessage receives messages posted by content.
	OnScriptMessage func(msg entity.ScriptMessage)
	// OnDraggingEntered decides whether a drop may proceed. Nil rejects.
	OnDraggingEntered func(payload entity.DropPayload) entity.DragOperation
	// OnPerformDrop performs an accepted drop. Returning false rolls it back.
	OnPerformDrop func(payload entity.DropPayload) bool
	// OnDropEvent observes drag-and-drop outcomes.
	OnDropEvent func(ev entity.DropEvent)
	// OnContentFault receives content pipeline failures.
	OnContentFault func(fault entity.ContentFault)
	// OnNavigationCommitted reports the committed document URL.
	OnNavigationCommitted func(windowID entity.WindowID, url string)
}

// WindowControl is the part of the window shell the content bridge drives.
type WindowControl interface {
	ID() entity.WindowID
	Chrome() entity.ChromeState
	// StartDrag begins an interactive move from the last recorded mouse-down.
	// It reports false when there is nothing to drag.
	StartDrag() bool
}

// DragHitTester answers whether a content location belongs to draggable chrome.
type DragHitTester interface {
	IsDraggable(p entity.Point) bool
}
