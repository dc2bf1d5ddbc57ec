// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the host toolkit and the embedded content engine so the
// window shell and the content bridge stay independent of any platform.
package port

import (
	"context"

	"github.com/bnema/webwindow/internal/domain/entity"
)

// ContentEngine is the embedded web renderer hosted inside a window.
type ContentEngine interface {
	// SetDelegate installs the receiver of navigation, scheme, message and
	// drag-and-drop callbacks. Must be called before Load.
	SetDelegate(d ContentDelegate)

	// Load starts a top-level navigation to url.
	Load(ctx context.Context, url string) error

	// Reload repeats the last committed navigation.
	Reload(ctx context.Context) error

	// Close releases the engine. Callbacks stop after Close returns.
	Close()
}

// NavigationDelegate gates navigations.
type NavigationDelegate interface {
	// DecidePolicyForNavigation must call decide exactly once, possibly later.
	DecidePolicyForNavigation(action entity.NavigationAction, decide func(entity.NavigationDecision))
	// DidCommitNavigation reports that url became frameID's document.
	// mainFrame is set when frameID hosts the surface's top-level document.
	DidCommitNavigation(frameID, url string, mainFrame bool)
	// DidFailNavigation reports a failed load.
	DidFailNavigation(url string, err error)
}

// ScriptMessageReceiver receives messages posted by rendered content.
type ScriptMessageReceiver interface {
	DidReceiveScriptMessage(msg entity.ScriptMessage)
}

// URLSchemeTaskHandler serves resource loads for custom schemes.
type URLSchemeTaskHandler interface {
	StartURLSchemeTask(task URLSchemeTask)
	StopURLSchemeTask(task URLSchemeTask)
}

// DraggingDestination is the drag-and-drop target contract of the surface.
type DraggingDestination interface {
	DraggingEntered(payload entity.DropPayload) entity.DragOperation
	DraggingExited()
	PerformDrop(payload entity.DropPayload) bool
}

// ContentDelegate is the full callback surface the engine drives.
type ContentDelegate interface {
	NavigationDelegate
	ScriptMessageReceiver
	URLSchemeTaskHandler
	DraggingDestination
}

// URLSchemeTask is the engine side of one custom-scheme resource load.
// Methods must be called on the UI thread.
type URLSchemeTask interface {
	ID() string
	Request() entity.ResourceRequest
	DidReceiveResponse(resp entity.ResourceResponse)
	DidReceiveData(chunk []byte)
	DidFinish()
	DidFail(err error)
}
