package entity

import "time"

// WindowEventKind names a window lifecycle or chrome notification.
type WindowEventKind string

const (
	EventWindowCreated      WindowEventKind = "window.created"
	EventWindowBecameKey    WindowEventKind = "window.became_key"
	EventWindowResignedKey  WindowEventKind = "window.resigned_key"
	EventWindowBecameMain   WindowEventKind = "window.became_main"
	EventWindowResignedMain WindowEventKind = "window.resigned_main"
	EventWindowClosed       WindowEventKind = "window.closed"
	EventFramelessEntered   WindowEventKind = "chrome.frameless_entered"
	EventFramelessExited    WindowEventKind = "chrome.frameless_exited"
	EventFullscreenEntered  WindowEventKind = "chrome.fullscreen_entered"
	EventFullscreenExited   WindowEventKind = "chrome.fullscreen_exited"
	EventDragStarted        WindowEventKind = "input.drag_started"
)

// WindowEvent is delivered to the application shell.
type WindowEvent struct {
	Kind     WindowEventKind
	WindowID WindowID
	Time     time.Time
}

// ContentFaultKind classifies content pipeline failures.
type ContentFaultKind string

const (
	FaultSchemeNotRegistered ContentFaultKind = "scheme_not_registered"
	FaultHandler             ContentFaultKind = "handler_fault"
	FaultLoad                ContentFaultKind = "load_failed"
)

// ContentFault is a structured failure notification from the content bridge.
type ContentFault struct {
	Kind     ContentFaultKind
	WindowID WindowID
	URL      string
	Scheme   string
	Err      error
}

// DropEventKind names a drag-and-drop notification.
type DropEventKind string

const (
	DropEntered   DropEventKind = "drop.entered"
	DropPerformed DropEventKind = "drop.performed"
)

// DropEvent reports a drag-and-drop decision to the application shell.
type DropEvent struct {
	Kind     DropEventKind
	WindowID WindowID
	Payload  DropPayload
	Accepted bool
}
