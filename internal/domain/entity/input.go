package entity

import "time"

// MouseButton identifies the button of a mouse event.
type MouseButton int

const (
	MouseLeft MouseButton = iota + 1
	MouseRight
	MouseMiddle
)

// MouseEventType is the kind of mouse event delivered by the toolkit.
type MouseEventType int

const (
	MouseDown MouseEventType = iota
	MouseUp
	MouseDragged
)

// MouseEvent is a toolkit mouse event. Location is in window content
// coordinates, ScreenLocation in screen coordinates.
type MouseEvent struct {
	Type           MouseEventType
	Button         MouseButton
	Location       Point
	ScreenLocation Point
	ClickCount     int
	Modifiers      Modifier
	Timestamp      time.Time
}

// DragSession holds the most recent left mouse-down of a window.
// The zero value is an empty session.
type DragSession struct {
	event  MouseEvent
	active bool
}

// Record replaces the session with ev.
func (s *DragSession) Record(ev MouseEvent) {
	s.event = ev
	s.active = true
}

// Clear empties the session.
func (s *DragSession) Clear() {
	*s = DragSession{}
}

// Event returns the recorded mouse-down, if any.
func (s DragSession) Event() (MouseEvent, bool) {
	return s.event, s.active
}

// Active reports whether a mouse-down is recorded.
func (s DragSession) Active() bool {
	return s.active
}
