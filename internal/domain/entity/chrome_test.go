package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChromeState_SaveAndPop(t *testing.T) {
	var c ChromeState
	assert.False(t, c.Frameless())
	_, ok := c.PreviousStyleMask()
	assert.False(t, ok)

	assert.True(t, c.SaveStyleMask(StyleDefault))
	assert.True(t, c.Frameless())

	// A second save must keep the original mask.
	assert.False(t, c.SaveStyleMask(StyleBorderless))
	prev, ok := c.PreviousStyleMask()
	assert.True(t, ok)
	assert.Equal(t, StyleDefault, prev)

	got, ok := c.PopStyleMask()
	assert.True(t, ok)
	assert.Equal(t, StyleDefault, got)
	assert.False(t, c.Frameless())

	_, ok = c.PopStyleMask()
	assert.False(t, ok)
}

func TestChromeState_SavesBorderlessMask(t *testing.T) {
	var c ChromeState
	assert.True(t, c.SaveStyleMask(StyleBorderless))
	assert.True(t, c.Frameless(), "a saved zero mask still counts as frameless")
}

func TestChromeState_ToolbarAutoHides(t *testing.T) {
	c := ChromeState{}
	assert.True(t, c.ToolbarAutoHides())
	c.ShowToolbarWhenFullscreen = true
	assert.False(t, c.ToolbarAutoHides())
}

func TestDragSession(t *testing.T) {
	var s DragSession
	assert.False(t, s.Active())

	ev := MouseEvent{Type: MouseDown, Button: MouseLeft, Location: Point{4, 5}}
	s.Record(ev)
	got, ok := s.Event()
	assert.True(t, ok)
	assert.Equal(t, ev, got)

	s.Clear()
	_, ok = s.Event()
	assert.False(t, ok)
}
