package entity

// ChromeState is the mutable chrome bookkeeping attached to a window.
//
// The saved style mask is present exactly while a frameless override is
// active. Fullscreen is tracked independently of it.
type ChromeState struct {
	previousStyleMask StyleMask
	hasPrevious       bool

	Fullscreen                bool
	ShowToolbarWhenFullscreen bool
	InvisibleTitleBarHeight   uint32
}

// Frameless reports whether a frameless override is active.
func (c ChromeState) Frameless() bool {
	return c.hasPrevious
}

// PreviousStyleMask returns the mask saved by the active frameless override.
func (c ChromeState) PreviousStyleMask() (StyleMask, bool) {
	return c.previousStyleMask, c.hasPrevious
}

// SaveStyleMask stores current as the mask to restore. It refuses to
// overwrite an existing saved mask and reports whether it stored anything.
func (c *ChromeState) SaveStyleMask(current StyleMask) bool {
	if c.hasPrevious {
		return false
	}
	c.previousStyleMask = current
	c.hasPrevious = true
	return true
}

// PopStyleMask returns and clears the saved mask.
func (c *ChromeState) PopStyleMask() (StyleMask, bool) {
	if !c.hasPrevious {
		return 0, false
	}
	m := c.previousStyleMask
	c.previousStyleMask = 0
	c.hasPrevious = false
	return m, true
}

// ToolbarAutoHides reports whether the toolbar should auto-hide in fullscreen.
func (c ChromeState) ToolbarAutoHides() bool {
	return !c.ShowToolbarWhenFullscreen
}
