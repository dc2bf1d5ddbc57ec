package entity

import (
	"strings"
)

// WindowID uniquely identifies a window for the lifetime of the process.
type WindowID uint32

// StyleMask is the set of chrome flags applied to a native window.
// Bit values follow the host toolkit's window style mask.
type StyleMask uint32

const (
	StyleBorderless          StyleMask = 0
	StyleTitled              StyleMask = 1 << 0
	StyleClosable            StyleMask = 1 << 1
	StyleMiniaturizable      StyleMask = 1 << 2
	StyleResizable           StyleMask = 1 << 3
	StyleUtilityWindow       StyleMask = 1 << 4
	StyleNonactivatingPanel  StyleMask = 1 << 7
	StyleUnifiedTitleToolbar StyleMask = 1 << 12
	StyleHUDWindow           StyleMask = 1 << 13
	StyleFullScreen          StyleMask = 1 << 14
	StyleFullSizeContentView StyleMask = 1 << 15
)

// StyleDefault is the mask of an ordinary titled window.
const StyleDefault = StyleTitled | StyleClosable | StyleMiniaturizable | StyleResizable

var styleNames = []struct {
	flag StyleMask
	name string
}{
	{StyleTitled, "titled"},
	{StyleClosable, "closable"},
	{StyleMiniaturizable, "miniaturizable"},
	{StyleResizable, "resizable"},
	{StyleUtilityWindow, "utility"},
	{StyleNonactivatingPanel, "nonactivating"},
	{StyleUnifiedTitleToolbar, "unified-toolbar"},
	{StyleHUDWindow, "hud"},
	{StyleFullScreen, "fullscreen"},
	{StyleFullSizeContentView, "full-size-content"},
}

// Has reports whether all bits of flag are set.
func (m StyleMask) Has(flag StyleMask) bool {
	return m&flag == flag
}

// IsBorderless reports whether the mask carries no title bar.
func (m StyleMask) IsBorderless() bool {
	return m&StyleTitled == 0
}

func (m StyleMask) String() string {
	if m == StyleBorderless {
		return "borderless"
	}
	var parts []string
	for _, s := range styleNames {
		if m.Has(s.flag) {
			parts = append(parts, s.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseStyleMask converts flag names (as produced by String) into a mask.
func ParseStyleMask(names []string) (StyleMask, error) {
	var m StyleMask
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || name == "borderless" {
			continue
		}
		found := false
		for _, s := range styleNames {
			if s.name == name {
				m |= s.flag
				found = true
				break
			}
		}
		if !found {
			return 0, &ConfigurationError{Field: "style_mask", Reason: "unknown flag " + raw}
		}
	}
	return m, nil
}

// WindowCategory selects focus and activation behaviour.
type WindowCategory int

const (
	// CategoryWindow is a regular application window that may become main.
	CategoryWindow WindowCategory = iota
	// CategoryPanel is a floating utility panel that never becomes main.
	CategoryPanel
)

func (c WindowCategory) String() string {
	switch c {
	case CategoryWindow:
		return "window"
	case CategoryPanel:
		return "panel"
	default:
		return "unknown"
	}
}

// BackingMode mirrors the toolkit's backing store types.
type BackingMode int

const (
	BackingBuffered BackingMode = iota
	BackingRetained
	BackingNonretained
)

func (b BackingMode) String() string {
	switch b {
	case BackingBuffered:
		return "buffered"
	case BackingRetained:
		return "retained"
	case BackingNonretained:
		return "nonretained"
	default:
		return "unknown"
	}
}

// ParseBackingMode accepts the names produced by String. Empty means buffered.
func ParseBackingMode(s string) (BackingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "buffered":
		return BackingBuffered, nil
	case "retained":
		return BackingRetained, nil
	case "nonretained":
		return BackingNonretained, nil
	default:
		return 0, &ConfigurationError{Field: "backing", Reason: "unknown mode " + s}
	}
}

// NativeWindowSpec is what the toolkit needs to create a native window.
type NativeWindowSpec struct {
	ID        WindowID
	Title     string
	Geometry  Rect
	StyleMask StyleMask
	Backing   BackingMode
	Defer     bool
	Category  WindowCategory
}
