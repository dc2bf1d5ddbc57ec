package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/motif"

	"github.com/bnema/webwindow/internal/domain/entity"
)

// EWMH atoms used by the toolkit.
const (
	stateFullscreen   = "_NET_WM_STATE_FULLSCREEN"
	stateSkipTaskbar  = "_NET_WM_STATE_SKIP_TASKBAR"
	stateAbove        = "_NET_WM_STATE_ABOVE"
	windowTypeNormal  = "_NET_WM_WINDOW_TYPE_NORMAL"
	windowTypeUtility = "_NET_WM_WINDOW_TYPE_UTILITY"
	protocolDelete    = "WM_DELETE_WINDOW"
)

// _NET_WM_STATE actions and _NET_WM_MOVERESIZE values from the EWMH spec.
const (
	wmStateRemove     = 0
	wmStateAdd        = 1
	moveresizeMove    = 8
	sourceApplication = 1
)

// motifHints maps a style mask onto Motif WM hints. A borderless mask
// removes every decoration; the window stays movable either way.
func motifHints(mask entity.StyleMask) *motif.Hints {
	h := &motif.Hints{
		Flags:    motif.HintFunctions | motif.HintDecorations,
		Function: motif.FunctionMove,
	}
	if mask.Has(entity.StyleTitled) {
		h.Decoration |= motif.DecorationBorder | motif.DecorationTitle | motif.DecorationMenu
	}
	if mask.Has(entity.StyleClosable) {
		h.Function |= motif.FunctionClose
	}
	if mask.Has(entity.StyleMiniaturizable) {
		h.Function |= motif.FunctionMinimize
		if mask.Has(entity.StyleTitled) {
			h.Decoration |= motif.DecorationMinimize
		}
	}
	if mask.Has(entity.StyleResizable) {
		h.Function |= motif.FunctionResize | motif.FunctionMaximize
		if mask.Has(entity.StyleTitled) {
			h.Decoration |= motif.DecorationResizeH | motif.DecorationMaximize
		}
	}
	return h
}

// windowTypes returns the _NET_WM_WINDOW_TYPE list for a category.
func windowTypes(category entity.WindowCategory, mask entity.StyleMask) []string {
	if category == entity.CategoryPanel || mask.Has(entity.StyleUtilityWindow) {
		return []string{windowTypeUtility}
	}
	return []string{windowTypeNormal}
}

// initialStates returns the _NET_WM_STATE atoms set at creation.
func initialStates(category entity.WindowCategory) []string {
	if category == entity.CategoryPanel {
		return []string{stateSkipTaskbar, stateAbove}
	}
	return nil
}

// backingStore maps a backing mode onto the X backing-store attribute.
func backingStore(mode entity.BackingMode) uint32 {
	switch mode {
	case entity.BackingRetained:
		return xproto.BackingStoreAlways
	case entity.BackingNonretained:
		return xproto.BackingStoreNotUseful
	default:
		return xproto.BackingStoreWhenMapped
	}
}

// modifiers converts an X key/button state into entity modifiers.
func modifiers(state uint16) entity.Modifier {
	var m entity.Modifier
	if state&xproto.ModMaskShift != 0 {
		m |= entity.ModShift
	}
	if state&xproto.ModMaskControl != 0 {
		m |= entity.ModCtrl
	}
	if state&xproto.ModMask1 != 0 {
		m |= entity.ModAlt
	}
	if state&xproto.ModMask4 != 0 {
		m |= entity.ModSuper
	}
	return m
}

// mouseButton converts an X button number. Wheel buttons map to zero.
func mouseButton(detail xproto.Button) entity.MouseButton {
	switch detail {
	case xproto.ButtonIndex1:
		return entity.MouseLeft
	case xproto.ButtonIndex2:
		return entity.MouseMiddle
	case xproto.ButtonIndex3:
		return entity.MouseRight
	default:
		return 0
	}
}

// clampSize keeps X dimensions positive.
func clampSize(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}
